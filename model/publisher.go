package model

// Rows are stored exactly as the legacy schema keeps them: money in
// integer minor units, dates as shifted day-offsets.

type Publisher struct {
	ID         int32  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Price      int64  `gorm:"column:price;not null" json:"price"`
	Popularity int16  `gorm:"column:popularity;not null" json:"popularity"`
}

func (Publisher) TableName() string {
	return "publishers"
}
