package model

type Game struct {
	ID             int32  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name           string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Genre          string `gorm:"column:genre;type:varchar(255);not null" json:"genre"`
	ReleaseDate    int32  `gorm:"column:release_date;not null" json:"release_date"`
	PrimeCost      int64  `gorm:"column:prime_cost;not null" json:"prime_cost"`
	PublisherID    int32  `gorm:"column:publisher_id;not null" json:"publisher_id"`
	Cost           int64  `gorm:"column:cost;not null" json:"cost"`
	IsSubscribable bool   `gorm:"column:is_subscribable;not null" json:"is_subscribable"`
}

func (Game) TableName() string {
	return "games"
}
