package model

type Investor struct {
	ID        int32  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	IsCompany bool   `gorm:"column:is_company;not null" json:"is_company"`
}

func (Investor) TableName() string {
	return "investors"
}

type Investment struct {
	ID         int32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	GameID     int32 `gorm:"column:game_id;not null" json:"game_id"`
	InvestorID int32 `gorm:"column:investor_id;not null" json:"investor_id"`
	// Share is whole percentage points of ownership.
	Share    int16 `gorm:"column:share;not null" json:"share"`
	Invested int64 `gorm:"column:invested;not null" json:"invested"`
}

func (Investment) TableName() string {
	return "investments"
}
