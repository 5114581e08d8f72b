package model

import "time"

type User struct {
	ID               int32  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nickname         string `gorm:"column:nickname;type:varchar(255);not null" json:"nickname"`
	RegistrationDate int32  `gorm:"column:registration_date;not null" json:"registration_date"`
}

func (User) TableName() string {
	return "users"
}

type Donation struct {
	ID           int32     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       int32     `gorm:"column:user_id;not null" json:"user_id"`
	GameID       int32     `gorm:"column:game_id;not null" json:"game_id"`
	Amount       int64     `gorm:"column:amount;not null" json:"amount"`
	DonationTime time.Time `gorm:"column:donation_time;not null" json:"donation_time"`
}

func (Donation) TableName() string {
	return "donations"
}
