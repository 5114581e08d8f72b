package model

type Staff struct {
	ID    int32  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Birth int32  `gorm:"column:birth;not null" json:"birth"`
}

func (Staff) TableName() string {
	return "staff"
}

type Job struct {
	ID           int32  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	GameID       int32  `gorm:"column:game_id;not null" json:"game_id"`
	StaffID      int32  `gorm:"column:staff_id;not null" json:"staff_id"`
	Position     string `gorm:"column:position;type:varchar(255);not null" json:"position"`
	FirstWorkDay int32  `gorm:"column:first_work_day;not null" json:"first_work_day"`
	// LastWorkDay is nil while the engagement is still running.
	LastWorkDay *int32 `gorm:"column:last_work_day" json:"last_work_day"`
	Salary      int64  `gorm:"column:salary;not null" json:"salary"`
}

func (Job) TableName() string {
	return "jobs"
}
