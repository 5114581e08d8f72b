package control

import (
	"context"

	"studio/admin/errs"
	"studio/admin/model"
	"studio/admin/tools"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NewJob is the validated construction request for a job row. An empty
// LastWorkDay means the engagement is still running.
type NewJob struct {
	GameID       int32           `json:"game_id"`
	StaffID      int32           `json:"staff_id"`
	Position     string          `json:"position" binding:"required"`
	FirstWorkDay string          `json:"first_work_day" binding:"required"`
	LastWorkDay  string          `json:"last_work_day"`
	Salary       decimal.Decimal `json:"salary"`
}

func (r NewJob) toRow() (model.Job, error) {
	first, err := tools.ParseDate(r.FirstWorkDay)
	if err != nil {
		return model.Job{}, errs.ErrInvalidDate
	}
	var last *int32
	if r.LastWorkDay != "" {
		d, err := tools.ParseDate(r.LastWorkDay)
		if err != nil {
			return model.Job{}, errs.ErrInvalidDate
		}
		enc := tools.EncodeDate(d)
		last = &enc
	}
	return model.Job{
		GameID:       r.GameID,
		StaffID:      r.StaffID,
		Position:     r.Position,
		FirstWorkDay: tools.EncodeDate(first),
		LastWorkDay:  last,
		Salary:       tools.MoneyToStorage(r.Salary),
	}, nil
}

// JobView is the display projection of a job row with the game and staff
// names resolved. An absent last work day displays as an empty string.
type JobView struct {
	ID           int32           `json:"id"`
	Game         string          `json:"game"`
	GameID       int32           `json:"game_id"`
	Staff        string          `json:"staff"`
	StaffID      int32           `json:"staff_id"`
	Position     string          `json:"position"`
	FirstWorkDay string          `json:"first_work_day"`
	LastWorkDay  string          `json:"last_work_day"`
	Salary       decimal.Decimal `json:"salary"`
}

func (v *JobView) ChangeDateFormat(from, to string) error {
	first, err := tools.ConvertLayout(v.FirstWorkDay, from, to)
	if err != nil {
		return errs.ErrInvalidDate
	}
	last := ""
	if v.LastWorkDay != "" {
		last, err = tools.ConvertLayout(v.LastWorkDay, from, to)
		if err != nil {
			return errs.ErrInvalidDate
		}
	}
	v.FirstWorkDay = first
	v.LastWorkDay = last
	return nil
}

type JobControl struct {
	db *gorm.DB
}

func NewJobControl(db *gorm.DB) *JobControl {
	return &JobControl{db: db}
}

func (c *JobControl) makeView(ctx context.Context, j model.Job) (JobView, error) {
	game, err := NewGameControl(c.db).GetByID(ctx, j.GameID)
	if err != nil {
		if errs.IsNotFound(err) {
			return JobView{}, &errs.MissingReferenceError{Entity: "game", ID: j.GameID}
		}
		return JobView{}, err
	}
	staff, err := NewStaffControl(c.db).GetByID(ctx, j.StaffID)
	if err != nil {
		if errs.IsNotFound(err) {
			return JobView{}, &errs.MissingReferenceError{Entity: "staff", ID: j.StaffID}
		}
		return JobView{}, err
	}
	last := ""
	if j.LastWorkDay != nil {
		last = tools.FormatDate(tools.DecodeDate(*j.LastWorkDay))
	}
	return JobView{
		ID:           j.ID,
		Game:         game.Name,
		GameID:       j.GameID,
		Staff:        staff.Name,
		StaffID:      j.StaffID,
		Position:     j.Position,
		FirstWorkDay: tools.FormatDate(tools.DecodeDate(j.FirstWorkDay)),
		LastWorkDay:  last,
		Salary:       tools.MoneyToDisplay(j.Salary),
	}, nil
}

func (c *JobControl) viewsWhere(ctx context.Context, cond string, args ...interface{}) ([]JobView, error) {
	q := c.db.WithContext(ctx)
	if cond != "" {
		q = q.Where(cond, args...)
	}
	var rows []model.Job
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, errs.FromDB(err)
	}
	views := make([]JobView, 0, len(rows))
	for _, j := range rows {
		v, err := c.makeView(ctx, j)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (c *JobControl) List(ctx context.Context) ([]JobView, error) {
	return c.viewsWhere(ctx, "")
}

func (c *JobControl) GetByID(ctx context.Context, id int32) (JobView, error) {
	var j model.Job
	if err := c.db.WithContext(ctx).First(&j, "id = ?", id).Error; err != nil {
		return JobView{}, errs.FromDB(err)
	}
	return c.makeView(ctx, j)
}

func (c *JobControl) Create(ctx context.Context, req NewJob) error {
	row, err := req.toRow()
	if err != nil {
		return err
	}
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *JobControl) Update(ctx context.Context, id int32, req NewJob) error {
	row, err := req.toRow()
	if err != nil {
		return err
	}
	if err := exists(ctx, c.db, &model.Job{}, id); err != nil {
		return err
	}
	err = c.db.WithContext(ctx).Model(&model.Job{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"game_id":        row.GameID,
			"staff_id":       row.StaffID,
			"position":       row.Position,
			"first_work_day": row.FirstWorkDay,
			"last_work_day":  row.LastWorkDay,
			"salary":         row.Salary,
		}).Error
	if err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *JobControl) Delete(ctx context.Context, id int32) error {
	res := c.db.WithContext(ctx).Delete(&model.Job{}, "id = ?", id)
	if res.Error != nil {
		return errs.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound()
	}
	return nil
}
