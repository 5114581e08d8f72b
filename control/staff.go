package control

import (
	"context"

	"studio/admin/errs"
	"studio/admin/model"
	"studio/admin/tools"

	"gorm.io/gorm"
)

// NewStaff is the validated construction request for a staff row.
type NewStaff struct {
	Name  string `json:"name" binding:"required"`
	Birth string `json:"birth" binding:"required"`
}

func (r NewStaff) toRow() (model.Staff, error) {
	birth, err := tools.ParseDate(r.Birth)
	if err != nil {
		return model.Staff{}, errs.ErrInvalidDate
	}
	return model.Staff{
		Name:  r.Name,
		Birth: tools.EncodeDate(birth),
	}, nil
}

// StaffView is the display projection of a staff row.
type StaffView struct {
	ID    int32  `json:"id"`
	Name  string `json:"name"`
	Birth string `json:"birth"`
}

func (v *StaffView) ChangeDateFormat(from, to string) error {
	s, err := tools.ConvertLayout(v.Birth, from, to)
	if err != nil {
		return errs.ErrInvalidDate
	}
	v.Birth = s
	return nil
}

// StaffStatistics bundles a staff member with their jobs.
type StaffStatistics struct {
	ID   int32     `json:"id"`
	Jobs []JobView `json:"jobs"`
}

type StaffControl struct {
	db *gorm.DB
}

func NewStaffControl(db *gorm.DB) *StaffControl {
	return &StaffControl{db: db}
}

func makeStaffView(s model.Staff) StaffView {
	return StaffView{
		ID:    s.ID,
		Name:  s.Name,
		Birth: tools.FormatDate(tools.DecodeDate(s.Birth)),
	}
}

func (c *StaffControl) List(ctx context.Context) ([]StaffView, error) {
	var rows []model.Staff
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, errs.FromDB(err)
	}
	views := make([]StaffView, 0, len(rows))
	for _, s := range rows {
		views = append(views, makeStaffView(s))
	}
	return views, nil
}

func (c *StaffControl) GetByID(ctx context.Context, id int32) (StaffView, error) {
	var s model.Staff
	if err := c.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return StaffView{}, errs.FromDB(err)
	}
	return makeStaffView(s), nil
}

func (c *StaffControl) Create(ctx context.Context, req NewStaff) error {
	row, err := req.toRow()
	if err != nil {
		return err
	}
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *StaffControl) Update(ctx context.Context, id int32, req NewStaff) error {
	row, err := req.toRow()
	if err != nil {
		return err
	}
	if err := exists(ctx, c.db, &model.Staff{}, id); err != nil {
		return err
	}
	err = c.db.WithContext(ctx).Model(&model.Staff{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":  row.Name,
			"birth": row.Birth,
		}).Error
	if err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *StaffControl) Delete(ctx context.Context, id int32) error {
	res := c.db.WithContext(ctx).Delete(&model.Staff{}, "id = ?", id)
	if res.Error != nil {
		return errs.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound()
	}
	return nil
}

// Statistics lists the staff member's jobs.
func (c *StaffControl) Statistics(ctx context.Context, id int32) (StaffStatistics, error) {
	if err := exists(ctx, c.db, &model.Staff{}, id); err != nil {
		return StaffStatistics{}, err
	}
	jobs, err := NewJobControl(c.db).viewsWhere(ctx, "staff_id = ?", id)
	if err != nil {
		return StaffStatistics{}, err
	}
	return StaffStatistics{ID: id, Jobs: jobs}, nil
}
