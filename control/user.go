package control

import (
	"context"

	"studio/admin/errs"
	"studio/admin/model"
	"studio/admin/tools"

	"gorm.io/gorm"
)

// NewUser is the validated construction request for a user row.
type NewUser struct {
	Nickname         string `json:"nickname" binding:"required"`
	RegistrationDate string `json:"registration_date" binding:"required"`
}

func (r NewUser) toRow() (model.User, error) {
	reg, err := tools.ParseDate(r.RegistrationDate)
	if err != nil {
		return model.User{}, errs.ErrInvalidDate
	}
	return model.User{
		Nickname:         r.Nickname,
		RegistrationDate: tools.EncodeDate(reg),
	}, nil
}

// UserView is the display projection of a user row.
type UserView struct {
	ID               int32  `json:"id"`
	Nickname         string `json:"nickname"`
	RegistrationDate string `json:"registration_date"`
}

func (v *UserView) ChangeDateFormat(from, to string) error {
	s, err := tools.ConvertLayout(v.RegistrationDate, from, to)
	if err != nil {
		return errs.ErrInvalidDate
	}
	v.RegistrationDate = s
	return nil
}

// UserStatistics bundles a user with their donations.
type UserStatistics struct {
	ID        int32          `json:"id"`
	Donations []DonationView `json:"donations"`
}

type UserControl struct {
	db *gorm.DB
}

func NewUserControl(db *gorm.DB) *UserControl {
	return &UserControl{db: db}
}

func makeUserView(u model.User) UserView {
	return UserView{
		ID:               u.ID,
		Nickname:         u.Nickname,
		RegistrationDate: tools.FormatDate(tools.DecodeDate(u.RegistrationDate)),
	}
}

func (c *UserControl) List(ctx context.Context) ([]UserView, error) {
	var rows []model.User
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, errs.FromDB(err)
	}
	views := make([]UserView, 0, len(rows))
	for _, u := range rows {
		views = append(views, makeUserView(u))
	}
	return views, nil
}

func (c *UserControl) GetByID(ctx context.Context, id int32) (UserView, error) {
	var u model.User
	if err := c.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return UserView{}, errs.FromDB(err)
	}
	return makeUserView(u), nil
}

func (c *UserControl) Create(ctx context.Context, req NewUser) error {
	row, err := req.toRow()
	if err != nil {
		return err
	}
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *UserControl) Update(ctx context.Context, id int32, req NewUser) error {
	row, err := req.toRow()
	if err != nil {
		return err
	}
	if err := exists(ctx, c.db, &model.User{}, id); err != nil {
		return err
	}
	err = c.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"nickname":          row.Nickname,
			"registration_date": row.RegistrationDate,
		}).Error
	if err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *UserControl) Delete(ctx context.Context, id int32) error {
	res := c.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if res.Error != nil {
		return errs.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound()
	}
	return nil
}

// Statistics lists the user's donations.
func (c *UserControl) Statistics(ctx context.Context, id int32) (UserStatistics, error) {
	if err := exists(ctx, c.db, &model.User{}, id); err != nil {
		return UserStatistics{}, err
	}
	donations, err := NewDonationControl(c.db).viewsWhere(ctx, "user_id = ?", id)
	if err != nil {
		return UserStatistics{}, err
	}
	return UserStatistics{ID: id, Donations: donations}, nil
}
