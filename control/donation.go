package control

import (
	"context"

	"studio/admin/errs"
	"studio/admin/model"
	"studio/admin/tools"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NewDonation is the validated construction request for a donation row.
type NewDonation struct {
	UserID       int32           `json:"user_id"`
	GameID       int32           `json:"game_id"`
	Amount       decimal.Decimal `json:"amount"`
	DonationTime string          `json:"donation_time" binding:"required"`
}

func (r NewDonation) toRow() (model.Donation, error) {
	at, err := tools.ParseTimestamp(r.DonationTime)
	if err != nil {
		return model.Donation{}, errs.ErrInvalidDate
	}
	return model.Donation{
		UserID:       r.UserID,
		GameID:       r.GameID,
		Amount:       tools.MoneyToStorage(r.Amount),
		DonationTime: at,
	}, nil
}

// DonationView is the display projection of a donation row with the user
// and game names resolved.
type DonationView struct {
	ID           int32           `json:"id"`
	User         string          `json:"user"`
	UserID       int32           `json:"user_id"`
	Game         string          `json:"game"`
	GameID       int32           `json:"game_id"`
	Amount       decimal.Decimal `json:"amount"`
	DonationTime string          `json:"donation_time"`
}

func (v *DonationView) ChangeDateFormat(from, to string) error {
	s, err := tools.ConvertLayout(v.DonationTime, from, to)
	if err != nil {
		return errs.ErrInvalidDate
	}
	v.DonationTime = s
	return nil
}

type DonationControl struct {
	db *gorm.DB
}

func NewDonationControl(db *gorm.DB) *DonationControl {
	return &DonationControl{db: db}
}

func (c *DonationControl) makeView(ctx context.Context, d model.Donation) (DonationView, error) {
	game, err := NewGameControl(c.db).GetByID(ctx, d.GameID)
	if err != nil {
		if errs.IsNotFound(err) {
			return DonationView{}, &errs.MissingReferenceError{Entity: "game", ID: d.GameID}
		}
		return DonationView{}, err
	}
	user, err := NewUserControl(c.db).GetByID(ctx, d.UserID)
	if err != nil {
		if errs.IsNotFound(err) {
			return DonationView{}, &errs.MissingReferenceError{Entity: "user", ID: d.UserID}
		}
		return DonationView{}, err
	}
	return DonationView{
		ID:           d.ID,
		User:         user.Nickname,
		UserID:       d.UserID,
		Game:         game.Name,
		GameID:       d.GameID,
		Amount:       tools.MoneyToDisplay(d.Amount),
		DonationTime: tools.FormatTimestamp(d.DonationTime),
	}, nil
}

func (c *DonationControl) viewsWhere(ctx context.Context, cond string, args ...interface{}) ([]DonationView, error) {
	q := c.db.WithContext(ctx)
	if cond != "" {
		q = q.Where(cond, args...)
	}
	var rows []model.Donation
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, errs.FromDB(err)
	}
	views := make([]DonationView, 0, len(rows))
	for _, d := range rows {
		v, err := c.makeView(ctx, d)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (c *DonationControl) List(ctx context.Context) ([]DonationView, error) {
	return c.viewsWhere(ctx, "")
}

func (c *DonationControl) GetByID(ctx context.Context, id int32) (DonationView, error) {
	var d model.Donation
	if err := c.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return DonationView{}, errs.FromDB(err)
	}
	return c.makeView(ctx, d)
}

func (c *DonationControl) Create(ctx context.Context, req NewDonation) error {
	row, err := req.toRow()
	if err != nil {
		return err
	}
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *DonationControl) Update(ctx context.Context, id int32, req NewDonation) error {
	row, err := req.toRow()
	if err != nil {
		return err
	}
	if err := exists(ctx, c.db, &model.Donation{}, id); err != nil {
		return err
	}
	err = c.db.WithContext(ctx).Model(&model.Donation{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"user_id":       row.UserID,
			"game_id":       row.GameID,
			"amount":        row.Amount,
			"donation_time": row.DonationTime,
		}).Error
	if err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *DonationControl) Delete(ctx context.Context, id int32) error {
	res := c.db.WithContext(ctx).Delete(&model.Donation{}, "id = ?", id)
	if res.Error != nil {
		return errs.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound()
	}
	return nil
}
