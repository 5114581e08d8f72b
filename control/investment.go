package control

import (
	"context"

	"studio/admin/errs"
	"studio/admin/model"
	"studio/admin/tools"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NewInvestment is the validated construction request for an investment row.
type NewInvestment struct {
	GameID     int32           `json:"game_id"`
	InvestorID int32           `json:"investor_id"`
	Share      int16           `json:"share"`
	Invested   decimal.Decimal `json:"invested"`
}

func (r NewInvestment) toRow() model.Investment {
	return model.Investment{
		GameID:     r.GameID,
		InvestorID: r.InvestorID,
		Share:      r.Share,
		Invested:   tools.MoneyToStorage(r.Invested),
	}
}

// InvestmentView is the display projection of an investment row with the
// game and investor names resolved.
type InvestmentView struct {
	ID         int32           `json:"id"`
	Game       string          `json:"game"`
	GameID     int32           `json:"game_id"`
	Investor   string          `json:"investor"`
	InvestorID int32           `json:"investor_id"`
	Share      int16           `json:"share"`
	Invested   decimal.Decimal `json:"invested"`
}

type InvestmentControl struct {
	db *gorm.DB
}

func NewInvestmentControl(db *gorm.DB) *InvestmentControl {
	return &InvestmentControl{db: db}
}

func (c *InvestmentControl) makeView(ctx context.Context, i model.Investment) (InvestmentView, error) {
	game, err := NewGameControl(c.db).GetByID(ctx, i.GameID)
	if err != nil {
		if errs.IsNotFound(err) {
			return InvestmentView{}, &errs.MissingReferenceError{Entity: "game", ID: i.GameID}
		}
		return InvestmentView{}, err
	}
	investor, err := NewInvestorControl(c.db).GetByID(ctx, i.InvestorID)
	if err != nil {
		if errs.IsNotFound(err) {
			return InvestmentView{}, &errs.MissingReferenceError{Entity: "investor", ID: i.InvestorID}
		}
		return InvestmentView{}, err
	}
	return InvestmentView{
		ID:         i.ID,
		Game:       game.Name,
		GameID:     i.GameID,
		Investor:   investor.Name,
		InvestorID: i.InvestorID,
		Share:      i.Share,
		Invested:   tools.MoneyToDisplay(i.Invested),
	}, nil
}

func (c *InvestmentControl) viewsWhere(ctx context.Context, cond string, args ...interface{}) ([]InvestmentView, error) {
	q := c.db.WithContext(ctx)
	if cond != "" {
		q = q.Where(cond, args...)
	}
	var rows []model.Investment
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, errs.FromDB(err)
	}
	views := make([]InvestmentView, 0, len(rows))
	for _, i := range rows {
		v, err := c.makeView(ctx, i)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (c *InvestmentControl) List(ctx context.Context) ([]InvestmentView, error) {
	return c.viewsWhere(ctx, "")
}

func (c *InvestmentControl) GetByID(ctx context.Context, id int32) (InvestmentView, error) {
	var i model.Investment
	if err := c.db.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return InvestmentView{}, errs.FromDB(err)
	}
	return c.makeView(ctx, i)
}

func (c *InvestmentControl) Create(ctx context.Context, req NewInvestment) error {
	row := req.toRow()
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *InvestmentControl) Update(ctx context.Context, id int32, req NewInvestment) error {
	if err := exists(ctx, c.db, &model.Investment{}, id); err != nil {
		return err
	}
	row := req.toRow()
	err := c.db.WithContext(ctx).Model(&model.Investment{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"game_id":     row.GameID,
			"investor_id": row.InvestorID,
			"share":       row.Share,
			"invested":    row.Invested,
		}).Error
	if err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *InvestmentControl) Delete(ctx context.Context, id int32) error {
	res := c.db.WithContext(ctx).Delete(&model.Investment{}, "id = ?", id)
	if res.Error != nil {
		return errs.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound()
	}
	return nil
}
