package control

import (
	"context"

	"studio/admin/errs"
	"studio/admin/model"

	"gorm.io/gorm"
)

// NewInvestor is the validated construction request for an investor row.
type NewInvestor struct {
	Name      string `json:"name" binding:"required"`
	IsCompany bool   `json:"is_company"`
}

func (r NewInvestor) toRow() model.Investor {
	return model.Investor{
		Name:      r.Name,
		IsCompany: r.IsCompany,
	}
}

// InvestorView is the display projection of an investor row.
type InvestorView struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	IsCompany bool   `json:"is_company"`
}

// InvestorStatistics bundles an investor with their investments.
type InvestorStatistics struct {
	ID          int32            `json:"id"`
	Investments []InvestmentView `json:"investments"`
}

type InvestorControl struct {
	db *gorm.DB
}

func NewInvestorControl(db *gorm.DB) *InvestorControl {
	return &InvestorControl{db: db}
}

func makeInvestorView(i model.Investor) InvestorView {
	return InvestorView{
		ID:        i.ID,
		Name:      i.Name,
		IsCompany: i.IsCompany,
	}
}

func (c *InvestorControl) List(ctx context.Context) ([]InvestorView, error) {
	var rows []model.Investor
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, errs.FromDB(err)
	}
	views := make([]InvestorView, 0, len(rows))
	for _, i := range rows {
		views = append(views, makeInvestorView(i))
	}
	return views, nil
}

func (c *InvestorControl) GetByID(ctx context.Context, id int32) (InvestorView, error) {
	var i model.Investor
	if err := c.db.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return InvestorView{}, errs.FromDB(err)
	}
	return makeInvestorView(i), nil
}

func (c *InvestorControl) Create(ctx context.Context, req NewInvestor) error {
	row := req.toRow()
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *InvestorControl) Update(ctx context.Context, id int32, req NewInvestor) error {
	if err := exists(ctx, c.db, &model.Investor{}, id); err != nil {
		return err
	}
	row := req.toRow()
	err := c.db.WithContext(ctx).Model(&model.Investor{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       row.Name,
			"is_company": row.IsCompany,
		}).Error
	if err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *InvestorControl) Delete(ctx context.Context, id int32) error {
	res := c.db.WithContext(ctx).Delete(&model.Investor{}, "id = ?", id)
	if res.Error != nil {
		return errs.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound()
	}
	return nil
}

// Statistics lists the investor's investments.
func (c *InvestorControl) Statistics(ctx context.Context, id int32) (InvestorStatistics, error) {
	if err := exists(ctx, c.db, &model.Investor{}, id); err != nil {
		return InvestorStatistics{}, err
	}
	investments, err := NewInvestmentControl(c.db).viewsWhere(ctx, "investor_id = ?", id)
	if err != nil {
		return InvestorStatistics{}, err
	}
	return InvestorStatistics{ID: id, Investments: investments}, nil
}
