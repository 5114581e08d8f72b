package control

import (
	"context"

	"studio/admin/errs"
	"studio/admin/model"
	"studio/admin/tools"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NewGame is the validated construction request for a game row.
type NewGame struct {
	Name           string          `json:"name" binding:"required"`
	Genre          string          `json:"genre" binding:"required"`
	ReleaseDate    string          `json:"release_date" binding:"required"`
	PrimeCost      decimal.Decimal `json:"prime_cost"`
	PublisherID    int32           `json:"publisher_id"`
	Cost           decimal.Decimal `json:"cost"`
	IsSubscribable bool            `json:"is_subscribable"`
}

func (r NewGame) toRow() (model.Game, error) {
	release, err := tools.ParseDate(r.ReleaseDate)
	if err != nil {
		return model.Game{}, errs.ErrInvalidDate
	}
	return model.Game{
		Name:           r.Name,
		Genre:          r.Genre,
		ReleaseDate:    tools.EncodeDate(release),
		PrimeCost:      tools.MoneyToStorage(r.PrimeCost),
		PublisherID:    r.PublisherID,
		Cost:           tools.MoneyToStorage(r.Cost),
		IsSubscribable: r.IsSubscribable,
	}, nil
}

// GameView is the display projection of a game row with the publisher
// name resolved.
type GameView struct {
	ID             int32           `json:"id"`
	Name           string          `json:"name"`
	Genre          string          `json:"genre"`
	ReleaseDate    string          `json:"release_date"`
	PrimeCost      decimal.Decimal `json:"prime_cost"`
	Publisher      string          `json:"publisher"`
	PublisherID    int32           `json:"publisher_id"`
	Cost           decimal.Decimal `json:"cost"`
	IsSubscribable bool            `json:"is_subscribable"`
}

// ChangeDateFormat re-renders the release date in another layout. A value
// that does not match the from layout leaves the view untouched.
func (v *GameView) ChangeDateFormat(from, to string) error {
	s, err := tools.ConvertLayout(v.ReleaseDate, from, to)
	if err != nil {
		return errs.ErrInvalidDate
	}
	v.ReleaseDate = s
	return nil
}

// DonorTotal is one donor's summed donations to a game.
type DonorTotal struct {
	User   string          `json:"user"`
	Amount decimal.Decimal `json:"amount"`
}

// GameStatistics bundles a game's staff roster, donations, investments and
// the per-donor donation totals with their grand total.
type GameStatistics struct {
	ID             int32            `json:"id"`
	Staff          []JobView        `json:"staff"`
	Donations      []DonationView   `json:"donations"`
	Investments    []InvestmentView `json:"investments"`
	TotalDonations []DonorTotal     `json:"total_donations"`
	Total          decimal.Decimal  `json:"total"`
}

const totalDonationsSQL = `
SELECT u.nickname AS nickname, SUM(d.amount) AS total
FROM donations d
JOIN users u ON u.id = d.user_id
WHERE d.game_id = ?
GROUP BY u.nickname
ORDER BY u.nickname ASC`

type GameControl struct {
	db *gorm.DB
}

func NewGameControl(db *gorm.DB) *GameControl {
	return &GameControl{db: db}
}

func (c *GameControl) makeView(ctx context.Context, g model.Game) (GameView, error) {
	publisher, err := NewPublisherControl(c.db).GetByID(ctx, g.PublisherID)
	if err != nil {
		if errs.IsNotFound(err) {
			return GameView{}, &errs.MissingReferenceError{Entity: "publisher", ID: g.PublisherID}
		}
		return GameView{}, err
	}
	return GameView{
		ID:             g.ID,
		Name:           g.Name,
		Genre:          g.Genre,
		ReleaseDate:    tools.FormatDate(tools.DecodeDate(g.ReleaseDate)),
		PrimeCost:      tools.MoneyToDisplay(g.PrimeCost),
		Publisher:      publisher.Name,
		PublisherID:    g.PublisherID,
		Cost:           tools.MoneyToDisplay(g.Cost),
		IsSubscribable: g.IsSubscribable,
	}, nil
}

func (c *GameControl) viewsWhere(ctx context.Context, cond string, args ...interface{}) ([]GameView, error) {
	q := c.db.WithContext(ctx)
	if cond != "" {
		q = q.Where(cond, args...)
	}
	var rows []model.Game
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, errs.FromDB(err)
	}
	views := make([]GameView, 0, len(rows))
	for _, g := range rows {
		v, err := c.makeView(ctx, g)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (c *GameControl) List(ctx context.Context) ([]GameView, error) {
	return c.viewsWhere(ctx, "")
}

func (c *GameControl) GetByID(ctx context.Context, id int32) (GameView, error) {
	var g model.Game
	if err := c.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		return GameView{}, errs.FromDB(err)
	}
	return c.makeView(ctx, g)
}

func (c *GameControl) Create(ctx context.Context, req NewGame) error {
	row, err := req.toRow()
	if err != nil {
		return err
	}
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *GameControl) Update(ctx context.Context, id int32, req NewGame) error {
	row, err := req.toRow()
	if err != nil {
		return err
	}
	if err := exists(ctx, c.db, &model.Game{}, id); err != nil {
		return err
	}
	err = c.db.WithContext(ctx).Model(&model.Game{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":            row.Name,
			"genre":           row.Genre,
			"release_date":    row.ReleaseDate,
			"prime_cost":      row.PrimeCost,
			"publisher_id":    row.PublisherID,
			"cost":            row.Cost,
			"is_subscribable": row.IsSubscribable,
		}).Error
	if err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *GameControl) Delete(ctx context.Context, id int32) error {
	res := c.db.WithContext(ctx).Delete(&model.Game{}, "id = ?", id)
	if res.Error != nil {
		return errs.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound()
	}
	return nil
}

// TotalDonations groups the game's donations by donor nickname and sums
// them, returning the per-donor totals and the grand total.
func (c *GameControl) TotalDonations(ctx context.Context, id int32) ([]DonorTotal, decimal.Decimal, error) {
	var rows []struct {
		Nickname string
		Total    int64
	}
	if err := c.db.WithContext(ctx).Raw(totalDonationsSQL, id).Scan(&rows).Error; err != nil {
		return nil, decimal.Zero, errs.FromDB(err)
	}
	totals := make([]DonorTotal, 0, len(rows))
	sum := decimal.Zero
	for _, r := range rows {
		amount := tools.MoneyToDisplay(r.Total)
		totals = append(totals, DonorTotal{User: r.Nickname, Amount: amount})
		sum = sum.Add(amount)
	}
	return totals, sum, nil
}

// Statistics assembles the game's detail bundle. The reads are independent
// queries; no transaction spans them.
func (c *GameControl) Statistics(ctx context.Context, id int32) (GameStatistics, error) {
	if err := exists(ctx, c.db, &model.Game{}, id); err != nil {
		return GameStatistics{}, err
	}
	staff, err := NewJobControl(c.db).viewsWhere(ctx, "game_id = ?", id)
	if err != nil {
		return GameStatistics{}, err
	}
	donations, err := NewDonationControl(c.db).viewsWhere(ctx, "game_id = ?", id)
	if err != nil {
		return GameStatistics{}, err
	}
	investments, err := NewInvestmentControl(c.db).viewsWhere(ctx, "game_id = ?", id)
	if err != nil {
		return GameStatistics{}, err
	}
	totals, sum, err := c.TotalDonations(ctx, id)
	if err != nil {
		return GameStatistics{}, err
	}
	return GameStatistics{
		ID:             id,
		Staff:          staff,
		Donations:      donations,
		Investments:    investments,
		TotalDonations: totals,
		Total:          sum,
	}, nil
}
