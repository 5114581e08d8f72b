package control

import (
	"context"

	"studio/admin/errs"
	"studio/admin/model"
	"studio/admin/tools"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NewPublisher is the validated construction request for a publisher row.
type NewPublisher struct {
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	Popularity int16           `json:"popularity"`
}

func (r NewPublisher) toRow() model.Publisher {
	return model.Publisher{
		Name:       r.Name,
		Price:      tools.MoneyToStorage(r.Price),
		Popularity: r.Popularity,
	}
}

// PublisherView is the display projection of a publisher row.
type PublisherView struct {
	ID         int32           `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Popularity int16           `json:"popularity"`
}

// PublisherStatistics bundles a publisher with its games.
type PublisherStatistics struct {
	ID    int32      `json:"id"`
	Games []GameView `json:"games"`
}

type PublisherControl struct {
	db *gorm.DB
}

func NewPublisherControl(db *gorm.DB) *PublisherControl {
	return &PublisherControl{db: db}
}

func makePublisherView(p model.Publisher) PublisherView {
	return PublisherView{
		ID:         p.ID,
		Name:       p.Name,
		Price:      tools.MoneyToDisplay(p.Price),
		Popularity: p.Popularity,
	}
}

func (c *PublisherControl) List(ctx context.Context) ([]PublisherView, error) {
	var rows []model.Publisher
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, errs.FromDB(err)
	}
	views := make([]PublisherView, 0, len(rows))
	for _, p := range rows {
		views = append(views, makePublisherView(p))
	}
	return views, nil
}

func (c *PublisherControl) GetByID(ctx context.Context, id int32) (PublisherView, error) {
	var p model.Publisher
	if err := c.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return PublisherView{}, errs.FromDB(err)
	}
	return makePublisherView(p), nil
}

func (c *PublisherControl) Create(ctx context.Context, req NewPublisher) error {
	row := req.toRow()
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *PublisherControl) Update(ctx context.Context, id int32, req NewPublisher) error {
	if err := exists(ctx, c.db, &model.Publisher{}, id); err != nil {
		return err
	}
	row := req.toRow()
	err := c.db.WithContext(ctx).Model(&model.Publisher{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       row.Name,
			"price":      row.Price,
			"popularity": row.Popularity,
		}).Error
	if err != nil {
		return errs.FromDB(err)
	}
	return nil
}

func (c *PublisherControl) Delete(ctx context.Context, id int32) error {
	res := c.db.WithContext(ctx).Delete(&model.Publisher{}, "id = ?", id)
	if res.Error != nil {
		return errs.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound()
	}
	return nil
}

// Statistics lists the publisher's games.
func (c *PublisherControl) Statistics(ctx context.Context, id int32) (PublisherStatistics, error) {
	if err := exists(ctx, c.db, &model.Publisher{}, id); err != nil {
		return PublisherStatistics{}, err
	}
	games, err := NewGameControl(c.db).viewsWhere(ctx, "publisher_id = ?", id)
	if err != nil {
		return PublisherStatistics{}, err
	}
	return PublisherStatistics{ID: id, Games: games}, nil
}
