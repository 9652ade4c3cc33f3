package repositories

import (
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dbctx"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Save(dbc dbctx.Context, item *models.Item) error
	FindOne(dbc dbctx.Context, id uint) (*models.Item, error)
	FindAll(dbc dbctx.Context) ([]*models.Item, error)
	UpdateStock(dbc dbctx.Context, item *models.Item) error
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Save(dbc dbctx.Context, item *models.Item) error {
	return dbc.DB(r.db).Save(item).Error
}

func (r *itemRepository) FindOne(dbc dbctx.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := dbc.DB(r.db).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) FindAll(dbc dbctx.Context) ([]*models.Item, error) {
	var items []*models.Item
	if err := dbc.DB(r.db).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStock writes back only the stock column.
func (r *itemRepository) UpdateStock(dbc dbctx.Context, item *models.Item) error {
	return dbc.DB(r.db).Model(item).Update("stock_quantity", item.StockQuantity).Error
}
