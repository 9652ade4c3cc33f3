package services

import (
	"context"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dbctx"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/repositories"
)

type ItemService struct {
	tm    *dbctx.Manager
	items repositories.ItemRepository
}

func NewItemService(tm *dbctx.Manager, items repositories.ItemRepository) *ItemService {
	return &ItemService{tm: tm, items: items}
}

func (s *ItemService) SaveItem(ctx context.Context, item *models.Item) (uint, error) {
	if err := item.Validate(); err != nil {
		return 0, err
	}
	err := s.tm.ReadWrite(ctx, func(dbc dbctx.Context) error {
		return s.items.Save(dbc, item)
	})
	return item.ID, err
}

func (s *ItemService) FindItems(ctx context.Context) ([]*models.Item, error) {
	var items []*models.Item
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.items.FindAll(dbc)
		items = found
		return err
	})
	return items, err
}

func (s *ItemService) FindOne(ctx context.Context, id uint) (*models.Item, error) {
	var item *models.Item
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.items.FindOne(dbc, id)
		if err != nil {
			return translateNotFound(err, ErrItemNotFound)
		}
		item = found
		return nil
	})
	return item, err
}
