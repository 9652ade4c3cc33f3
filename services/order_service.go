package services

import (
	"context"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dbctx"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/repositories"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
)

// OrderService runs the order mutations. Each call is one read-write
// transaction; the aggregate is fully wired before the repository sees it.
type OrderService struct {
	tm      *dbctx.Manager
	orders  repositories.OrderRepository
	members repositories.MemberRepository
	items   repositories.ItemRepository
}

func NewOrderService(tm *dbctx.Manager, orders repositories.OrderRepository, members repositories.MemberRepository, items repositories.ItemRepository) *OrderService {
	return &OrderService{tm: tm, orders: orders, members: members, items: items}
}

// Order places count units of itemID for memberID, shipped to the member's address.
func (s *OrderService) Order(ctx context.Context, memberID, itemID uint, count int) (uint, error) {
	if count <= 0 {
		return 0, models.ErrInvalidQuantity
	}

	var orderID uint
	err := s.tm.ReadWrite(ctx, func(dbc dbctx.Context) error {
		member, err := s.members.FindOne(dbc, memberID)
		if err != nil {
			return translateNotFound(err, ErrMemberNotFound)
		}
		item, err := s.items.FindOne(dbc, itemID)
		if err != nil {
			return translateNotFound(err, ErrItemNotFound)
		}

		delivery := models.NewDelivery(member.Address)
		orderItem, err := models.NewOrderItem(item, item.Price, count)
		if err != nil {
			return err
		}
		order := models.NewOrder(member, delivery, orderItem)

		if err := s.orders.Save(dbc, order); err != nil {
			return err
		}
		if err := s.items.UpdateStock(dbc, item); err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	utils.InfoLogger.Printf("Order created (ID=%d) memberID=%d itemID=%d count=%d", orderID, memberID, itemID, count)
	return orderID, nil
}

// CancelOrder cancels the order and writes back the restored stock.
func (s *OrderService) CancelOrder(ctx context.Context, orderID uint) error {
	err := s.tm.ReadWrite(ctx, func(dbc dbctx.Context) error {
		order, err := s.orders.FindAggregate(dbc, orderID)
		if err != nil {
			return translateNotFound(err, ErrOrderNotFound)
		}
		if err := order.Cancel(); err != nil {
			return err
		}
		if err := s.orders.UpdateStatus(dbc, order); err != nil {
			return err
		}
		for _, orderItem := range order.OrderItems {
			if err := s.items.UpdateStock(dbc, orderItem.Item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("Order cancelled (ID=%d)", orderID)
	return nil
}

func (s *OrderService) CompleteDelivery(ctx context.Context, orderID uint) error {
	return s.tm.ReadWrite(ctx, func(dbc dbctx.Context) error {
		order, err := s.orders.FindOne(dbc, orderID)
		if err != nil {
			return translateNotFound(err, ErrOrderNotFound)
		}
		if err := s.orders.LoadDelivery(dbc, order); err != nil {
			return err
		}
		if err := order.CompleteDelivery(); err != nil {
			return err
		}
		return s.orders.UpdateDeliveryStatus(dbc, order.Delivery)
	})
}

// FindOrder returns the whole aggregate.
func (s *OrderService) FindOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	var order *models.Order
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.orders.FindAggregate(dbc, orderID)
		if err != nil {
			return translateNotFound(err, ErrOrderNotFound)
		}
		order = found
		return nil
	})
	return order, err
}
