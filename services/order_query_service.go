package services

import (
	"context"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dbctx"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dto"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/repositories"
)

// OrderQueryService serves the order listings. Every strategy returns the
// same field values; they differ in how many statements they issue.
// All association loading happens inside the read-only transaction.
type OrderQueryService struct {
	tm            *dbctx.Manager
	orders        repositories.OrderRepository
	simpleQueries *repositories.OrderSimpleQueryRepository
	orderQueries  *repositories.OrderQueryRepository
}

func NewOrderQueryService(
	tm *dbctx.Manager,
	orders repositories.OrderRepository,
	simpleQueries *repositories.OrderSimpleQueryRepository,
	orderQueries *repositories.OrderQueryRepository,
) *OrderQueryService {
	return &OrderQueryService{tm: tm, orders: orders, simpleQueries: simpleQueries, orderQueries: orderQueries}
}

// loadToOne touches member and delivery of every order: 2 statements per row.
func (s *OrderQueryService) loadToOne(dbc dbctx.Context, orders []*models.Order) error {
	for _, order := range orders {
		if err := s.orders.LoadMember(dbc, order); err != nil {
			return err
		}
		if err := s.orders.LoadDelivery(dbc, order); err != nil {
			return err
		}
	}
	return nil
}

func (s *OrderQueryService) loadGraph(dbc dbctx.Context, orders []*models.Order) error {
	if err := s.loadToOne(dbc, orders); err != nil {
		return err
	}
	for _, order := range orders {
		if err := s.orders.LoadOrderItems(dbc, order); err != nil {
			return err
		}
	}
	return nil
}

// findOrders lists every order when search is empty, otherwise runs the
// capped search.
func (s *OrderQueryService) findOrders(dbc dbctx.Context, search models.OrderSearch) ([]*models.Order, error) {
	if search == (models.OrderSearch{}) {
		return s.orders.FindAll(dbc)
	}
	return s.orders.FindAllByString(dbc, search)
}

// SimpleOrdersV1 exposes entities with member and delivery forced loaded.
func (s *OrderQueryService) SimpleOrdersV1(ctx context.Context) ([]*models.Order, error) {
	var orders []*models.Order
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.orders.FindAll(dbc)
		if err != nil {
			return err
		}
		if err := s.loadToOne(dbc, found); err != nil {
			return err
		}
		orders = found
		return nil
	})
	return orders, err
}

// SimpleOrdersV2 maps per-row loaded entities: 1 + 2N statements.
func (s *OrderQueryService) SimpleOrdersV2(ctx context.Context, search models.OrderSearch) ([]dto.SimpleOrderDto, error) {
	var result []dto.SimpleOrderDto
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.findOrders(dbc, search)
		if err != nil {
			return err
		}
		if err := s.loadToOne(dbc, found); err != nil {
			return err
		}
		result, err = dto.NewSimpleOrderDtos(found)
		return err
	})
	return result, err
}

// SimpleOrdersV3 maps fetch-joined entities: 1 statement.
func (s *OrderQueryService) SimpleOrdersV3(ctx context.Context) ([]dto.SimpleOrderDto, error) {
	var result []dto.SimpleOrderDto
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.orders.FindAllWithMemberDelivery(dbc)
		if err != nil {
			return err
		}
		result, err = dto.NewSimpleOrderDtos(found)
		return err
	})
	return result, err
}

// SimpleOrdersV4 selects the DTO columns directly: 1 statement.
func (s *OrderQueryService) SimpleOrdersV4(ctx context.Context) ([]repositories.OrderSimpleQueryDto, error) {
	var result []repositories.OrderSimpleQueryDto
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.simpleQueries.FindOrderDtos(dbc)
		result = found
		return err
	})
	return result, err
}

// OrdersV1 exposes the whole entity graph.
func (s *OrderQueryService) OrdersV1(ctx context.Context) ([]*models.Order, error) {
	var orders []*models.Order
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.orders.FindAll(dbc)
		if err != nil {
			return err
		}
		if err := s.loadGraph(dbc, found); err != nil {
			return err
		}
		orders = found
		return nil
	})
	return orders, err
}

// OrdersV2 maps per-row loaded entities, items included.
func (s *OrderQueryService) OrdersV2(ctx context.Context) ([]dto.OrderDto, error) {
	var result []dto.OrderDto
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.orders.FindAll(dbc)
		if err != nil {
			return err
		}
		if err := s.loadGraph(dbc, found); err != nil {
			return err
		}
		result, err = dto.NewOrderDtos(found)
		return err
	})
	return result, err
}

// OrdersV3 maps the single fetch-join of the whole graph.
func (s *OrderQueryService) OrdersV3(ctx context.Context) ([]dto.OrderDto, error) {
	var result []dto.OrderDto
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.orders.FindAllWithItem(dbc)
		if err != nil {
			return err
		}
		result, err = dto.NewOrderDtos(found)
		return err
	})
	return result, err
}

// OrdersV3Page fetch-joins the to-one side and batches the collection, so
// offset and limit count orders rather than joined rows.
func (s *OrderQueryService) OrdersV3Page(ctx context.Context, offset, limit int) ([]dto.OrderDto, error) {
	var result []dto.OrderDto
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.orders.FindAllWithMemberDeliveryPage(dbc, offset, limit)
		if err != nil {
			return err
		}
		result, err = dto.NewOrderDtos(found)
		return err
	})
	return result, err
}

// OrdersV4 projects the roots and runs one item query per order.
func (s *OrderQueryService) OrdersV4(ctx context.Context) ([]repositories.OrderQueryDto, error) {
	var result []repositories.OrderQueryDto
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.orderQueries.FindOrderQueryDtos(dbc)
		result = found
		return err
	})
	return result, err
}

// OrdersV5 projects the roots and loads all items with one IN query.
func (s *OrderQueryService) OrdersV5(ctx context.Context) ([]repositories.OrderQueryDto, error) {
	var result []repositories.OrderQueryDto
	err := s.tm.ReadOnly(ctx, func(dbc dbctx.Context) error {
		found, err := s.orderQueries.FindAllByDtoOptimization(dbc)
		result = found
		return err
	})
	return result, err
}
