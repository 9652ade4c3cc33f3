package repositories

import (
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dbctx"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
	"gorm.io/gorm"
)

type OrderQueryDto struct {
	OrderID     uint                `json:"order_id"`
	Name        string              `json:"name"`
	OrderDate   utils.JSONTime      `json:"order_date"`
	OrderStatus models.OrderStatus  `json:"order_status"`
	Address     models.Address      `json:"address"`
	OrderItems  []OrderItemQueryDto `json:"order_items"`
}

type OrderItemQueryDto struct {
	OrderID    uint   `json:"-"`
	ItemName   string `json:"item_name"`
	OrderPrice int    `json:"order_price"`
	Count      int    `json:"count"`
}

type OrderQueryRepository struct {
	db *gorm.DB
}

func NewOrderQueryRepository(db *gorm.DB) *OrderQueryRepository {
	return &OrderQueryRepository{db: db}
}

// FindOrderQueryDtos runs the root projection, then one item query per order.
func (r *OrderQueryRepository) FindOrderQueryDtos(dbc dbctx.Context) ([]OrderQueryDto, error) {
	result, err := r.findOrders(dbc)
	if err != nil {
		return nil, err
	}
	for i := range result {
		items, err := r.findOrderItems(dbc, []uint{result[i].OrderID})
		if err != nil {
			return nil, err
		}
		result[i].OrderItems = items
	}
	return result, nil
}

// FindAllByDtoOptimization runs the root projection and a single IN query for
// the items of every order.
func (r *OrderQueryRepository) FindAllByDtoOptimization(dbc dbctx.Context) ([]OrderQueryDto, error) {
	result, err := r.findOrders(dbc)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	orderIDs := make([]uint, 0, len(result))
	for _, o := range result {
		orderIDs = append(orderIDs, o.OrderID)
	}
	items, err := r.findOrderItems(dbc, orderIDs)
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[uint][]OrderItemQueryDto, len(result))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}
	for i := range result {
		if found, ok := itemsByOrder[result[i].OrderID]; ok {
			result[i].OrderItems = found
		}
	}
	return result, nil
}

func (r *OrderQueryRepository) findOrders(dbc dbctx.Context) ([]OrderQueryDto, error) {
	var rows []orderRootRow
	if err := selectOrderRoots(dbc.DB(r.db)).Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]OrderQueryDto, 0, len(rows))
	for _, row := range rows {
		result = append(result, OrderQueryDto{
			OrderID:     row.OrderID,
			Name:        row.Name,
			OrderDate:   utils.JSONTime(row.OrderDate),
			OrderStatus: row.OrderStatus,
			Address:     row.address(),
			OrderItems:  []OrderItemQueryDto{},
		})
	}
	return result, nil
}

func (r *OrderQueryRepository) findOrderItems(dbc dbctx.Context, orderIDs []uint) ([]OrderItemQueryDto, error) {
	items := make([]OrderItemQueryDto, 0)
	err := dbc.DB(r.db).
		Table("order_items oi").
		Select("oi.order_id AS order_id, i.name AS item_name, oi.order_price AS order_price, oi.count AS count").
		Joins("JOIN items i ON i.id = oi.item_id").
		Where("oi.order_id IN ?", orderIDs).
		Order("oi.id").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []OrderItemQueryDto{}
	}
	return items, nil
}
