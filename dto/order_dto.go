package dto

import (
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
)

type SimpleOrderDto struct {
	OrderID   uint               `json:"order_id"`
	Name      string             `json:"name"`
	OrderDate utils.JSONTime     `json:"order_date"`
	Status    models.OrderStatus `json:"status"`
	Address   models.Address     `json:"address"`
}

// NewSimpleOrderDto needs Member and Delivery loaded.
func NewSimpleOrderDto(order *models.Order) (SimpleOrderDto, error) {
	if order.Member == nil || order.Delivery == nil {
		return SimpleOrderDto{}, models.ErrAssociationNotLoaded
	}
	return SimpleOrderDto{
		OrderID:   order.ID,
		Name:      order.Member.Name,
		OrderDate: utils.JSONTime(order.OrderDate),
		Status:    order.Status,
		Address:   order.Delivery.Address,
	}, nil
}

type OrderDto struct {
	OrderID     uint               `json:"order_id"`
	Name        string             `json:"name"`
	OrderDate   utils.JSONTime     `json:"order_date"`
	OrderStatus models.OrderStatus `json:"order_status"`
	Address     models.Address     `json:"address"`
	OrderItems  []OrderItemDto     `json:"order_items"`
}

type OrderItemDto struct {
	ItemName   string `json:"item_name"`
	OrderPrice int    `json:"order_price"`
	Count      int    `json:"count"`
}

// NewOrderDto needs Member, Delivery and every OrderItem.Item loaded.
func NewOrderDto(order *models.Order) (OrderDto, error) {
	if order.Member == nil || order.Delivery == nil {
		return OrderDto{}, models.ErrAssociationNotLoaded
	}

	items := make([]OrderItemDto, 0, len(order.OrderItems))
	for _, orderItem := range order.OrderItems {
		if orderItem.Item == nil {
			return OrderDto{}, models.ErrAssociationNotLoaded
		}
		items = append(items, OrderItemDto{
			ItemName:   orderItem.Item.Name,
			OrderPrice: orderItem.OrderPrice,
			Count:      orderItem.Count,
		})
	}

	return OrderDto{
		OrderID:     order.ID,
		Name:        order.Member.Name,
		OrderDate:   utils.JSONTime(order.OrderDate),
		OrderStatus: order.Status,
		Address:     order.Delivery.Address,
		OrderItems:  items,
	}, nil
}

func NewSimpleOrderDtos(orders []*models.Order) ([]SimpleOrderDto, error) {
	result := make([]SimpleOrderDto, 0, len(orders))
	for _, order := range orders {
		d, err := NewSimpleOrderDto(order)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}

func NewOrderDtos(orders []*models.Order) ([]OrderDto, error) {
	result := make([]OrderDto, 0, len(orders))
	for _, order := range orders {
		d, err := NewOrderDto(order)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}
