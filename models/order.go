package models

import (
	"encoding/json"
	"time"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
)

type OrderStatus string

const (
	OrderStatusOrdered   OrderStatus = "ORDERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is the aggregate root. OrderItems and Delivery share its lifecycle;
// the repository persists them together.
type Order struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	MemberID   uint         `gorm:"not null;index" json:"member_id"`
	Member     *Member      `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	OrderItems []*OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"order_items"`
	DeliveryID uint         `gorm:"not null;uniqueIndex" json:"delivery_id"`
	Delivery   *Delivery    `gorm:"foreignKey:DeliveryID" json:"delivery,omitempty"`
	OrderDate  time.Time    `gorm:"not null" json:"order_date"`
	Status     OrderStatus  `gorm:"type:varchar(20);not null" json:"status"`
}

var now = time.Now

// MarshalJSON renders OrderDate in the display layout used by every listing.
func (o Order) MarshalJSON() ([]byte, error) {
	type order Order
	return json.Marshal(struct {
		order
		OrderDate utils.JSONTime `json:"order_date"`
	}{order: order(o), OrderDate: utils.JSONTime(o.OrderDate)})
}

// NewOrder wires member, delivery and items on both sides before returning.
func NewOrder(member *Member, delivery *Delivery, orderItems ...*OrderItem) *Order {
	order := &Order{}
	order.SetMember(member)
	order.SetDelivery(delivery)
	for _, orderItem := range orderItems {
		order.AddOrderItem(orderItem)
	}
	order.Status = OrderStatusOrdered
	order.OrderDate = now()
	return order
}

func (o *Order) SetMember(member *Member) {
	o.Member = member
	o.MemberID = member.ID
	member.Orders = append(member.Orders, o)
}

func (o *Order) SetDelivery(delivery *Delivery) {
	o.Delivery = delivery
	o.DeliveryID = delivery.ID
	delivery.Order = o
}

func (o *Order) AddOrderItem(orderItem *OrderItem) {
	o.OrderItems = append(o.OrderItems, orderItem)
	orderItem.Order = o
	orderItem.OrderID = o.ID
}

// Cancel marks the order cancelled and restores the stock of every item.
// Delivery and every OrderItem.Item must be loaded.
func (o *Order) Cancel() error {
	if o.Delivery == nil {
		return ErrAssociationNotLoaded
	}
	if o.Delivery.Status == DeliveryStatusCompleted {
		return ErrAlreadyDelivered
	}
	if o.Status == OrderStatusCancelled {
		return ErrAlreadyCancelled
	}
	for _, orderItem := range o.OrderItems {
		if orderItem.Item == nil {
			return ErrAssociationNotLoaded
		}
	}

	o.Status = OrderStatusCancelled
	for _, orderItem := range o.OrderItems {
		orderItem.Cancel()
	}
	return nil
}

// CompleteDelivery is refused for cancelled orders.
func (o *Order) CompleteDelivery() error {
	if o.Delivery == nil {
		return ErrAssociationNotLoaded
	}
	if o.Status == OrderStatusCancelled {
		return ErrAlreadyCancelled
	}
	o.Delivery.Complete()
	return nil
}

func (o *Order) TotalPrice() int {
	total := 0
	for _, orderItem := range o.OrderItems {
		total += orderItem.TotalPrice()
	}
	return total
}
