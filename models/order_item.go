package models

type OrderItem struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	ItemID     uint  `gorm:"not null;index" json:"item_id"`
	Item       *Item `gorm:"foreignKey:ItemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"item,omitempty"`
	OrderID    uint  `gorm:"not null;index" json:"order_id"`
	OrderPrice int   `gorm:"not null" json:"order_price"`
	Count      int   `gorm:"not null" json:"count"`
	// Omitted from JSON to avoid recursive nesting.
	Order *Order `gorm:"-" json:"-"`
}

// NewOrderItem takes count units out of item's stock.
func NewOrderItem(item *Item, orderPrice, count int) (*OrderItem, error) {
	if count <= 0 {
		return nil, ErrInvalidQuantity
	}
	if err := item.RemoveStock(count); err != nil {
		return nil, err
	}
	return &OrderItem{
		Item:       item,
		ItemID:     item.ID,
		OrderPrice: orderPrice,
		Count:      count,
	}, nil
}

func (oi *OrderItem) Cancel() {
	oi.Item.AddStock(oi.Count)
}

func (oi *OrderItem) TotalPrice() int {
	return oi.OrderPrice * oi.Count
}
