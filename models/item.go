package models

import "strings"

type Item struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"type:varchar(255);not null" json:"name"`
	Price         int    `gorm:"not null" json:"price"`
	StockQuantity int    `gorm:"not null;default:0" json:"stock_quantity"`
}

func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	if i.Price < 0 {
		return ErrInvalidPrice
	}
	if i.StockQuantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

func (i *Item) AddStock(quantity int) {
	i.StockQuantity += quantity
}

// RemoveStock leaves the stock untouched when it would go negative.
func (i *Item) RemoveStock(quantity int) error {
	rest := i.StockQuantity - quantity
	if rest < 0 {
		return ErrNotEnoughStock
	}
	i.StockQuantity = rest
	return nil
}
