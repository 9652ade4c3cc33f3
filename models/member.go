package models

import "strings"

type Member struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Address Address `gorm:"embedded" json:"address"`
	// Inverse side of Order.Member. Never persisted from here.
	Orders []*Order `gorm:"-" json:"-"`
}

func NewMember(name string, address Address) *Member {
	return &Member{Name: name, Address: address}
}

func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (m *Member) UpdateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	m.Name = name
	return nil
}
