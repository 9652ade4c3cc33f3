package models

type DeliveryStatus string

const (
	DeliveryStatusReady     DeliveryStatus = "READY"
	DeliveryStatusCompleted DeliveryStatus = "COMPLETED"
)

type Delivery struct {
	ID      uint           `gorm:"primaryKey" json:"id"`
	Address Address        `gorm:"embedded" json:"address"`
	Status  DeliveryStatus `gorm:"type:varchar(20);not null;default:'READY'" json:"status"`
	// Inverse side of Order.Delivery, set by Order.SetDelivery.
	Order *Order `gorm:"-" json:"-"`
}

func NewDelivery(address Address) *Delivery {
	return &Delivery{Address: address, Status: DeliveryStatusReady}
}

func (d *Delivery) Complete() {
	d.Status = DeliveryStatusCompleted
}
