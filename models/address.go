package models

// Address is copied by value into Member and Delivery.
type Address struct {
	City    string `gorm:"type:varchar(100)" json:"city"`
	Street  string `gorm:"type:varchar(255)" json:"street"`
	Zipcode string `gorm:"type:varchar(20)" json:"zipcode"`
}

func NewAddress(city, street, zipcode string) Address {
	return Address{City: city, Street: street, Zipcode: zipcode}
}
