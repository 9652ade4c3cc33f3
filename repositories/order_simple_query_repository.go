package repositories

import (
	"time"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dbctx"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
	"gorm.io/gorm"
)

type OrderSimpleQueryDto struct {
	OrderID   uint               `json:"order_id"`
	Name      string             `json:"name"`
	OrderDate utils.JSONTime     `json:"order_date"`
	Status    models.OrderStatus `json:"status"`
	Address   models.Address     `json:"address"`
}

// orderRootRow is the projection shared by the simple and full query DTOs.
type orderRootRow struct {
	OrderID     uint
	Name        string
	OrderDate   time.Time
	OrderStatus models.OrderStatus
	City        string
	Street      string
	Zipcode     string
}

func (row orderRootRow) address() models.Address {
	return models.NewAddress(row.City, row.Street, row.Zipcode)
}

func selectOrderRoots(tx *gorm.DB) *gorm.DB {
	return tx.Table("orders o").
		Select("o.id AS order_id, m.name AS name, o.order_date AS order_date, o.status AS order_status, d.city AS city, d.street AS street, d.zipcode AS zipcode").
		Joins("JOIN members m ON m.id = o.member_id").
		Joins("JOIN deliveries d ON d.id = o.delivery_id").
		Order("o.id")
}

// OrderSimpleQueryRepository selects exactly the DTO columns; no entity is
// materialized.
type OrderSimpleQueryRepository struct {
	db *gorm.DB
}

func NewOrderSimpleQueryRepository(db *gorm.DB) *OrderSimpleQueryRepository {
	return &OrderSimpleQueryRepository{db: db}
}

func (r *OrderSimpleQueryRepository) FindOrderDtos(dbc dbctx.Context) ([]OrderSimpleQueryDto, error) {
	var rows []orderRootRow
	if err := selectOrderRoots(dbc.DB(r.db)).Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]OrderSimpleQueryDto, 0, len(rows))
	for _, row := range rows {
		result = append(result, OrderSimpleQueryDto{
			OrderID:   row.OrderID,
			Name:      row.Name,
			OrderDate: utils.JSONTime(row.OrderDate),
			Status:    row.OrderStatus,
			Address:   row.address(),
		})
	}
	return result, nil
}
