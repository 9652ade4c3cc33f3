package database

import (
	"context"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dbctx"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/repositories"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
	"gorm.io/gorm"
)

type seedLine struct {
	name  string
	price int
	stock int
	count int
}

type seedOrder struct {
	member *models.Member
	lines  []seedLine
}

// Seed inserts two members with one order each. It does nothing when a member
// already exists.
func Seed(ctx context.Context, db *gorm.DB) error {
	tm := dbctx.NewManager(db)
	members := repositories.NewMemberRepository(db)
	items := repositories.NewItemRepository(db)
	orders := repositories.NewOrderRepository(db)

	fixtures := []seedOrder{
		{
			member: models.NewMember("userA", models.NewAddress("Seoul", "1", "1111")),
			lines: []seedLine{
				{name: "JPA1 BOOK", price: 10000, stock: 100, count: 1},
				{name: "JPA2 BOOK", price: 20000, stock: 100, count: 2},
			},
		},
		{
			member: models.NewMember("userB", models.NewAddress("Jinju", "2", "2222")),
			lines: []seedLine{
				{name: "SPRING1 BOOK", price: 20000, stock: 200, count: 3},
				{name: "SPRING2 BOOK", price: 40000, stock: 300, count: 4},
			},
		},
	}

	return tm.ReadWrite(ctx, func(dbc dbctx.Context) error {
		count, err := members.Count(dbc)
		if err != nil {
			return err
		}
		if count > 0 {
			utils.InfoLogger.Println("Seed skipped, members already present")
			return nil
		}

		for _, fx := range fixtures {
			if err := members.Save(dbc, fx.member); err != nil {
				return err
			}

			orderItems := make([]*models.OrderItem, 0, len(fx.lines))
			for _, line := range fx.lines {
				item := &models.Item{Name: line.name, Price: line.price, StockQuantity: line.stock}
				orderItem, err := models.NewOrderItem(item, line.price, line.count)
				if err != nil {
					return err
				}
				if err := items.Save(dbc, item); err != nil {
					return err
				}
				orderItems = append(orderItems, orderItem)
			}

			order := models.NewOrder(fx.member, models.NewDelivery(fx.member.Address), orderItems...)
			if err := orders.Save(dbc, order); err != nil {
				return err
			}
		}

		utils.InfoLogger.Printf("Seeded %d members with one order each", len(fixtures))
		return nil
	})
}
