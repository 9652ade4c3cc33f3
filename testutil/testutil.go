// Package testutil opens isolated in-memory databases for tests.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/config"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/database"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dbctx"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var logOnce sync.Once

func Config() config.Config {
	cfg := config.Default()
	cfg.DBDriver = "sqlite"
	cfg.DBDSN = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	cfg.SeedData = false
	return cfg
}

// NewDB returns a migrated database private to the calling test.
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	logOnce.Do(func() {
		utils.InitLogger()
		_ = utils.ConfigureLogger("warn", "text")
	})

	db, err := config.InitDB(Config())
	require.NoError(tb, err)
	require.NoError(tb, database.Migrate(db))

	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewSeededDB is NewDB plus the demo fixtures.
func NewSeededDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	db := NewDB(tb)
	require.NoError(tb, database.Seed(context.Background(), db))
	return db
}

// Ctx runs fn outside any transaction boundary.
func Ctx() dbctx.Context {
	return dbctx.Context{Ctx: context.Background()}
}

// InsertOrders bulk inserts n item-less orders for a new member called name.
func InsertOrders(tb testing.TB, db *gorm.DB, name string, n int) {
	tb.Helper()
	member := models.NewMember(name, models.NewAddress("Seoul", "1", "1111"))
	require.NoError(tb, db.Create(member).Error)

	deliveries := make([]*models.Delivery, 0, n)
	for i := 0; i < n; i++ {
		deliveries = append(deliveries, models.NewDelivery(member.Address))
	}
	require.NoError(tb, db.CreateInBatches(deliveries, 200).Error)

	orderDate := time.Date(2024, 3, 9, 5, 5, 0, 0, time.UTC)
	orders := make([]*models.Order, 0, n)
	for _, delivery := range deliveries {
		orders = append(orders, &models.Order{
			MemberID:   member.ID,
			DeliveryID: delivery.ID,
			OrderDate:  orderDate,
			Status:     models.OrderStatusOrdered,
		})
	}
	require.NoError(tb, db.Omit(clause.Associations).CreateInBatches(orders, 200).Error)
}
