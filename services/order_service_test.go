package services_test

import (
	"context"
	"testing"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dbctx"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/repositories"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/services"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderFixture struct {
	members *services.MemberService
	items   *services.ItemService
	orders  *services.OrderService
}

func newOrderFixture(db *gorm.DB) orderFixture {
	tm := dbctx.NewManager(db)
	memberRepo := repositories.NewMemberRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	return orderFixture{
		members: services.NewMemberService(tm, memberRepo),
		items:   services.NewItemService(tm, itemRepo),
		orders:  services.NewOrderService(tm, repositories.NewOrderRepository(db), memberRepo, itemRepo),
	}
}

func (f orderFixture) memberAndBook(t *testing.T, stock int) (uint, uint) {
	t.Helper()
	ctx := context.Background()
	memberID, err := f.members.Join(ctx, models.NewMember("kim", models.NewAddress("Seoul", "river", "123-123")))
	require.NoError(t, err)
	itemID, err := f.items.SaveItem(ctx, &models.Item{Name: "JPA BOOK", Price: 10000, StockQuantity: stock})
	require.NoError(t, err)
	return memberID, itemID
}

func TestOrder(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(testutil.NewDB(t))
	memberID, itemID := f.memberAndBook(t, 10)

	orderID, err := f.orders.Order(ctx, memberID, itemID, 2)
	require.NoError(t, err)

	order, err := f.orders.FindOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusOrdered, order.Status)
	assert.Equal(t, memberID, order.Member.ID)
	assert.Equal(t, "Seoul", order.Delivery.Address.City)
	assert.Equal(t, models.DeliveryStatusReady, order.Delivery.Status)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, 20000, order.TotalPrice())

	item, err := f.items.FindOne(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, 8, item.StockQuantity)
}

func TestOrderNotEnoughStockRollsBack(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := newOrderFixture(db)
	memberID, itemID := f.memberAndBook(t, 1)

	_, err := f.orders.Order(ctx, memberID, itemID, 2)
	assert.ErrorIs(t, err, models.ErrNotEnoughStock)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
	item, err := f.items.FindOne(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, 1, item.StockQuantity)
}

func TestOrderUnknownMemberOrItem(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(testutil.NewDB(t))
	memberID, itemID := f.memberAndBook(t, 1)

	_, err := f.orders.Order(ctx, 99, itemID, 1)
	assert.ErrorIs(t, err, services.ErrMemberNotFound)
	_, err = f.orders.Order(ctx, memberID, 99, 1)
	assert.ErrorIs(t, err, services.ErrItemNotFound)
	_, err = f.orders.Order(ctx, memberID, itemID, 0)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)
}

func TestCancelOrderRestoresStock(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(testutil.NewDB(t))
	memberID, itemID := f.memberAndBook(t, 10)
	orderID, err := f.orders.Order(ctx, memberID, itemID, 3)
	require.NoError(t, err)

	require.NoError(t, f.orders.CancelOrder(ctx, orderID))

	order, err := f.orders.FindOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)
	item, err := f.items.FindOne(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, 10, item.StockQuantity)

	assert.ErrorIs(t, f.orders.CancelOrder(ctx, orderID), models.ErrAlreadyCancelled)
	assert.ErrorIs(t, f.orders.CompleteDelivery(ctx, orderID), models.ErrAlreadyCancelled)
}

func TestCancelDeliveredOrderFails(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(testutil.NewDB(t))
	memberID, itemID := f.memberAndBook(t, 10)
	orderID, err := f.orders.Order(ctx, memberID, itemID, 3)
	require.NoError(t, err)
	require.NoError(t, f.orders.CompleteDelivery(ctx, orderID))

	err = f.orders.CancelOrder(ctx, orderID)
	assert.ErrorIs(t, err, models.ErrAlreadyDelivered)

	order, err := f.orders.FindOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusOrdered, order.Status)
	assert.Equal(t, models.DeliveryStatusCompleted, order.Delivery.Status)
	item, err := f.items.FindOne(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, 7, item.StockQuantity)
}

func TestOrderNotFound(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(testutil.NewDB(t))

	assert.ErrorIs(t, f.orders.CancelOrder(ctx, 5), services.ErrOrderNotFound)
	assert.ErrorIs(t, f.orders.CompleteDelivery(ctx, 5), services.ErrOrderNotFound)
	_, err := f.orders.FindOrder(ctx, 5)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}
