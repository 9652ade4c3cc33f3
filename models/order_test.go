package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBook(t *testing.T, name string, price, stock int) *models.Item {
	t.Helper()
	return &models.Item{ID: 1, Name: name, Price: price, StockQuantity: stock}
}

func placeOrder(t *testing.T, member *models.Member, lines ...[2]int) (*models.Order, []*models.Item) {
	t.Helper()
	var items []*models.Item
	var orderItems []*models.OrderItem
	for _, line := range lines {
		item := newBook(t, "JPA BOOK", line[0], 10)
		orderItem, err := models.NewOrderItem(item, line[0], line[1])
		require.NoError(t, err)
		items = append(items, item)
		orderItems = append(orderItems, orderItem)
	}
	delivery := models.NewDelivery(member.Address)
	return models.NewOrder(member, delivery, orderItems...), items
}

func TestNewOrderWiresBothSides(t *testing.T) {
	member := models.NewMember("kim", models.NewAddress("Seoul", "river", "123-123"))
	member.ID = 7

	order, _ := placeOrder(t, member, [2]int{10000, 2}, [2]int{20000, 1})

	assert.Equal(t, models.OrderStatusOrdered, order.Status)
	assert.False(t, order.OrderDate.IsZero())
	assert.Equal(t, uint(7), order.MemberID)
	assert.Contains(t, order.Member.Orders, order)
	assert.Same(t, order, order.Delivery.Order)
	assert.Equal(t, models.DeliveryStatusReady, order.Delivery.Status)
	assert.Equal(t, member.Address, order.Delivery.Address)
	require.Len(t, order.OrderItems, 2)
	for _, orderItem := range order.OrderItems {
		assert.Same(t, order, orderItem.Order)
	}
}

func TestNewOrderItemRemovesStock(t *testing.T) {
	item := newBook(t, "JPA BOOK", 10000, 10)

	_, err := models.NewOrderItem(item, 10000, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, item.StockQuantity)

	_, err = models.NewOrderItem(item, 10000, 8)
	assert.ErrorIs(t, err, models.ErrNotEnoughStock)
	assert.Equal(t, 7, item.StockQuantity)

	_, err = models.NewOrderItem(item, 10000, 0)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)
}

func TestCancelOrder(t *testing.T) {
	member := models.NewMember("kim", models.NewAddress("Seoul", "river", "123-123"))
	order, items := placeOrder(t, member, [2]int{10000, 2}, [2]int{20000, 4})
	assert.Equal(t, 8, items[0].StockQuantity)
	assert.Equal(t, 6, items[1].StockQuantity)

	require.NoError(t, order.Cancel())

	assert.Equal(t, models.OrderStatusCancelled, order.Status)
	assert.Equal(t, 10, items[0].StockQuantity)
	assert.Equal(t, 10, items[1].StockQuantity)

	err := order.Cancel()
	assert.ErrorIs(t, err, models.ErrAlreadyCancelled)
	assert.Equal(t, 10, items[0].StockQuantity)
}

func TestCancelCompletedDeliveryFails(t *testing.T) {
	member := models.NewMember("kim", models.NewAddress("Seoul", "river", "123-123"))
	order, items := placeOrder(t, member, [2]int{10000, 2})
	require.NoError(t, order.CompleteDelivery())

	err := order.Cancel()

	assert.ErrorIs(t, err, models.ErrAlreadyDelivered)
	assert.Equal(t, models.KindIllegalState, models.KindOf(err))
	assert.Equal(t, models.OrderStatusOrdered, order.Status)
	assert.Equal(t, 8, items[0].StockQuantity)
}

func TestCancelNeedsLoadedAssociations(t *testing.T) {
	order := &models.Order{ID: 1, Status: models.OrderStatusOrdered}
	assert.ErrorIs(t, order.Cancel(), models.ErrAssociationNotLoaded)

	order.Delivery = models.NewDelivery(models.Address{})
	order.OrderItems = []*models.OrderItem{{ItemID: 3, OrderPrice: 100, Count: 1}}
	assert.ErrorIs(t, order.Cancel(), models.ErrAssociationNotLoaded)
	assert.Equal(t, models.OrderStatusOrdered, order.Status)
}

func TestCompleteDeliveryOfCancelledOrderFails(t *testing.T) {
	member := models.NewMember("kim", models.Address{})
	order, _ := placeOrder(t, member, [2]int{10000, 1})
	require.NoError(t, order.Cancel())

	assert.ErrorIs(t, order.CompleteDelivery(), models.ErrAlreadyCancelled)
	assert.Equal(t, models.DeliveryStatusReady, order.Delivery.Status)
}

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name  string
		lines [][2]int
		want  int
	}{
		{name: "single line", lines: [][2]int{{10000, 1}}, want: 10000},
		{name: "several lines", lines: [][2]int{{10000, 2}, {20000, 3}, {500, 1}}, want: 80500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, _ := placeOrder(t, models.NewMember("kim", models.Address{}), tt.lines...)
			assert.Equal(t, tt.want, order.TotalPrice())

			require.NoError(t, order.Cancel())
			assert.Equal(t, tt.want, order.TotalPrice())
		})
	}
}

func TestOrderJSONUsesDisplayDateLayout(t *testing.T) {
	member := models.NewMember("kim", models.NewAddress("Seoul", "river", "123-123"))
	order, _ := placeOrder(t, member, [2]int{10000, 1})
	order.OrderDate = time.Date(2024, 3, 9, 5, 5, 0, 0, time.UTC)

	b, err := json.Marshal([]*models.Order{order})
	require.NoError(t, err)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2024-03-09-Sat 14:05:00", got[0]["order_date"])
	assert.Equal(t, "ORDERED", got[0]["status"])
	assert.Equal(t, "kim", got[0]["member"].(map[string]interface{})["name"])
	assert.Len(t, got[0]["order_items"], 1)
}
