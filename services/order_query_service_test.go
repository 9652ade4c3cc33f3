package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dbctx"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/querystats"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/repositories"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/services"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderQueryService(db *gorm.DB) *services.OrderQueryService {
	return services.NewOrderQueryService(
		dbctx.NewManager(db),
		repositories.NewOrderRepository(db),
		repositories.NewOrderSimpleQueryRepository(db),
		repositories.NewOrderQueryRepository(db),
	)
}

func toJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// statements runs fn with a fresh counter and returns how many SQL statements it issued.
func statements(t *testing.T, fn func(ctx context.Context) error) int64 {
	t.Helper()
	ctx, counter := querystats.WithCounter(context.Background())
	require.NoError(t, fn(ctx))
	return counter.Count()
}

func TestSimpleOrderStrategiesAgree(t *testing.T) {
	svc := newOrderQueryService(testutil.NewSeededDB(t))
	ctx := context.Background()

	v2, err := svc.SimpleOrdersV2(ctx, models.OrderSearch{})
	require.NoError(t, err)
	v3, err := svc.SimpleOrdersV3(ctx)
	require.NoError(t, err)
	v4, err := svc.SimpleOrdersV4(ctx)
	require.NoError(t, err)

	require.Len(t, v2, 2)
	assert.Equal(t, "userA", v2[0].Name)
	assert.Equal(t, "Seoul", v2[0].Address.City)
	assert.Equal(t, "userB", v2[1].Name)
	assert.Equal(t, "Jinju", v2[1].Address.City)
	assert.Equal(t, models.OrderStatusOrdered, v2[0].Status)

	assert.JSONEq(t, toJSON(t, v2), toJSON(t, v3))
	assert.JSONEq(t, toJSON(t, v2), toJSON(t, v4))

	v1, err := svc.SimpleOrdersV1(ctx)
	require.NoError(t, err)
	require.Len(t, v1, 2)
	assert.Equal(t, v2[0].Name, v1[0].Member.Name)
	assert.Equal(t, v2[1].Address, v1[1].Delivery.Address)
}

func TestOrderStrategiesAgree(t *testing.T) {
	svc := newOrderQueryService(testutil.NewSeededDB(t))
	ctx := context.Background()

	v2, err := svc.OrdersV2(ctx)
	require.NoError(t, err)
	v3, err := svc.OrdersV3(ctx)
	require.NoError(t, err)
	page, err := svc.OrdersV3Page(ctx, 0, 100)
	require.NoError(t, err)
	v4, err := svc.OrdersV4(ctx)
	require.NoError(t, err)
	v5, err := svc.OrdersV5(ctx)
	require.NoError(t, err)

	require.Len(t, v2, 2)
	require.Len(t, v2[0].OrderItems, 2)
	assert.Equal(t, "JPA1 BOOK", v2[0].OrderItems[0].ItemName)
	assert.Equal(t, 10000, v2[0].OrderItems[0].OrderPrice)
	assert.Equal(t, 1, v2[0].OrderItems[0].Count)
	assert.Equal(t, "SPRING2 BOOK", v2[1].OrderItems[1].ItemName)
	assert.Equal(t, 4, v2[1].OrderItems[1].Count)

	want := toJSON(t, v2)
	assert.JSONEq(t, want, toJSON(t, v3))
	assert.JSONEq(t, want, toJSON(t, page))
	assert.JSONEq(t, want, toJSON(t, v4))
	assert.JSONEq(t, want, toJSON(t, v5))

	v1, err := svc.OrdersV1(ctx)
	require.NoError(t, err)
	require.Len(t, v1, 2)
	assert.Equal(t, "JPA2 BOOK", v1[0].OrderItems[1].Item.Name)
}

// The collection fetch join returns one row per item; orders must not repeat.
func TestFetchJoinDoesNotDuplicateOrders(t *testing.T) {
	svc := newOrderQueryService(testutil.NewSeededDB(t))

	orders, err := svc.OrdersV3(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.NotEqual(t, orders[0].OrderID, orders[1].OrderID)
}

func TestOrdersV3Paging(t *testing.T) {
	svc := newOrderQueryService(testutil.NewSeededDB(t))
	ctx := context.Background()

	first, err := svc.OrdersV3Page(ctx, 0, 1)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "userA", first[0].Name)
	assert.Len(t, first[0].OrderItems, 2)

	second, err := svc.OrdersV3Page(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "userB", second[0].Name)

	none, err := svc.OrdersV3Page(ctx, 2, 1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStrategyStatementCounts(t *testing.T) {
	svc := newOrderQueryService(testutil.NewSeededDB(t))

	tests := []struct {
		name string
		want int64
		run  func(ctx context.Context) error
	}{
		{"per-row to-one loads", 5, func(ctx context.Context) error {
			_, err := svc.SimpleOrdersV2(ctx, models.OrderSearch{})
			return err
		}},
		{"to-one fetch join", 1, func(ctx context.Context) error {
			_, err := svc.SimpleOrdersV3(ctx)
			return err
		}},
		{"simple projection", 1, func(ctx context.Context) error {
			_, err := svc.SimpleOrdersV4(ctx)
			return err
		}},
		// 1 + 2 orders * (member + delivery + items + 2 item rows)
		{"per-row graph loads", 11, func(ctx context.Context) error {
			_, err := svc.OrdersV2(ctx)
			return err
		}},
		{"graph fetch join", 1, func(ctx context.Context) error {
			_, err := svc.OrdersV3(ctx)
			return err
		}},
		{"paged fetch join", 3, func(ctx context.Context) error {
			_, err := svc.OrdersV3Page(ctx, 0, 10)
			return err
		}},
		{"projection with item query per order", 3, func(ctx context.Context) error {
			_, err := svc.OrdersV4(ctx)
			return err
		}},
		{"projection with batched items", 2, func(ctx context.Context) error {
			_, err := svc.OrdersV5(ctx)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statements(t, tt.run))
		})
	}
}

func TestSearchOrders(t *testing.T) {
	db := testutil.NewSeededDB(t)
	svc := newOrderQueryService(db)
	orders := newOrderFixture(db).orders
	ctx := context.Background()

	require.NoError(t, orders.CancelOrder(ctx, 2))

	byName, err := svc.SimpleOrdersV2(ctx, models.OrderSearch{MemberName: "userA"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "userA", byName[0].Name)

	cancelled, err := svc.SimpleOrdersV2(ctx, models.OrderSearch{OrderStatus: models.OrderStatusCancelled})
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, "userB", cancelled[0].Name)

	none, err := svc.SimpleOrdersV2(ctx, models.OrderSearch{MemberName: "userA", OrderStatus: models.OrderStatusCancelled})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEmptyStoreListsNothing(t *testing.T) {
	svc := newOrderQueryService(testutil.NewDB(t))
	ctx := context.Background()

	v3, err := svc.OrdersV3(ctx)
	require.NoError(t, err)
	assert.Empty(t, v3)
	v5, err := svc.OrdersV5(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", toJSON(t, v5))
}

// The entity listings and the projections must see the same rows past the
// search cap.
func TestStrategiesAgreeOnLargeStore(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.InsertOrders(t, db, "kim", 1001)
	svc := newOrderQueryService(db)
	ctx := context.Background()

	v1, err := svc.SimpleOrdersV1(ctx)
	require.NoError(t, err)
	v2, err := svc.SimpleOrdersV2(ctx, models.OrderSearch{})
	require.NoError(t, err)
	v3, err := svc.SimpleOrdersV3(ctx)
	require.NoError(t, err)
	v4, err := svc.SimpleOrdersV4(ctx)
	require.NoError(t, err)

	assert.Len(t, v1, 1001)
	assert.Len(t, v2, 1001)
	assert.JSONEq(t, toJSON(t, v2), toJSON(t, v3))
	assert.JSONEq(t, toJSON(t, v2), toJSON(t, v4))

	full, err := svc.OrdersV1(ctx)
	require.NoError(t, err)
	assert.Len(t, full, 1001)
	v5, err := svc.OrdersV5(ctx)
	require.NoError(t, err)
	assert.Len(t, v5, 1001)

	capped, err := svc.SimpleOrdersV2(ctx, models.OrderSearch{MemberName: "kim"})
	require.NoError(t, err)
	assert.Len(t, capped, 1000)
}
