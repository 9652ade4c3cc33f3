package repositories

import (
	"strings"
	"time"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dbctx"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxSearchResults caps FindAllByString. The unfiltered listings use FindAll
// and are not capped, so every loading strategy sees the same rows.
const maxSearchResults = 1000

// likeEscaper makes %, _ and the escape character itself match literally.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

type OrderRepository interface {
	Save(dbc dbctx.Context, order *models.Order) error
	UpdateStatus(dbc dbctx.Context, order *models.Order) error
	UpdateDeliveryStatus(dbc dbctx.Context, delivery *models.Delivery) error
	FindOne(dbc dbctx.Context, id uint) (*models.Order, error)
	FindAggregate(dbc dbctx.Context, id uint) (*models.Order, error)
	FindAll(dbc dbctx.Context) ([]*models.Order, error)
	FindAllByString(dbc dbctx.Context, search models.OrderSearch) ([]*models.Order, error)

	// Per-row loaders. Each call is one more round trip.
	LoadMember(dbc dbctx.Context, order *models.Order) error
	LoadDelivery(dbc dbctx.Context, order *models.Order) error
	LoadOrderItems(dbc dbctx.Context, order *models.Order) error

	FindAllWithMemberDelivery(dbc dbctx.Context) ([]*models.Order, error)
	FindAllWithMemberDeliveryPage(dbc dbctx.Context, offset, limit int) ([]*models.Order, error)
	FindAllWithItem(dbc dbctx.Context) ([]*models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Save persists a new aggregate: delivery, order, then every order item.
// The caller owns the transaction.
func (r *orderRepository) Save(dbc dbctx.Context, order *models.Order) error {
	if order.Delivery == nil {
		return models.ErrAssociationNotLoaded
	}
	tx := dbc.DB(r.db)

	if err := tx.Omit(clause.Associations).Create(order.Delivery).Error; err != nil {
		return err
	}
	order.DeliveryID = order.Delivery.ID
	if order.Member != nil {
		order.MemberID = order.Member.ID
	}

	if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
		return err
	}

	for _, orderItem := range order.OrderItems {
		orderItem.OrderID = order.ID
		if orderItem.Item != nil {
			orderItem.ItemID = orderItem.Item.ID
		}
		if err := tx.Omit(clause.Associations).Create(orderItem).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepository) UpdateStatus(dbc dbctx.Context, order *models.Order) error {
	return dbc.DB(r.db).Model(order).Update("status", order.Status).Error
}

func (r *orderRepository) UpdateDeliveryStatus(dbc dbctx.Context, delivery *models.Delivery) error {
	return dbc.DB(r.db).Model(delivery).Update("status", delivery.Status).Error
}

func (r *orderRepository) FindOne(dbc dbctx.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := dbc.DB(r.db).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindAggregate loads the order with member, delivery and items (with their Item).
func (r *orderRepository) FindAggregate(dbc dbctx.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := dbc.DB(r.db).
		Preload("Member").
		Preload("Delivery").
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Preload("OrderItems.Item").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	linkInverse(&order)
	return &order, nil
}

// FindAll loads every order row; associations stay unloaded.
func (r *orderRepository) FindAll(dbc dbctx.Context) ([]*models.Order, error) {
	var orders []*models.Order
	if err := dbc.DB(r.db).Order("orders.id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindAllByString filters order rows by member name (substring, wildcards
// taken literally) and status, up to maxSearchResults rows.
func (r *orderRepository) FindAllByString(dbc dbctx.Context, search models.OrderSearch) ([]*models.Order, error) {
	query := dbc.DB(r.db).Model(&models.Order{})

	if search.OrderStatus != "" {
		query = query.Where("orders.status = ?", search.OrderStatus)
	}
	if search.MemberName != "" {
		query = query.
			Joins("JOIN members m ON m.id = orders.member_id").
			Where("m.name LIKE ? ESCAPE '!'", "%"+likeEscaper.Replace(search.MemberName)+"%")
	}

	var orders []*models.Order
	if err := query.Order("orders.id").Limit(maxSearchResults).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) LoadMember(dbc dbctx.Context, order *models.Order) error {
	var member models.Member
	if err := dbc.DB(r.db).First(&member, order.MemberID).Error; err != nil {
		return err
	}
	order.Member = &member
	return nil
}

func (r *orderRepository) LoadDelivery(dbc dbctx.Context, order *models.Order) error {
	var delivery models.Delivery
	if err := dbc.DB(r.db).First(&delivery, order.DeliveryID).Error; err != nil {
		return err
	}
	order.Delivery = &delivery
	delivery.Order = order
	return nil
}

// LoadOrderItems issues one query for the items and one more per item.
func (r *orderRepository) LoadOrderItems(dbc dbctx.Context, order *models.Order) error {
	tx := dbc.DB(r.db)

	var orderItems []*models.OrderItem
	if err := tx.Where("order_id = ?", order.ID).Order("id").Find(&orderItems).Error; err != nil {
		return err
	}
	for _, orderItem := range orderItems {
		var item models.Item
		if err := tx.First(&item, orderItem.ItemID).Error; err != nil {
			return err
		}
		orderItem.Item = &item
		orderItem.Order = order
	}
	order.OrderItems = orderItems
	return nil
}

// FindAllWithMemberDelivery fetch-joins the to-one associations in one query.
func (r *orderRepository) FindAllWithMemberDelivery(dbc dbctx.Context) ([]*models.Order, error) {
	var orders []*models.Order
	err := dbc.DB(r.db).
		Joins("Member").
		Joins("Delivery").
		Order("orders.id").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		linkInverse(order)
	}
	return orders, nil
}

// FindAllWithMemberDeliveryPage pages on order rows, then loads the items of
// the page with batched IN queries so the join never multiplies rows.
func (r *orderRepository) FindAllWithMemberDeliveryPage(dbc dbctx.Context, offset, limit int) ([]*models.Order, error) {
	var orders []*models.Order
	err := dbc.DB(r.db).
		Joins("Member").
		Joins("Delivery").
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Preload("OrderItems.Item").
		Order("orders.id").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		linkInverse(order)
	}
	return orders, nil
}

type orderGraphRow struct {
	OrderID         uint
	OrderDate       time.Time
	OrderStatus     models.OrderStatus
	MemberID        uint
	MemberName      string
	MemberCity      string
	MemberStreet    string
	MemberZipcode   string
	DeliveryID      uint
	DeliveryCity    string
	DeliveryStreet  string
	DeliveryZipcode string
	DeliveryStatus  models.DeliveryStatus
	OrderItemID     *uint
	OrderPrice      *int
	OrderCount      *int
	ItemID          *uint
	ItemName        *string
	ItemPrice       *int
	ItemStock       *int
}

// FindAllWithItem fetch-joins the whole graph in a single query. The
// collection join yields one row per order item, so rows are folded back into
// distinct orders here. Not usable with row-based paging.
func (r *orderRepository) FindAllWithItem(dbc dbctx.Context) ([]*models.Order, error) {
	var rows []orderGraphRow
	err := dbc.DB(r.db).
		Table("orders o").
		Select(`o.id AS order_id, o.order_date AS order_date, o.status AS order_status,
			m.id AS member_id, m.name AS member_name, m.city AS member_city, m.street AS member_street, m.zipcode AS member_zipcode,
			d.id AS delivery_id, d.city AS delivery_city, d.street AS delivery_street, d.zipcode AS delivery_zipcode, d.status AS delivery_status,
			oi.id AS order_item_id, oi.order_price AS order_price, oi.count AS order_count,
			i.id AS item_id, i.name AS item_name, i.price AS item_price, i.stock_quantity AS item_stock`).
		Joins("JOIN members m ON m.id = o.member_id").
		Joins("JOIN deliveries d ON d.id = o.delivery_id").
		Joins("LEFT JOIN order_items oi ON oi.order_id = o.id").
		Joins("LEFT JOIN items i ON i.id = oi.item_id").
		Order("o.id, oi.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return foldOrderGraph(rows), nil
}

func foldOrderGraph(rows []orderGraphRow) []*models.Order {
	orders := make([]*models.Order, 0)
	orderByID := make(map[uint]*models.Order)
	memberByID := make(map[uint]*models.Member)
	itemByID := make(map[uint]*models.Item)

	for _, row := range rows {
		order, ok := orderByID[row.OrderID]
		if !ok {
			member, seen := memberByID[row.MemberID]
			if !seen {
				member = &models.Member{
					ID:      row.MemberID,
					Name:    row.MemberName,
					Address: models.NewAddress(row.MemberCity, row.MemberStreet, row.MemberZipcode),
				}
				memberByID[row.MemberID] = member
			}
			delivery := &models.Delivery{
				ID:      row.DeliveryID,
				Address: models.NewAddress(row.DeliveryCity, row.DeliveryStreet, row.DeliveryZipcode),
				Status:  row.DeliveryStatus,
			}

			order = &models.Order{ID: row.OrderID, OrderDate: row.OrderDate, Status: row.OrderStatus}
			order.SetMember(member)
			order.SetDelivery(delivery)
			orderByID[row.OrderID] = order
			orders = append(orders, order)
		}

		if row.OrderItemID == nil {
			continue
		}
		item, seen := itemByID[*row.ItemID]
		if !seen {
			item = &models.Item{ID: *row.ItemID, Name: *row.ItemName, Price: *row.ItemPrice, StockQuantity: *row.ItemStock}
			itemByID[item.ID] = item
		}
		order.AddOrderItem(&models.OrderItem{
			ID:         *row.OrderItemID,
			ItemID:     item.ID,
			Item:       item,
			OrderPrice: *row.OrderPrice,
			Count:      *row.OrderCount,
		})
	}
	return orders
}

func linkInverse(order *models.Order) {
	if order.Delivery != nil {
		order.Delivery.Order = order
	}
	for _, orderItem := range order.OrderItems {
		orderItem.Order = order
	}
}
