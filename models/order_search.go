package models

// OrderSearch filters order listings. Zero values mean no filter.
type OrderSearch struct {
	MemberName  string      `form:"member_name"`
	OrderStatus OrderStatus `form:"order_status"`
}
