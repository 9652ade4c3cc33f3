package controllers

import (
	"net/http"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/services"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders  *services.OrderService
	Queries *services.OrderQueryService
}

func NewOrderController(orders *services.OrderService, queries *services.OrderQueryService) *OrderController {
	return &OrderController{Orders: orders, Queries: queries}
}

// CreateOrder -> POST /api/orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type reqBody struct {
		MemberID uint `json:"member_id" binding:"required"`
		ItemID   uint `json:"item_id" binding:"required"`
		Count    int  `json:"count" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id, err := oc.Orders.Order(c.Request.Context(), req.MemberID, req.ItemID, req.Count)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", gin.H{"order_id": id})
}

// GetOrderByID -> detail 1 order, whole aggregate
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	order, err := oc.Orders.FindOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", gin.H{
		"order":       order,
		"total_price": order.TotalPrice(),
	})
}

// CancelOrder -> POST /api/orders/:order_id/cancel
func (oc *OrderController) CancelOrder(c *gin.Context) {
	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	if err := oc.Orders.CancelOrder(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order cancelled", gin.H{"order_id": id})
}

// CompleteDelivery -> POST /api/orders/:order_id/delivery/complete
func (oc *OrderController) CompleteDelivery(c *gin.Context) {
	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	if err := oc.Orders.CompleteDelivery(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Delivery completed", gin.H{"order_id": id})
}

// SearchOrders -> GET /api/orders/search?member_name=&order_status=
func (oc *OrderController) SearchOrders(c *gin.Context) {
	var search models.OrderSearch
	if err := c.ShouldBindQuery(&search); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orders, err := oc.Queries.SimpleOrdersV2(c.Request.Context(), search)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondResult(c, http.StatusOK, orders)
}
