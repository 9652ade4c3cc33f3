package controllers

import (
	"net/http"
	"strconv"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/services"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
	"github.com/gin-gonic/gin"
)

const defaultPageLimit = 100

// OrderApiController lists orders with their items, one handler per
// loading strategy.
type OrderApiController struct {
	Queries *services.OrderQueryService
}

func NewOrderApiController(queries *services.OrderQueryService) *OrderApiController {
	return &OrderApiController{Queries: queries}
}

// OrdersV1 -> entities, every association forced loaded
func (ac *OrderApiController) OrdersV1(c *gin.Context) {
	orders, err := ac.Queries.OrdersV1(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondResult(c, http.StatusOK, orders)
}

// OrdersV2 -> DTOs over per-row loads (N+1)
func (ac *OrderApiController) OrdersV2(c *gin.Context) {
	orders, err := ac.Queries.OrdersV2(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondResult(c, http.StatusOK, orders)
}

// OrdersV3 -> DTOs over one fetch join; no paging
func (ac *OrderApiController) OrdersV3(c *gin.Context) {
	orders, err := ac.Queries.OrdersV3(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondResult(c, http.StatusOK, orders)
}

// OrdersV3Page -> GET /api/v3.1/orders?offset=0&limit=100
func (ac *OrderApiController) OrdersV3Page(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		utils.RespondError(c, http.StatusBadRequest, errInvalidPaging)
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errInvalidPaging)
		return
	}

	orders, err := ac.Queries.OrdersV3Page(c.Request.Context(), offset, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondResult(c, http.StatusOK, orders)
}

// OrdersV4 -> query DTOs, one item query per order
func (ac *OrderApiController) OrdersV4(c *gin.Context) {
	orders, err := ac.Queries.OrdersV4(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondResult(c, http.StatusOK, orders)
}

// OrdersV5 -> query DTOs, items in a single IN query
func (ac *OrderApiController) OrdersV5(c *gin.Context) {
	orders, err := ac.Queries.OrdersV5(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondResult(c, http.StatusOK, orders)
}
