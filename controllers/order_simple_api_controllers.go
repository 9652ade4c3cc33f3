package controllers

import (
	"net/http"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/services"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
	"github.com/gin-gonic/gin"
)

// OrderSimpleApiController lists orders with their to-one associations
// (member, delivery) only.
type OrderSimpleApiController struct {
	Queries *services.OrderQueryService
}

func NewOrderSimpleApiController(queries *services.OrderQueryService) *OrderSimpleApiController {
	return &OrderSimpleApiController{Queries: queries}
}

func (sc *OrderSimpleApiController) OrdersV1(c *gin.Context) {
	orders, err := sc.Queries.SimpleOrdersV1(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondResult(c, http.StatusOK, orders)
}

func (sc *OrderSimpleApiController) OrdersV2(c *gin.Context) {
	orders, err := sc.Queries.SimpleOrdersV2(c.Request.Context(), models.OrderSearch{})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondResult(c, http.StatusOK, orders)
}

func (sc *OrderSimpleApiController) OrdersV3(c *gin.Context) {
	orders, err := sc.Queries.SimpleOrdersV3(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondResult(c, http.StatusOK, orders)
}

func (sc *OrderSimpleApiController) OrdersV4(c *gin.Context) {
	orders, err := sc.Queries.SimpleOrdersV4(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondResult(c, http.StatusOK, orders)
}
