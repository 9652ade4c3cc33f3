package controllers

import (
	"net/http"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/services"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
	"github.com/gin-gonic/gin"
)

type ItemController struct {
	Items *services.ItemService
}

func NewItemController(items *services.ItemService) *ItemController {
	return &ItemController{Items: items}
}

func (ic *ItemController) CreateItem(c *gin.Context) {
	type reqBody struct {
		Name          string `json:"name" binding:"required"`
		Price         int    `json:"price"`
		StockQuantity int    `json:"stock_quantity"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := &models.Item{Name: req.Name, Price: req.Price, StockQuantity: req.StockQuantity}
	id, err := ic.Items.SaveItem(c.Request.Context(), item)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Item created", gin.H{"id": id})
}

func (ic *ItemController) GetAllItems(c *gin.Context) {
	items, err := ic.Items.FindItems(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondResult(c, http.StatusOK, items)
}
