package router

import (
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/config"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/controllers"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dbctx"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/middlewares"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/repositories"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSAllowOrigin))

	// Repositories & services
	tm := dbctx.NewManager(db)
	memberRepo := repositories.NewMemberRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	simpleQueryRepo := repositories.NewOrderSimpleQueryRepository(db)
	orderQueryRepo := repositories.NewOrderQueryRepository(db)

	memberService := services.NewMemberService(tm, memberRepo)
	itemService := services.NewItemService(tm, itemRepo)
	orderService := services.NewOrderService(tm, orderRepo, memberRepo, itemRepo)
	orderQueryService := services.NewOrderQueryService(tm, orderRepo, simpleQueryRepo, orderQueryRepo)

	// Inisialisasi controller
	memberCtrl := controllers.NewMemberController(memberService)
	itemCtrl := controllers.NewItemController(itemService)
	orderCtrl := controllers.NewOrderController(orderService, orderQueryService)
	orderApiCtrl := controllers.NewOrderApiController(orderQueryService)
	simpleApiCtrl := controllers.NewOrderSimpleApiController(orderQueryService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	// Only mutations are rate limited.
	limit := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).RateLimit()

	// MEMBERS
	api.POST("/v2/members", limit, memberCtrl.JoinMember)
	api.GET("/v2/members", memberCtrl.GetAllMembers)
	api.GET("/v2/members/:member_id", memberCtrl.GetMemberByID)
	api.PUT("/v2/members/:member_id", limit, memberCtrl.UpdateMember)

	// ITEMS
	api.POST("/items", limit, itemCtrl.CreateItem)
	api.GET("/items", itemCtrl.GetAllItems)

	// ORDERS (mutations)
	api.POST("/orders", limit, orderCtrl.CreateOrder)
	api.GET("/orders/search", orderCtrl.SearchOrders)
	api.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	api.POST("/orders/:order_id/cancel", limit, orderCtrl.CancelOrder)
	api.POST("/orders/:order_id/delivery/complete", limit, orderCtrl.CompleteDelivery)

	// ORDER LISTINGS: orders with items
	api.GET("/v1/orders", orderApiCtrl.OrdersV1)
	api.GET("/v2/orders", orderApiCtrl.OrdersV2)
	api.GET("/v3/orders", orderApiCtrl.OrdersV3)
	api.GET("/v3.1/orders", orderApiCtrl.OrdersV3Page)
	api.GET("/v4/orders", orderApiCtrl.OrdersV4)
	api.GET("/v5/orders", orderApiCtrl.OrdersV5)

	// ORDER LISTINGS: member and delivery only
	api.GET("/v1/simple-orders", simpleApiCtrl.OrdersV1)
	api.GET("/v2/simple-orders", simpleApiCtrl.OrdersV2)
	api.GET("/v3/simple-orders", simpleApiCtrl.OrdersV3)
	api.GET("/v4/simple-orders", simpleApiCtrl.OrdersV4)

	return r
}
