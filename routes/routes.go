package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zninennea/nani-plate-perfect/configs"
	"github.com/zninennea/nani-plate-perfect/controllers"
	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/middlewares"
	"github.com/zninennea/nani-plate-perfect/pkg/realtime"
	"github.com/zninennea/nani-plate-perfect/repository"
	"github.com/zninennea/nani-plate-perfect/services"
	"github.com/zninennea/nani-plate-perfect/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *realtime.Hub, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	chatRepo := repository.NewChatRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, nil, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartSvc, hub,
		cfg.DeliveryFeeCents, cfg.TaxRatePercent)
	chatSvc := services.NewChatService(chatRepo, orderRepo, hub)
	reviewSvc := services.NewReviewService(reviewRepo, orderRepo)
	driverSvc := services.NewDriverService(userRepo, orderRepo, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	ownerCtrl := controllers.NewOwnerOrderController(orderSvc)
	driverCtrl := controllers.NewDriverController(driverSvc, orderSvc)
	chatCtrl := controllers.NewChatController(chatSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)

	secret := cfg.JWTSecret

	// Auth — public-only entry points, then the signed-in surface
	a := r.Group("/auth")
	{
		pub := a.Group("", middlewares.PublicOnlyMiddleware(secret))
		pub.POST("/register", authCtrl.Register)
		pub.POST("/login", authCtrl.Login)
		pub.POST("/oauth", authCtrl.LoginWithOAuth)

		me := a.Group("", middlewares.AuthMiddleware(secret))
		me.GET("/me", authCtrl.Me)
		me.PATCH("/me", authCtrl.UpdateMe)
	}

	// Menu: browsing is public, management is the owner's
	r.GET("/menu", menuCtrl.ListAvailable)

	// Customer surface
	cust := r.Group("/", middlewares.AuthMiddleware(secret, entity.RoleCustomer))
	{
		cust.GET("/cart", cartCtrl.Get)
		cust.POST("/cart/items", cartCtrl.Add)
		cust.PATCH("/cart/items/:menuItemId", cartCtrl.SetQuantity)
		cust.DELETE("/cart/items/:menuItemId", cartCtrl.Remove)
		cust.DELETE("/cart", cartCtrl.Clear)

		cust.POST("/orders", orderCtrl.Checkout)
		cust.GET("/orders", orderCtrl.ListMine)
		cust.POST("/orders/:id/reviews", reviewCtrl.Submit)
	}

	// Order detail, tracking and chat are shared by the pair on the order
	// (and the owner); the service decides who may see what.
	shared := r.Group("/", middlewares.AuthMiddleware(secret))
	{
		shared.GET("/orders/:id", orderCtrl.Detail)
		shared.GET("/orders/:id/tracking", orderCtrl.Tracking)
		shared.GET("/orders/:id/chat", chatCtrl.History)
		shared.POST("/orders/:id/chat", chatCtrl.Send)
	}

	// Owner surface
	owner := r.Group("/owner", middlewares.AuthMiddleware(secret, entity.RoleOwner))
	{
		owner.GET("/orders", ownerCtrl.List)
		owner.PATCH("/orders/:id/status", ownerCtrl.Advance)
		owner.PATCH("/orders/:id/cancel", ownerCtrl.Cancel)

		owner.GET("/menu", menuCtrl.ListAll)
		owner.POST("/menu", menuCtrl.Create)
		owner.PATCH("/menu/:id", menuCtrl.Update)
		owner.DELETE("/menu/:id", menuCtrl.Delete)

		owner.GET("/reviews", reviewCtrl.List)
	}

	// Driver surface
	driver := r.Group("/driver", middlewares.AuthMiddleware(secret, entity.RoleDriver))
	{
		driver.GET("/orders/available", driverCtrl.Available)
		driver.POST("/orders/:id/claim", driverCtrl.Claim)
		driver.PATCH("/orders/:id/status", driverCtrl.Advance)
		driver.GET("/orders", driverCtrl.ListMine)
		driver.PATCH("/location", driverCtrl.UpdateLocation)
	}

	// WebSockets: chat rooms and the change-notification bridge
	chatHub := ws.NewChatHub(chatSvc, log)
	go chatHub.Run()
	eventsWS := ws.NewEventsHandler(hub, orderRepo, log)

	sock := r.Group("/ws", middlewares.AuthMiddleware(secret))
	{
		sock.GET("/chat/:id", chatHub.HandleWebSocket)
		sock.GET("/events", eventsWS.HandleWebSocket)
	}
}
