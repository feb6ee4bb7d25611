package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Amrragab78/the-modern-table-sub000/configs"
	"github.com/Amrragab78/the-modern-table-sub000/controllers"
	"github.com/Amrragab78/the-modern-table-sub000/middlewares"
	"github.com/Amrragab78/the-modern-table-sub000/payments"
	"github.com/Amrragab78/the-modern-table-sub000/repository"
	"github.com/Amrragab78/the-modern-table-sub000/services"
	"github.com/Amrragab78/the-modern-table-sub000/ws"

	cartpkg "github.com/Amrragab78/the-modern-table-sub000/cart"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, cartStore cartpkg.Store) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Publishable key for the browser; the secret key never leaves here.
	r.GET("/payment-config", func(c *gin.Context) {
		c.JSON(200, gin.H{"publishableKey": cfg.PaymentPublishableKey})
	})

	orderRepo := repository.NewOrderRepository(db)
	provider := payments.NewClient(cfg.PaymentAPIURL, cfg.PaymentSecretKey)

	hub := ws.NewOrdersHub()
	go hub.Run()

	cartSvc := services.NewCartService(cartStore)
	checkoutSvc := services.NewCheckoutService(orderRepo, provider, cfg.PublicBaseURL, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg.JWTSecret, cfg.JWTTTL)
	contactCtrl := controllers.NewContactController(db)
	reserveCtrl := controllers.NewReservationController(db)
	menuCtrl := controllers.NewMenuController(db, cfg.UploadDir)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc, cartSvc)
	adminCtrl := controllers.NewAdminController(db, orderRepo)
	actionsCtrl := controllers.NewAdminActionsController(db, orderRepo, hub)

	// Public
	r.GET("/menu", menuCtrl.List)
	r.POST("/contact", contactCtrl.Create)
	r.POST("/reserve", reserveCtrl.Create)
	r.POST("/create-checkout-session", checkoutCtrl.CreateCheckoutSession)
	r.POST("/create-offline-order", checkoutCtrl.CreateOfflineOrder)
	r.GET("/order/success", checkoutCtrl.PaymentSuccess)
	r.GET("/order/cancel", checkoutCtrl.PaymentCancel)

	// Session cart
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartCtrl.Get)
		cartGroup.POST("/items", cartCtrl.Add)
		cartGroup.PATCH("/items/qty", cartCtrl.UpdateQuantity)
		cartGroup.DELETE("/items", cartCtrl.RemoveItem)
		cartGroup.DELETE("", cartCtrl.Clear)
	}

	// Admin
	r.POST("/admin/login", authCtrl.Login)

	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/me", authCtrl.Me)

		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/orders", adminCtrl.Orders)
		admin.GET("/reservations", adminCtrl.Reservations)
		admin.GET("/contacts", adminCtrl.Contacts)
		admin.GET("/employees", adminCtrl.Employees)
		admin.GET("/supplies", adminCtrl.Supplies)

		admin.GET("/menu", menuCtrl.AdminList)
		admin.POST("/menu", menuCtrl.Create)
		admin.PATCH("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)

		admin.POST("/update-order-status", actionsCtrl.UpdateOrderStatus)
		admin.POST("/update-reservation-status", actionsCtrl.UpdateReservationStatus)
		admin.POST("/update-contact-status", actionsCtrl.UpdateContactStatus)
		admin.POST("/toggle-employee-status", actionsCtrl.ToggleEmployeeStatus)
		admin.POST("/delete-employee", actionsCtrl.DeleteEmployee)
		admin.POST("/delete-supply", actionsCtrl.DeleteSupply)
	}

	// Live orders feed (token via query string, see WSAuthMiddleware)
	r.GET("/admin/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret, "admin"), hub.HandleWebSocket)
}
