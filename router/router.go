package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/delishdine/restaurant-app/controllers"
	"github.com/delishdine/restaurant-app/middlewares"
	"github.com/delishdine/restaurant-app/utils"
	"github.com/delishdine/restaurant-app/web"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.BodyLimit())

	menuCtrl := controllers.NewMenuController(db)
	contactCtrl := controllers.NewContactController(db)
	orderCtrl := controllers.NewOrderController(db)
	reservationCtrl := controllers.NewReservationController(db)
	userCtrl := controllers.NewUserController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC API
	// ----------------------------------------------------------------
	api := r.Group("/api")
	{
		api.GET("/menu", menuCtrl.GetActiveMenu)
		api.POST("/contact", contactCtrl.SubmitContact)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders", orderCtrl.GetAllOrders)
		api.POST("/reservations", reservationCtrl.CreateReservation)
		api.GET("/reservations", reservationCtrl.GetAllReservations)
	}

	// Credential endpoints sit behind a stricter limiter.
	auth := api.Group("/auth")
	auth.Use(middlewares.StrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      ADMIN API (bearer token)
	// ----------------------------------------------------------------
	admin := api.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())
	{
		staff := middlewares.RequireRole("admin", "staff")
		admin.POST("/menu", staff, menuCtrl.CreateMenuItem)
		admin.PATCH("/orders/:order_id/status", staff, orderCtrl.UpdateOrderStatus)

		adminOnly := middlewares.RequireRole("admin")
		admin.PATCH("/menu/:menu_id/deactivate", adminOnly, menuCtrl.DeactivateMenuItem)
	}

	// Unknown /api paths (any verb) answer a JSON 404; every other path,
	// with any verb, serves the single page.
	r.NoRoute(func(c *gin.Context) {
		if c.Request.URL.Path == "/api" || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			utils.RespondError(c, http.StatusNotFound, errors.New("Not found"))
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
	})

	return r
}
