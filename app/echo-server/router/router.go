package router

import (
	"glowAdvisor/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.POST("/logout", handler.Logout, authRequired)

	users.PUT("/:id", handler.UpdateUser, authRequired)
	users.GET("", handler.GetAllUsers, authRequired, adminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, adminOnly)
	users.DELETE("/:id", handler.DeleteUser, authRequired, adminOnly)
}

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	items := api.Group("/catalog")

	items.GET("", handler.GetAllItems, authRequired)
	items.GET("/:sku", handler.GetItemBySKU, authRequired)
	items.POST("", handler.CreateItem, authRequired, adminOnly)
	items.POST("/import", handler.ImportCatalog, authRequired, adminOnly)
	items.PUT("/:sku", handler.UpdateItem, authRequired, adminOnly)
	items.DELETE("/:sku", handler.DeleteItem, authRequired, adminOnly)
}

func SetupConsultationRoutes(api *echo.Group, handler *rest.ConsultationHandler, authRequired echo.MiddlewareFunc) {
	consultations := api.Group("/consultations", authRequired)

	consultations.POST("", handler.CreateConsultation)
	consultations.GET("", handler.GetMyConsultations)
	consultations.GET("/:id", handler.GetConsultation)
}
