package routes

import (
	"github.com/Networkcaretaker/sebastians-sub000/configs"
	"github.com/Networkcaretaker/sebastians-sub000/controllers"
	"github.com/Networkcaretaker/sebastians-sub000/middlewares"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/artifact"
	"github.com/Networkcaretaker/sebastians-sub000/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, store artifact.Store, hub *ws.CatalogHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	itemCtrl := controllers.NewItemController(db, hub)
	catCtrl := controllers.NewCategoryController(db, hub)
	menuCtrl := controllers.NewMenuController(db, hub)
	pubCtrl := controllers.NewPublishController(db, store, hub)
	publicCtrl := controllers.NewPublicController(db, store)
	restCtrl := controllers.NewRestaurantController(db)
	trCtrl := controllers.NewTranslationController(db)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Public read surface (no auth)
	r.GET("/public/menus/:slug", publicCtrl.GetMenu)

	// Catalog event stream
	r.GET("/ws/catalog", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWS)

	// Admin catalog (operators only)
	admin := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/items", itemCtrl.List)
		admin.GET("/items/:id", itemCtrl.Get)
		admin.POST("/items", itemCtrl.Create)
		admin.PATCH("/items/:id", itemCtrl.Update)
		admin.PATCH("/items/:id/category", itemCtrl.SetCategory)
		admin.DELETE("/items/:id", itemCtrl.Delete)

		admin.GET("/categories", catCtrl.List)
		admin.GET("/categories/:id", catCtrl.Get)
		admin.POST("/categories", catCtrl.Create)
		admin.PATCH("/categories/:id", catCtrl.Update)
		admin.PUT("/categories/:id/items", catCtrl.SetItems)
		admin.PATCH("/categories/:id/item-order", catCtrl.ReorderItems)
		admin.DELETE("/categories/:id", catCtrl.Delete)

		admin.GET("/menus", menuCtrl.List)
		admin.GET("/menus/:id", menuCtrl.Get)
		admin.POST("/menus", menuCtrl.Create)
		admin.PATCH("/menu-order", menuCtrl.Reorder)
		admin.PATCH("/menus/:id", menuCtrl.Update)
		admin.PUT("/menus/:id/categories", menuCtrl.SetCategories)
		admin.DELETE("/menus/:id", menuCtrl.Delete)

		admin.POST("/menus/:id/publish", pubCtrl.PublishMenu)
		admin.POST("/menus/:id/unpublish", pubCtrl.UnpublishMenu)
		admin.POST("/menus/:id/republish", pubCtrl.RepublishMenu)
		admin.GET("/menus/:id/publication", pubCtrl.Status)

		admin.GET("/restaurant", restCtrl.Get)
		admin.PUT("/restaurant", restCtrl.Put)

		admin.GET("/translations/:entityType/:id", trCtrl.List)
		admin.PUT("/translations/:entityType/:id", trCtrl.Set)
	}
}
