package controllers

import (
	"strconv"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/resp"
	"github.com/Networkcaretaker/sebastians-sub000/repository"
	"github.com/Networkcaretaker/sebastians-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	DB      *gorm.DB
	Catalog *services.CatalogService
	Sync    *services.SyncService
	Orders  *services.OrderService
	Repo    *repository.MenuRepository
}

func NewMenuController(db *gorm.DB, events services.Notifier) *MenuController {
	catalog := services.NewCatalogService(db)
	catalog.Sync.Events = events
	orders := services.NewOrderService(db)
	orders.Events = events
	return &MenuController{
		DB:      db,
		Catalog: catalog,
		Sync:    catalog.Sync,
		Orders:  orders,
		Repo:    repository.NewMenuRepository(db),
	}
}

type menuView struct {
	entity.Menu
	IsStale bool `json:"isStale"`
}

// GET /menus
func (ctl *MenuController) List(c *gin.Context) {
	menus, err := ctl.Repo.FindAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	views := make([]menuView, 0, len(menus))
	for _, m := range menus {
		views = append(views, menuView{Menu: m, IsStale: m.IsStale()})
	}
	resp.OK(c, views)
}

// GET /menus/:id — menu plus its ordered categories
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	menu, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	cats, err := ctl.Repo.OrderedCategories(ctl.DB, menu.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"menu":       menuView{Menu: *menu, IsStale: menu.IsStale()},
		"categories": cats,
	})
}

// POST /menus
func (ctl *MenuController) Create(c *gin.Context) {
	var req entity.Menu
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Catalog.CreateMenu(&req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, req)
}

// PATCH /menus/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var cmd services.UpdateMenuCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := ctl.Catalog.UpdateMenu(uint(id), cmd)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, menuView{Menu: *menu, IsStale: menu.IsStale()})
}

// PUT /menus/:id/categories  { "categories": [4, 1, 7] }
func (ctl *MenuController) SetCategories(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Categories []uint `json:"categories"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Sync.SetMenuCategories(uint(id), req.Categories); err != nil {
		resp.Error(c, err)
		return
	}
	cats, err := ctl.Repo.OrderedCategories(ctl.DB, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cats)
}

// PATCH /menu-order  { "menus": [3, 1, 2] }
func (ctl *MenuController) Reorder(c *gin.Context) {
	var req struct {
		Menus []uint `json:"menus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Orders.ReorderMenus(req.Menus); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order updated"})
}

// DELETE /menus/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Sync.DeleteMenu(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu deleted"})
}
