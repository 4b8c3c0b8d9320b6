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

type CategoryController struct {
	Catalog *services.CatalogService
	Sync    *services.SyncService
	Orders  *services.OrderService
	Repo    *repository.CategoryRepository
}

func NewCategoryController(db *gorm.DB, events services.Notifier) *CategoryController {
	catalog := services.NewCatalogService(db)
	catalog.Sync.Events = events
	orders := services.NewOrderService(db)
	orders.Events = events
	return &CategoryController{
		Catalog: catalog,
		Sync:    catalog.Sync,
		Orders:  orders,
		Repo:    repository.NewCategoryRepository(db),
	}
}

// GET /categories
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Repo.FindAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /categories/:id
func (ctl *CategoryController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	cat, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cat)
}

// POST /categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req entity.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Catalog.CreateCategory(&req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, req)
}

// PATCH /categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var cmd services.UpdateCategoryCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.Catalog.UpdateCategory(uint(id), cmd)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cat)
}

// PUT /categories/:id/items  { "items": [5, 2, 9] }
// Replaces membership and order in one call.
func (ctl *CategoryController) SetItems(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Items []uint `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Sync.SetCategoryItems(uint(id), req.Items); err != nil {
		resp.Error(c, err)
		return
	}
	cat, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cat)
}

// PATCH /categories/:id/item-order  { "items": [9, 5, 2] }
// Rewrites ordinals for the current members only.
func (ctl *CategoryController) ReorderItems(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Items []uint `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Orders.ReorderItems(uint(id), req.Items); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order updated"})
}

// DELETE /categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Sync.DeleteCategory(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}
