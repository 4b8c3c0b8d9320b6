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

type ItemController struct {
	Catalog *services.CatalogService
	Sync    *services.SyncService
	Repo    *repository.ItemRepository
}

func NewItemController(db *gorm.DB, events services.Notifier) *ItemController {
	catalog := services.NewCatalogService(db)
	catalog.Sync.Events = events
	return &ItemController{
		Catalog: catalog,
		Sync:    catalog.Sync,
		Repo:    repository.NewItemRepository(db),
	}
}

// GET /items            all items
// GET /items?categoryId=3   one category, in stored order
// GET /items?unassigned=1   items without a category
func (ctl *ItemController) List(c *gin.Context) {
	if q := c.Query("categoryId"); q != "" {
		catID, _ := strconv.Atoi(q)
		items, err := ctl.Repo.FindByCategory(uint(catID))
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, items)
		return
	}
	if c.Query("unassigned") != "" {
		items, err := ctl.Repo.FindUnassigned()
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, items)
		return
	}
	items, err := ctl.Repo.FindAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /items/:id
func (ctl *ItemController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /items
func (ctl *ItemController) Create(c *gin.Context) {
	var req entity.Item
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Catalog.CreateItem(&req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, req)
}

// PATCH /items/:id
func (ctl *ItemController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var cmd services.UpdateItemCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Catalog.UpdateItem(uint(id), cmd)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// PATCH /items/:id/category  { "categoryId": 3 }  (null to unassign)
func (ctl *ItemController) SetCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		CategoryID *uint `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Sync.SetItemCategory(uint(id), req.CategoryID); err != nil {
		resp.Error(c, err)
		return
	}
	item, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /items/:id
func (ctl *ItemController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Sync.DeleteItem(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item deleted"})
}
