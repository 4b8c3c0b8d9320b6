package controllers

import (
	"strconv"

	"github.com/Networkcaretaker/sebastians-sub000/pkg/artifact"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/resp"
	"github.com/Networkcaretaker/sebastians-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PublishController struct {
	Publish *services.PublishService
}

func NewPublishController(db *gorm.DB, store artifact.Store, events services.Notifier) *PublishController {
	return &PublishController{
		Publish: services.NewPublishService(db, store, events),
	}
}

// POST /menus/:id/publish
func (ctl *PublishController) PublishMenu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	menu, err := ctl.Publish.Publish(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, menu)
}

// POST /menus/:id/unpublish
func (ctl *PublishController) UnpublishMenu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	menu, err := ctl.Publish.Unpublish(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, menu)
}

// POST /menus/:id/republish — refresh an already-published artifact
func (ctl *PublishController) RepublishMenu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	menu, err := ctl.Publish.Update(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, menu)
}

// GET /menus/:id/publication
func (ctl *PublishController) Status(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	status, err := ctl.Publish.Status(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, status)
}
