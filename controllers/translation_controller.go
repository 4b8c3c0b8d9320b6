package controllers

import (
	"strconv"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/resp"
	"github.com/Networkcaretaker/sebastians-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TranslationController struct {
	Translations *services.TranslationService
}

func NewTranslationController(db *gorm.DB) *TranslationController {
	return &TranslationController{Translations: services.NewTranslationService(db)}
}

// GET /translations/:entityType/:id
func (ctl *TranslationController) List(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	ts, err := ctl.Translations.List(c.Param("entityType"), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, ts)
}

// PUT /translations/:entityType/:id
func (ctl *TranslationController) Set(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req entity.Translation
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	req.EntityType = c.Param("entityType")
	req.EntityID = uint(id)
	if err := ctl.Translations.Set(&req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, req)
}
