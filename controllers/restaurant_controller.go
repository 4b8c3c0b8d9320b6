package controllers

import (
	"errors"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/resp"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RestaurantController manages the single venue record embedded into
// published snapshots.
type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// GET /restaurant
func (ctl *RestaurantController) Get(c *gin.Context) {
	var r entity.Restaurant
	err := ctl.DB.First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.OK(c, entity.Restaurant{})
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, r)
}

// PUT /restaurant
func (ctl *RestaurantController) Put(c *gin.Context) {
	var req entity.Restaurant
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var existing entity.Restaurant
	err := ctl.DB.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := ctl.DB.Create(&req).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.Created(c, req)
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	req.ID = existing.ID
	if err := ctl.DB.Save(&req).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, req)
}
