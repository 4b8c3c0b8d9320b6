package controllers

import (
	"errors"

	"github.com/Networkcaretaker/sebastians-sub000/configs"
	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/resp"
	"github.com/Networkcaretaker/sebastians-sub000/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var op entity.Operator
	err := ctl.DB.Where("email = ?", req.Email).First(&op).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(op.Password), []byte(req.Password)) != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(op.ID, op.Role, ctl.Cfg.JWTSecret, ctl.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "operator": op})
}

// GET /auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	var op entity.Operator
	if err := ctl.DB.First(&op, utils.CurrentOperatorID(c)).Error; err != nil {
		resp.Unauthorized(c, "operator not found")
		return
	}
	resp.OK(c, op)
}
