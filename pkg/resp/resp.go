package resp

import (
	"errors"
	"net/http"

	"github.com/Networkcaretaker/sebastians-sub000/pkg/apperr"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps the service error taxonomy onto HTTP statuses.
func Error(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		BadRequest(c, err.Error())
	case apperr.IsNotFound(err), errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, err.Error())
	case apperr.IsConflict(err):
		Conflict(c, err.Error())
	case apperr.IsStorage(err):
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
	default:
		ServerError(c, err)
	}
}
