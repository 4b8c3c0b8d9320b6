package controllers

import (
	"net/http"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/artifact"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/resp"
	"github.com/Networkcaretaker/sebastians-sub000/repository"
	"github.com/Networkcaretaker/sebastians-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PublicController serves the published artifacts. No auth; read only.
type PublicController struct {
	Menus *repository.MenuRepository
	Store artifact.Store
}

func NewPublicController(db *gorm.DB, store artifact.Store) *PublicController {
	return &PublicController{
		Menus: repository.NewMenuRepository(db),
		Store: store,
	}
}

// GET /public/menus/:slug — latest published snapshot
func (ctl *PublicController) GetMenu(c *gin.Context) {
	menu, err := ctl.Menus.FindBySlug(c.Param("slug"))
	if err != nil {
		resp.NotFound(c, "menu not found")
		return
	}
	if menu.PublishStatus != entity.PublishStatusPublished {
		resp.NotFound(c, "menu not published")
		return
	}
	data, err := ctl.Store.Get(services.ArtifactPath(menu))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}
