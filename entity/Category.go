package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Header      string `json:"header"`
	Footer      string `json:"footer"`

	// category-wide additions, distinct from per-item ones
	Extras []CategoryExtra `json:"extras"`
	Addons []CategoryAddon `json:"addons"`

	// ordered by menu_order when preloaded through the repository
	Items []Item `json:"items"`

	Menus []Menu `gorm:"many2many:menu_categories;" json:"-"`
}

type CategoryExtra struct {
	gorm.Model
	CategoryID uint   `json:"categoryId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Position   int    `json:"position"`
}

type CategoryAddon struct {
	gorm.Model
	CategoryID uint   `json:"categoryId"`
	Name       string `json:"name"`
	Position   int    `json:"position"`
}
