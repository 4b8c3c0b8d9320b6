package entity

import (
	"gorm.io/gorm"
)

type Item struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // base price in minor units

	// nil = not assigned to any category
	CategoryID *uint     `json:"categoryId"`
	Category   *Category `json:"-"`

	// position within the owning category, stable across re-fetch order
	MenuOrder int `json:"menuOrder"`

	IsActive     bool `json:"isActive"`
	IsVegetarian bool `json:"isVegetarian"`
	IsVegan      bool `json:"isVegan"`
	IsSpicy      bool `json:"isSpicy"`

	// derived from the child lists, never authored directly
	HasOptions bool `json:"hasOptions"`
	HasExtras  bool `json:"hasExtras"`
	HasAddons  bool `json:"hasAddons"`

	Options   []ItemOption  `json:"options"`
	Extras    []ItemExtra   `json:"extras"`
	Addons    []ItemAddon   `json:"addons"`
	Allergies []ItemAllergy `json:"allergies"`
}

// ItemOption is a mutually exclusive variant layered on top of the base price.
type ItemOption struct {
	gorm.Model
	ItemID   uint   `json:"itemId"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Position int    `json:"position"`
}

// ItemExtra is a selectable priced addition.
type ItemExtra struct {
	gorm.Model
	ItemID   uint   `json:"itemId"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Position int    `json:"position"`
}

// ItemAddon is a selectable unpriced addition.
type ItemAddon struct {
	gorm.Model
	ItemID   uint   `json:"itemId"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

type ItemAllergy struct {
	gorm.Model
	ItemID uint   `json:"itemId"`
	Name   string `json:"name"`
}

// RecalcFlags rewrites the derived Has* flags from the child lists.
// Every write path must call this before validation.
func (it *Item) RecalcFlags() {
	it.HasOptions = len(it.Options) > 0
	it.HasExtras = len(it.Extras) > 0
	it.HasAddons = len(it.Addons) > 0
}
