package entity

import (
	"gorm.io/gorm"
)

// Entity types a translation can attach to
const (
	EntityTypeItem     = "item"
	EntityTypeCategory = "category"
	EntityTypeMenu     = "menu"
)

// Translated fields. Scalar fields use RowID 0; list fields (option,
// extra, addon) reference the child row's primary key, so reordering the
// base list never invalidates a translation and deleting a row cascades
// to exactly its own translations.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldHeader      = "header"
	FieldFooter      = "footer"
	FieldOption      = "option"
	FieldExtra       = "extra"
	FieldAddon       = "addon"
)

type Translation struct {
	gorm.Model
	EntityType string `gorm:"index:idx_translation_target" json:"entityType"`
	EntityID   uint   `gorm:"index:idx_translation_target" json:"entityId"`
	Language   string `gorm:"index" json:"language"` // BCP 47 code, e.g. "de"
	Field      string `json:"field"`
	RowID      uint   `json:"rowId"`
	Text       string `json:"text"`
}
