package entity

import (
	"gorm.io/gorm"
)

// Restaurant holds the venue details embedded into every published
// snapshot. A single row; created on first save.
type Restaurant struct {
	gorm.Model
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	LogoURL string `json:"logoUrl"`
}
