package entity

import (
	"gorm.io/gorm"
)

// Operator is an authenticated admin of the catalog. All mutations
// require an operator; there is no public write surface.
type Operator struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"` // admin
}
