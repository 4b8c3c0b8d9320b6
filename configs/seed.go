package configs

import (
	"log"

	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first operator account.
func SeedAdmin(cfg *Config) error {
	email := cfg.AdminEmail
	pass := cfg.AdminPassword
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Operator{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.Operator{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}
