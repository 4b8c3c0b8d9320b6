package configs

import (
	"github.com/Networkcaretaker/sebastians-sub000/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	// ordered join table (many2many Menu<->Category)
	if err := db.SetupJoinTable(&entity.Menu{}, "Categories", &entity.MenuCategory{}); err != nil {
		panic(err)
	}

	db.AutoMigrate(
		&entity.Operator{},
		&entity.Restaurant{},
		&entity.Item{}, &entity.ItemOption{}, &entity.ItemExtra{}, &entity.ItemAddon{}, &entity.ItemAllergy{},
		&entity.Category{}, &entity.CategoryExtra{}, &entity.CategoryAddon{},
		&entity.Menu{}, &entity.MenuCategory{},
		&entity.Translation{},
	)
}
