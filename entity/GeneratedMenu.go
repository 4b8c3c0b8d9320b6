package entity

import (
	"time"
)

// GeneratedMenu is the self-contained public artifact written on publish.
// It carries everything a consumer needs; nothing in it references live
// catalog rows.
type GeneratedMenu struct {
	Metadata   GeneratedMetadata   `json:"metadata"`
	Restaurant GeneratedRestaurant `json:"restaurant"`
	Categories []GeneratedCategory `json:"categories"`
}

type GeneratedMetadata struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Slug        string    `json:"slug"`
	LastUpdated time.Time `json:"lastUpdated"`
	Version     int       `json:"version"`
}

type GeneratedRestaurant struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	LogoURL string `json:"logoUrl"`
}

type GeneratedCategory struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Header      string           `json:"header"`
	Footer      string           `json:"footer"`
	Extras      []GeneratedExtra `json:"extras"`
	Addons      []string         `json:"addons"`
	Items       []GeneratedItem  `json:"items"`
}

type GeneratedItem struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       int64            `json:"price"`
	Options     []GeneratedExtra `json:"options"`
	Extras      []GeneratedExtra `json:"extras"`
	Addons      []string         `json:"addons"`
	Allergies   []string         `json:"allergies"`
	Flags       GeneratedFlags   `json:"flags"`
	Order       int              `json:"order"`
}

type GeneratedExtra struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type GeneratedFlags struct {
	Vegetarian bool `json:"vegetarian"`
	Active     bool `json:"active"`
}
