package entity

// MenuCategory is the ordered join between menus and categories.
// Position is the category's index within the menu; categories carry no
// ordinal of their own because they are shared across menus.
type MenuCategory struct {
	MenuID     uint `gorm:"primaryKey" json:"menuId"`
	CategoryID uint `gorm:"primaryKey" json:"categoryId"`
	Position   int  `gorm:"not null;default:0" json:"position"`
}
