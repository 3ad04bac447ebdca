package models

// Food.Category はカテゴリ名のコピーであり外部キーではない。
// カテゴリ名を変更しても既存のFoodは更新されない。
type Food struct {
	Base
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"not null"`
	Category    string  `json:"category" gorm:"not null;index"`
	Image       string  `json:"image"`
}
