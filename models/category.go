package models

type Category struct {
	Base
	Name  string `json:"name" gorm:"not null;uniqueIndex"`
	Image string `json:"image,omitempty"`
}
