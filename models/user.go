package models

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	Base
	Name     string         `json:"name"`
	Email    string         `json:"email" gorm:"not null;uniqueIndex"`
	Password string         `json:"-" gorm:"not null"`
	Role     Role           `json:"role" gorm:"not null;default:'user'"`
	CartData map[string]int `json:"cartData" gorm:"serializer:json;type:text"`
}
