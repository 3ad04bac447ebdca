package models

import "time"

type OrderItem struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

type Order struct {
	Base
	UserID  string      `json:"userId" gorm:"not null;index"`
	Items   []OrderItem `json:"items" gorm:"serializer:json;type:text"`
	Amount  float64     `json:"amount" gorm:"not null"`
	Address Address     `json:"address" gorm:"serializer:json;type:text"`
	Status  string      `json:"status" gorm:"not null;default:'Food Processing'"`
	Date    time.Time   `json:"date"`
	Payment bool        `json:"payment" gorm:"not null;default:false"`
}
