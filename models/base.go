package models

import "time"

// BaseModel tüm tablolarda ortak olan alanları içerir.
// CreatedAt/UpdatedAt GORM tarafından otomatik doldurulur.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
