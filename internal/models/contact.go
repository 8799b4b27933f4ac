package models

import "time"

type ContactMessage struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Subject string `gorm:"size:200;not null"`
	Message string `gorm:"type:text;not null"`
}
