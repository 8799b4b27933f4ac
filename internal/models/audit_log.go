package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	ActorID  uint
	TargetID uint
	Action   string `gorm:"size:50;not null"` // "register", "update", "delete", "denied"
	Details  string `gorm:"type:text"`
}
