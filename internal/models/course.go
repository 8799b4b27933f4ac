package models

type Course struct {
	ID          uint   `gorm:"primaryKey"`
	Slug        string `gorm:"size:50;uniqueIndex;not null"`
	Title       string `gorm:"size:200;not null"`
	Credits     int    `gorm:"not null"`
	Description string `gorm:"type:text"`
}
