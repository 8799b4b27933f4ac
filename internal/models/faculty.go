package models

type Faculty struct {
	ID         uint   `gorm:"primaryKey"`
	Slug       string `gorm:"size:50;uniqueIndex;not null"`
	Name       string `gorm:"size:100;not null"`
	Title      string `gorm:"size:100"`
	Department string `gorm:"size:100"`
	Email      string `gorm:"size:255"`
	Bio        string `gorm:"type:text"`
}
