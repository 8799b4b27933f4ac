package database

import (
	"errors"
	"log"

	"campus-portal/internal/models"

	"gorm.io/gorm"
)

// ListFaculty returns all faculty ordered by the given column. The column
// must come from the handler's whitelist; it is never user input directly.
func ListFaculty(sortBy string) []models.Faculty {
	var members []models.Faculty
	if err := DB.Order(sortBy + " asc").Find(&members).Error; err != nil {
		log.Printf("db error in ListFaculty: %v", err)
		return nil
	}
	return members
}

func GetFacultyBySlug(slug string) *models.Faculty {
	var member models.Faculty
	err := DB.Where("slug = ?", slug).First(&member).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("db error in GetFacultyBySlug: %v", err)
		}
		return nil
	}
	return &member
}
