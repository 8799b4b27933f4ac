package database

import (
	"errors"
	"log"

	"campus-portal/internal/models"

	"gorm.io/gorm"
)

func ListCourses() []models.Course {
	var courses []models.Course
	if err := DB.Order("title asc").Find(&courses).Error; err != nil {
		log.Printf("db error in ListCourses: %v", err)
		return nil
	}
	return courses
}

func GetCourseBySlug(slug string) *models.Course {
	var course models.Course
	err := DB.Where("slug = ?", slug).First(&course).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("db error in GetCourseBySlug: %v", err)
		}
		return nil
	}
	return &course
}
