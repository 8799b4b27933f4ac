package database

import (
	"log"

	"campus-portal/internal/models"
)

func CreateContactMessage(subject, message string) *models.ContactMessage {
	record := models.ContactMessage{Subject: subject, Message: message}
	if err := DB.Create(&record).Error; err != nil {
		log.Printf("db error in CreateContactMessage: %v", err)
		return nil
	}
	return &record
}

func ListContactMessages() []models.ContactMessage {
	var records []models.ContactMessage
	if err := DB.Order("created_at desc, id desc").Find(&records).Error; err != nil {
		log.Printf("db error in ListContactMessages: %v", err)
		return nil
	}
	return records
}
