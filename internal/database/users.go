package database

import (
	"errors"
	"log"
	"strings"

	"campus-portal/internal/models"

	"gorm.io/gorm"
)

// The user store adapter. Every operation is parameterized, logs its own
// failures and degrades to nil/false so handlers never see a raw DB error.

// FindUserByEmail looks a user up by case-insensitive email, role joined.
// Returns nil when the user does not exist or the query fails.
func FindUserByEmail(email string) *models.User {
	var user models.User
	err := DB.Preload("Role").
		Where("LOWER(email) = LOWER(?)", email).
		First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("db error in FindUserByEmail: %v", err)
		}
		return nil
	}
	return &user
}

// EmailTaken reports whether an account already uses the email, ignoring case.
// This is only a fast path for a friendlier error message; the unique index on
// users.email is the authoritative check.
func EmailTaken(email string) bool {
	var count int64
	err := DB.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error
	if err != nil {
		log.Printf("db error in EmailTaken: %v", err)
		return false
	}
	return count > 0
}

// EmailTakenByOther reports whether a different account uses the email.
// A user keeping their own address is not a conflict.
func EmailTakenByOther(email string, id uint) bool {
	var count int64
	err := DB.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, id).
		Count(&count).Error
	if err != nil {
		log.Printf("db error in EmailTakenByOther: %v", err)
		return false
	}
	return count > 0
}

// CreateUser persists a new account with the fixed "user" role. The email is
// stored lowercased. The returned copy carries no password hash.
func CreateUser(name, email, passwordHash string) *models.User {
	rid, ok := roleID(models.RoleUser)
	if !ok {
		return nil
	}

	user := models.User{
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		RoleID:       rid,
	}
	if err := DB.Create(&user).Error; err != nil {
		log.Printf("db error in CreateUser: %v", err)
		return nil
	}

	user.PasswordHash = ""
	user.Role = models.Role{ID: rid, RoleName: models.RoleUser}
	return &user
}

// ListUsers returns all accounts newest-first, without password hashes.
func ListUsers() []models.User {
	var users []models.User
	err := DB.Preload("Role").
		Order("created_at desc, id desc").
		Find(&users).Error
	if err != nil {
		log.Printf("db error in ListUsers: %v", err)
		return nil
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users
}

// GetUserByID fetches one account with its role, nil when missing.
func GetUserByID(id uint) *models.User {
	var user models.User
	err := DB.Preload("Role").First(&user, id).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("db error in GetUserByID: %v", err)
		}
		return nil
	}
	return &user
}

// UpdateUser changes name and email only. Returns the updated account or nil.
func UpdateUser(id uint, name, email string) *models.User {
	user := GetUserByID(id)
	if user == nil {
		return nil
	}

	user.Name = name
	user.Email = strings.ToLower(email)
	if err := DB.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": user.Name, "email": user.Email}).Error; err != nil {
		log.Printf("db error in UpdateUser: %v", err)
		return nil
	}

	user.PasswordHash = ""
	return user
}

// DeleteUser removes an account. True iff a row actually went away, so a
// second delete of the same id reports failure rather than success.
func DeleteUser(id uint) bool {
	res := DB.Delete(&models.User{}, id)
	if res.Error != nil {
		log.Printf("db error in DeleteUser: %v", res.Error)
		return false
	}
	return res.RowsAffected > 0
}
