package database

import (
	"log"
	"os"
	"time"

	"campus-portal/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := Migrate(); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
}

// Migrate runs the schema migration and seeds the fixed roles, the default
// admin account and the demo catalog/faculty rows. Tests call it directly
// against their own DB handle.
func Migrate() error {
	err := DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Course{},
		&models.Faculty{},
		&models.ContactMessage{},
		&models.AuditLog{},
	)
	if err != nil {
		return err
	}

	seedRoles()
	createDefaultAdmin()
	seedCatalog()
	seedFaculty()
	return nil
}

// roles are a closed set, created once
func seedRoles() {
	for _, name := range []models.UserRole{models.RoleAdmin, models.RoleUser} {
		role := models.Role{RoleName: name}
		if err := DB.Where("role_name = ?", name).FirstOrCreate(&role).Error; err != nil {
			log.Printf("failed to seed role %s: %v", name, err)
		}
	}
}

// the admin account is never created through the registration form
func createDefaultAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@campus.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	adminRoleID, ok := roleID(models.RoleAdmin)
	if !ok {
		return
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role_id = ?", adminRoleID).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, ok := HashPassword(password)
	if !ok {
		return
	}

	admin := models.User{
		Name:         "Site Administrator",
		Email:        email,
		PasswordHash: hash,
		RoleID:       adminRoleID,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s", email)
}

func seedCatalog() {
	courses := []models.Course{
		{Slug: "cs-101", Title: "Introduction to Programming", Credits: 4,
			Description: "Variables, control flow, functions and a first taste of data structures."},
		{Slug: "cs-240", Title: "Web Development", Credits: 3,
			Description: "Server-rendered applications, forms, sessions and relational storage."},
		{Slug: "math-210", Title: "Discrete Mathematics", Credits: 3,
			Description: "Logic, sets, combinatorics and graph theory for computer science."},
	}

	for _, course := range courses {
		var count int64
		if err := DB.Model(&models.Course{}).
			Where("slug = ?", course.Slug).
			Count(&count).Error; err != nil {
			log.Printf("failed to check course %s: %v", course.Slug, err)
			continue
		}
		if count > 0 {
			continue
		}
		if err := DB.Create(&course).Error; err != nil {
			log.Printf("failed to seed course %s: %v", course.Slug, err)
		}
	}
}

func seedFaculty() {
	members := []models.Faculty{
		{Slug: "h-chen", Name: "Helen Chen", Title: "Professor",
			Department: "Computer Science", Email: "h.chen@campus.local",
			Bio: "Researches programming languages and teaches the introductory sequence."},
		{Slug: "m-okafor", Name: "Martin Okafor", Title: "Associate Professor",
			Department: "Mathematics", Email: "m.okafor@campus.local",
			Bio: "Combinatorics and graph theory."},
		{Slug: "s-ruiz", Name: "Sofia Ruiz", Title: "Lecturer",
			Department: "Computer Science", Email: "s.ruiz@campus.local",
			Bio: "Teaches web development and databases."},
	}

	for _, member := range members {
		var count int64
		if err := DB.Model(&models.Faculty{}).
			Where("slug = ?", member.Slug).
			Count(&count).Error; err != nil {
			log.Printf("failed to check faculty %s: %v", member.Slug, err)
			continue
		}
		if count > 0 {
			continue
		}
		if err := DB.Create(&member).Error; err != nil {
			log.Printf("failed to seed faculty %s: %v", member.Slug, err)
		}
	}
}

func roleID(name models.UserRole) (uint, bool) {
	var role models.Role
	if err := DB.Where("role_name = ?", name).First(&role).Error; err != nil {
		log.Printf("failed to look up role %s: %v", name, err)
		return 0, false
	}
	return role.ID, true
}
