package config

import (
	"log"
	"os"

	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/core/rbac"
	"schoolhub/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedRoles(); err != nil {
		return err
	}

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedRoles inserts the fixed role catalog. The permissions column is
// descriptive; enforcement lives in the rbac package.
func (s *Seeder) seedRoles() error {
	roles := []models.Role{
		{RoleName: rbac.RoleAdmin, Permissions: "all"},
		{RoleName: rbac.RoleTeacher, Permissions: "courses,students,grades,attendance"},
		{RoleName: rbac.RoleStudent, Permissions: "courses,grades"},
		{RoleName: rbac.RoleParent, Permissions: "grades,attendance"},
		{RoleName: rbac.RoleStaff, Permissions: "courses,attendance"},
		{RoleName: rbac.RoleInvestor, Permissions: "none"},
	}

	for _, role := range roles {
		var count int64
		s.db.Model(&models.Role{}).Where("role_name = ?", role.RoleName).Count(&count)
		if count > 0 {
			continue
		}
		if err := s.db.Create(&role).Error; err != nil {
			return err
		}
	}

	return nil
}

// seedAdminUser bootstraps the first admin account. Requires
// ADMIN_PASSWORD to be set; there is no hardcoded default credential.
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", rbac.RoleAdmin).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Println("⚠️ Skipping admin seed: ADMIN_PASSWORD not set")
		return nil
	}

	hashedPassword, err := password.Hash(adminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Email:    getEnv("ADMIN_EMAIL", "admin@schoolhub.local"),
		Password: hashedPassword,
		Role:     rbac.RoleAdmin,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Username)
	return nil
}
