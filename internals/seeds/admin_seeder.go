package seeds

import (
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"modaly_backend/internals/configs"
	userModel "modaly_backend/internals/features/users/auth/model"
)

// SeedAdminUser makes sure the ADMIN_EMAIL account exists. The password hash
// is only written on first creation; changing ADMIN_PASSWORD later does not
// rotate an existing account.
func SeedAdminUser(db *gorm.DB) {
	email := strings.ToLower(strings.TrimSpace(configs.AdminEmail))
	password := configs.AdminPassword
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing userModel.User
	err := db.First(&existing, "user_email = ?", email).Error
	if err == nil {
		log.Println("✅ Admin user already present.")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("❌ Admin seed lookup failed: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Admin seed hash failed: %v", err)
		return
	}

	user := userModel.User{
		UserEmail:        email,
		UserPasswordHash: string(hash),
		UserIsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("❌ Admin seed insert failed: %v", err)
		return
	}
	log.Printf("✅ Admin user seeded: %s", email)
}
