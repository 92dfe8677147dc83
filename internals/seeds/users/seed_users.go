package users

import (
	"encoding/json"
	"log"
	"os"

	"lessoncms_backend/internals/features/users/auth/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserSeed struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON membuat user awal (admin/editor/viewer); yang sudah ada dilewati.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var seeds []UserSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, s := range seeds {
		var existing model.UserModel
		if err := db.First(&existing, "user_email = ?", s.Email).Error; err == nil {
			log.Printf("ℹ️ User '%s' sudah ada, dilewati.", s.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", s.Email, err)
			continue
		}

		user := model.UserModel{
			UserName:     s.Name,
			UserEmail:    s.Email,
			UserPassword: string(hashed),
			UserRole:     s.Role,
			UserIsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Gagal seed user '%s': %v", s.Email, err)
			continue
		}
		log.Printf("✅ User '%s' (%s) dibuat.", s.Email, s.Role)
	}
}
