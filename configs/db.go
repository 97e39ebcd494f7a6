package configs

import (
	"errors"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zninennea/nani-plate-perfect/entity"
)

func ConnectDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.ChatMessage{},
		&entity.Review{},
	)
}

// SeedOwner creates the restaurant operator account on first boot; the app
// has no self-service path to the owner role.
func SeedOwner(db *gorm.DB, email, password string) error {
	var existing entity.User
	err := db.Where("role = ?", entity.RoleOwner).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&entity.User{
		Email:    email,
		Password: string(hashed),
		FullName: "NaNi Kitchen",
		Role:     entity.RoleOwner,
	}).Error
}
