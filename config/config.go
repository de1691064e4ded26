package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vibrantyoga/api/internal/models"
	"github.com/vibrantyoga/api/internal/token"
)

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string
	TokenTTL  time.Duration

	AdminName     string
	AdminEmail    string
	AdminPassword string

	SMTPDefaults models.SMTPSettings
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "vibrantyoga")
	v.SetDefault("TOKEN_TTL", token.DefaultTTL)
	v.SetDefault("SMTP_MAILER_NAME", "Vibrant Yoga")
	v.SetDefault("SMTP_HOST", "localhost")
	v.SetDefault("SMTP_PORT", 465)
	v.SetDefault("SMTP_ENCRYPTION", "SSL")

	cfg := &Config{
		Port:          v.GetString("PORT"),
		DBHost:        v.GetString("DB_HOST"),
		DBPort:        v.GetString("DB_PORT"),
		DBUser:        v.GetString("DB_USER"),
		DBPassword:    v.GetString("DB_PASSWORD"),
		DBName:        v.GetString("DB_NAME"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		TokenTTL:      v.GetDuration("TOKEN_TTL"),
		AdminName:     v.GetString("ADMIN_NAME"),
		AdminEmail:    v.GetString("ADMIN_EMAIL"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		SMTPDefaults: models.SMTPSettings{
			MailerName: v.GetString("SMTP_MAILER_NAME"),
			Host:       v.GetString("SMTP_HOST"),
			Port:       v.GetInt("SMTP_PORT"),
			Username:   v.GetString("SMTP_USERNAME"),
			Email:      v.GetString("SMTP_EMAIL"),
			Encryption: v.GetString("SMTP_ENCRYPTION"),
			Password:   v.GetString("SMTP_PASSWORD"),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not configured")
	}
	return cfg, nil
}

func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := enableUUIDExtension(db); err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&models.User{}, &models.Event{}, &models.Booking{}, &models.SMTPSettings{})
	if err != nil {
		return nil, err
	}

	if err := seedAdmin(db, cfg); err != nil {
		return nil, err
	}

	return db, nil
}

// seedAdmin creates the bootstrap admin account on first run. Without it
// there is no one to publish events or approve bookings.
func seedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logrus.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping bootstrap admin")
		return nil
	}

	var existing models.User
	err := db.Where("LOWER(email) = LOWER(?)", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := cfg.AdminName
	if name == "" {
		name = "Admin User"
	}

	admin := models.User{
		Name:           name,
		Email:          cfg.AdminEmail,
		PasswordHash:   string(hash),
		Role:           models.RoleAdmin,
		Status:         models.StatusActive,
		Preferences:    datatypes.JSONMap{},
		BookingSummary: datatypes.JSONMap{},
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logrus.WithField("email", cfg.AdminEmail).Info("bootstrap admin created")
	return nil
}
