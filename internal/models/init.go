package models

import (
	"errors"

	"github.com/campaign-next/internal/constants"
	"github.com/campaign-next/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureInitialTime 确保虚拟时钟已初始化，缺失时置为 0
func EnsureInitialTime() error {
	var setting Setting
	err := DB.Where("key = ?", constants.TimeSettingKey).First(&setting).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := DB.Create(&Setting{Key: constants.TimeSettingKey, Value: "0"}).Error; err != nil {
		return err
	}
	logger.Infow("initial_time_seeded", "key", constants.TimeSettingKey, "value", 0)
	return nil
}

// InitDefaultAdmin 初始化默认管理员账号
func InitDefaultAdmin(username, password string) error {
	var count int64
	DB.Model(&Admin{}).Count(&count)
	if count > 0 {
		return nil
	}

	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := Admin{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == "admin123" {
		logger.Warnw("default_admin_created_with_default_password", "username", username)
	} else {
		logger.Warnw("default_admin_created", "username", username, "password_hidden", true)
	}
	return nil
}
