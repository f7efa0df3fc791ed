package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/campaign-next/internal/constants"
	"github.com/campaign-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupSettingRepositoryTest(t *testing.T) *GormSettingRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		t.Fatalf("migrate setting failed: %v", err)
	}
	return NewSettingRepository(db)
}

func TestSettingUpsertAndGet(t *testing.T) {
	repo := setupSettingRepositoryTest(t)

	if setting, err := repo.GetByKey(constants.TimeSettingKey); err != nil || setting != nil {
		t.Fatalf("missing key want nil/nil, got %+v, %v", setting, err)
	}

	if _, err := repo.Upsert(constants.TimeSettingKey, "0"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	setting, err := repo.GetByKey(constants.TimeSettingKey)
	if err != nil || setting == nil {
		t.Fatalf("get after insert failed: %v", err)
	}
	if setting.Value != "0" {
		t.Fatalf("value want 0, got %s", setting.Value)
	}

	if _, err := repo.Upsert(constants.TimeSettingKey, "7"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	setting, err = repo.GetByKey(constants.TimeSettingKey)
	if err != nil || setting == nil {
		t.Fatalf("get after update failed: %v", err)
	}
	if setting.Value != "7" {
		t.Fatalf("value want 7, got %s", setting.Value)
	}
}
