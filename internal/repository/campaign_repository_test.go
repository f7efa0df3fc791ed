package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/campaign-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCampaignRepositoryTest(t *testing.T) (*GormCampaignRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Campaign{}); err != nil {
		t.Fatalf("migrate campaign failed: %v", err)
	}
	return NewCampaignRepository(db), db
}

func createCampaignAt(t *testing.T, repo *GormCampaignRepository, name string, creationTime, duration int) *models.Campaign {
	t.Helper()
	campaign := &models.Campaign{
		Name:                   name,
		ProductID:              1,
		Duration:               duration,
		PriceManipulationLimit: 20,
		TargetSalesCount:       100,
		CreationTime:           creationTime,
	}
	if err := repo.Create(campaign); err != nil {
		t.Fatalf("create campaign %s failed: %v", name, err)
	}
	return campaign
}

func TestListActiveAtInclusiveBounds(t *testing.T) {
	repo, _ := setupCampaignRepositoryTest(t)
	createCampaignAt(t, repo, "C1", 5, 10) // 窗口 [5,15]

	cases := []struct {
		at   int
		want int
	}{
		{4, 0},
		{5, 1},
		{10, 1},
		{15, 1},
		{16, 0},
	}
	for _, tc := range cases {
		active, err := repo.ListActiveAt(tc.at)
		if err != nil {
			t.Fatalf("list active at %d failed: %v", tc.at, err)
		}
		if len(active) != tc.want {
			t.Fatalf("at=%d want %d active campaigns, got %d", tc.at, tc.want, len(active))
		}
	}
}

func TestListActiveAtMultipleWindows(t *testing.T) {
	repo, _ := setupCampaignRepositoryTest(t)
	createCampaignAt(t, repo, "Early", 0, 5)  // [0,5]
	createCampaignAt(t, repo, "Late", 4, 10)  // [4,14]
	createCampaignAt(t, repo, "Gone", 20, 2)  // [20,22]

	active, err := repo.ListActiveAt(4)
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("want 2 overlapping campaigns at t=4, got %d", len(active))
	}

	active, err = repo.ListActiveAt(6)
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Late" {
		t.Fatalf("want only Late at t=6, got %+v", active)
	}
}

func TestGetByNameMissingReturnsNil(t *testing.T) {
	repo, _ := setupCampaignRepositoryTest(t)
	campaign, err := repo.GetByName("nope")
	if err != nil {
		t.Fatalf("get by name failed: %v", err)
	}
	if campaign != nil {
		t.Fatalf("missing campaign should be nil, got %+v", campaign)
	}
}
