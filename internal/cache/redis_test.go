package cache

import (
	"context"
	"testing"
	"time"

	"github.com/campaign-next/internal/config"
	"github.com/campaign-next/internal/models"
)

func TestInitRedisDisabled(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("InitRedis failed: %v", err)
	}
	if Enabled() {
		t.Fatalf("cache should be disabled")
	}
	if Client() != nil {
		t.Fatalf("Client should be nil when disabled")
	}
}

func TestBuildKeyUsesPrefix(t *testing.T) {
	// NewClient 不会立即建连，初始化后仅验证键拼接即可
	if err := InitRedis(&config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 6379, Prefix: "unit"}); err != nil {
		t.Fatalf("InitRedis failed: %v", err)
	}
	defer func() { _ = Close() }()

	if !Enabled() {
		t.Fatalf("cache should be enabled")
	}
	if got := BuildKey("report:campaign:1"); got != "unit:report:campaign:1" {
		t.Fatalf("BuildKey = %q, want %q", got, "unit:report:campaign:1")
	}
	if got := BuildKey("  "); got != "unit" {
		t.Fatalf("BuildKey blank = %q, want %q", got, "unit")
	}
}

func TestCacheHelpersNoopWhenDisabled(t *testing.T) {
	_ = Close()
	ctx := context.Background()

	var report models.CampaignReport
	hit, err := GetJSON(ctx, "report:campaign:1", &report)
	if err != nil || hit {
		t.Fatalf("GetJSON disabled: hit=%v err=%v", hit, err)
	}
	if err := SetJSON(ctx, "report:campaign:1", report, time.Minute); err != nil {
		t.Fatalf("SetJSON disabled: %v", err)
	}
	if err := Del(ctx, "report:campaign:1"); err != nil {
		t.Fatalf("Del disabled: %v", err)
	}

	state, hit, err := GetAdminAuthState(ctx, 1)
	if err != nil || hit || state != nil {
		t.Fatalf("GetAdminAuthState disabled: state=%v hit=%v err=%v", state, hit, err)
	}
	if err := SetAdminAuthState(ctx, BuildAdminAuthState(&models.Admin{ID: 1, Username: "root"})); err != nil {
		t.Fatalf("SetAdminAuthState disabled: %v", err)
	}
	if BuildAdminAuthState(nil) != nil {
		t.Fatalf("BuildAdminAuthState(nil) should be nil")
	}

	cached, hit, err := GetCampaignReport(ctx, 1)
	if err != nil || hit || cached != nil {
		t.Fatalf("GetCampaignReport disabled: report=%v hit=%v err=%v", cached, hit, err)
	}
	if err := SetCampaignReport(ctx, &models.CampaignReport{CampaignID: 1}); err != nil {
		t.Fatalf("SetCampaignReport disabled: %v", err)
	}
	if err := DelCampaignReport(ctx, 1); err != nil {
		t.Fatalf("DelCampaignReport disabled: %v", err)
	}
}
