package service

import (
	"strconv"
	"sync"

	"github.com/campaign-next/internal/constants"
	"github.com/campaign-next/internal/repository"
)

// ClockService 虚拟时钟服务。时钟值持久化在 settings 表的 time 键下，
// 只增不减。内嵌的互斥锁是时钟与定价状态的唯一互斥域：
// 推进时间和创建订单都必须持有它，避免并发 tick 重复降价
// 或订单读到过期价格。
type ClockService struct {
	sync.Mutex
	settingRepo repository.SettingRepository
}

// NewClockService 创建虚拟时钟服务
func NewClockService(settingRepo repository.SettingRepository) *ClockService {
	return &ClockService{settingRepo: settingRepo}
}

// Now 读取当前时钟值（小时）
func (s *ClockService) Now() (int, error) {
	setting, err := s.settingRepo.GetByKey(constants.TimeSettingKey)
	if err != nil {
		return 0, err
	}
	if setting == nil {
		return 0, ErrSystemConfigMissing
	}
	value, err := strconv.Atoi(setting.Value)
	if err != nil {
		return 0, ErrTimeValueInvalid
	}
	return value, nil
}

// Set 写入时钟值，调用方需持有时钟锁
func (s *ClockService) Set(value int) error {
	_, err := s.settingRepo.Upsert(constants.TimeSettingKey, strconv.Itoa(value))
	return err
}
