package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSettingKeyUnknown 表示写入了允许列表之外的设置键。
var ErrSettingKeyUnknown = errors.New("unknown setting key")

// settingKeys 是后台允许写入的全部设置键。
var settingKeys = []string{
	db.SettingKeySiteName,
	db.SettingKeySiteLogoURL,
	db.SettingKeyContactEmail,
	db.SettingKeyContactPhone,
	db.SettingKeyAddress,
	db.SettingKeyFacebookURL,
	db.SettingKeyInstagramURL,
	db.SettingKeyLinkedInURL,
	db.SettingKeyTwitterURL,
	db.SettingKeyFooterText,
}

// SettingService 提供站点设置的读取与更新能力。
type SettingService struct {
	db *gorm.DB
}

// NewSettingService 构造 SettingService。
func NewSettingService(gdb *gorm.DB) *SettingService {
	return &SettingService{db: gdb}
}

// GetSettings 读取全部站点设置，未设置的键返回空值。
// 站点名称仅在从未写入过时使用默认值，显式清空后按空值返回。
func (s *SettingService) GetSettings() (map[string]string, error) {
	result := make(map[string]string, len(settingKeys))
	for _, key := range settingKeys {
		result[key] = ""
	}
	result[db.SettingKeySiteName] = "Red Zone"

	var records []db.SiteSetting
	if err := s.db.Where("key IN ?", settingKeys).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load site settings: %w", err)
	}

	for _, record := range records {
		result[record.Key] = record.Value
	}

	return result, nil
}

// UpdateSettings 在一个事务内逐键 upsert；允许列表之外的键直接拒绝。
func (s *SettingService) UpdateSettings(values map[string]string) (map[string]string, error) {
	for key := range values {
		if !isAllowedSettingKey(key) {
			return nil, fmt.Errorf("%w: %s", ErrSettingKeyUnknown, key)
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := upsertSetting(tx, key, strings.TrimSpace(value)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update site settings: %w", err)
	}

	return s.GetSettings()
}

func isAllowedSettingKey(key string) bool {
	for _, candidate := range settingKeys {
		if key == candidate {
			return true
		}
	}
	return false
}

func upsertSetting(tx *gorm.DB, key, value string) error {
	setting := db.SiteSetting{Key: key, Value: value}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}
