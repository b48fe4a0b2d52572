package db

import "gorm.io/gorm"

// SiteSetting 存储后台可配置的站点级键值对。
type SiteSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

// TableName 自定义表名以保持命名一致。
func (SiteSetting) TableName() string {
	return "site_settings"
}

const (
	// SettingKeySiteName 表示站点名称。
	SettingKeySiteName = "site_name"
	// SettingKeySiteLogoURL 表示站点 Logo 链接。
	SettingKeySiteLogoURL = "site_logo_url"
	// SettingKeyContactEmail 表示对外展示的联系邮箱。
	SettingKeyContactEmail = "contact_email"
	// SettingKeyContactPhone 表示对外展示的联系电话。
	SettingKeyContactPhone = "contact_phone"
	// SettingKeyAddress 表示办公地址。
	SettingKeyAddress = "address"
	// SettingKeyFacebookURL 表示 Facebook 主页链接。
	SettingKeyFacebookURL = "facebook_url"
	// SettingKeyInstagramURL 表示 Instagram 主页链接。
	SettingKeyInstagramURL = "instagram_url"
	// SettingKeyLinkedInURL 表示 LinkedIn 主页链接。
	SettingKeyLinkedInURL = "linkedin_url"
	// SettingKeyTwitterURL 表示 Twitter 主页链接。
	SettingKeyTwitterURL = "twitter_url"
	// SettingKeyFooterText 表示页脚文案。
	SettingKeyFooterText = "footer_text"
)
