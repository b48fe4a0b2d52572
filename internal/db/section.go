package db

import "gorm.io/gorm"

// Section 表示按页面键存储的单例内容区块
// Page 键全表唯一，同一键的写入走统一的 upsert 路径
// Lines 用于存放逐行展示的文案数组

type Section struct {
	gorm.Model
	Page     string     `gorm:"size:100;uniqueIndex;not null" json:"page"`
	Title    string     `gorm:"size:255" json:"title"`
	Subtitle string     `gorm:"size:255" json:"subtitle"`
	Body     string     `gorm:"type:text" json:"body"`
	Lines    StringList `gorm:"type:text" json:"lines"`
	ImageURL string     `gorm:"size:255" json:"imageUrl"`
	IsActive bool       `json:"isActive"`
}

const (
	// SectionKeyDefault 是未指定键时的回退值。
	SectionKeyDefault = "main"
	// SectionKeyAbout 表示关于我们区块。
	SectionKeyAbout = "about-us"
	// SectionKeyContact 表示联系方式区块。
	SectionKeyContact = "contact-details"
	// SectionKeyCreative 表示创意展示区块。
	SectionKeyCreative = "creative"
	// SectionKeyWhoWeAre 表示团队介绍区块。
	SectionKeyWhoWeAre = "who-we-are"
	// SectionKeyTeam 表示团队成员区块。
	SectionKeyTeam = "team-section"
)
