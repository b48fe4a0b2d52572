package db

import "gorm.io/gorm"

// TeamMember 用于保存前台展示的团队成员信息
// 支持自定义排序，Sort 值越小越靠前
// IsActive 标记是否在前台展示

type TeamMember struct {
	gorm.Model
	Name      string     `gorm:"size:100;not null" json:"name"`
	Role      string     `gorm:"size:100" json:"role"`
	Bio       string     `gorm:"type:text" json:"bio"`
	PhotoURL  string     `gorm:"size:255" json:"photoUrl"`
	Socials   StringList `gorm:"type:text" json:"socials"`
	SortOrder int        `gorm:"default:0" json:"sortOrder"`
	IsActive  bool       `json:"isActive"`
}

// TableName 返回自定义表名，避免冲突
func (TeamMember) TableName() string {
	return "team_members"
}
