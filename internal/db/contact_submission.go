package db

import "gorm.io/gorm"

// ContactSubmission 保存前台联系表单的提交记录
// 正文字段创建后不再修改，后台只翻转已读/已回复标记

type ContactSubmission struct {
	gorm.Model
	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100;not null" json:"lastName"`
	Email     string `gorm:"size:255;not null;index" json:"email"`
	Message   string `gorm:"type:text;not null" json:"message"`
	IsRead    bool   `json:"isRead"`
	IsReplied bool   `json:"isReplied"`
}

// TableName 自定义表名以保持命名一致。
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
