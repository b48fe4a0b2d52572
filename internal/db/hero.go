package db

import "gorm.io/gorm"

// HeroSlider 定义了首页主视觉轮播
// Key 唯一，默认实例使用 "main"

type HeroSlider struct {
	gorm.Model
	Key        string  `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Autoplay   bool    `json:"autoplay"`
	IntervalMS int     `gorm:"default:5000" json:"intervalMs"`
	IsActive   bool    `json:"isActive"`
	Slides     []Slide `gorm:"foreignKey:SliderID" json:"slides"`
}

// Slide 是轮播中的单页，按 SortOrder 升序展示
type Slide struct {
	gorm.Model
	SliderID    uint   `gorm:"index;not null" json:"sliderId"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`
	Heading     string `gorm:"size:255" json:"heading"`
	Subheading  string `gorm:"size:255" json:"subheading"`
	ButtonLabel string `gorm:"size:100" json:"buttonLabel"`
	ButtonURL   string `gorm:"size:255" json:"buttonUrl"`
	ImageURL    string `gorm:"size:255" json:"imageUrl"`
	IsActive    bool   `json:"isActive"`
}

// HeroSliderKeyDefault 是默认轮播实例的键。
const HeroSliderKeyDefault = "main"
