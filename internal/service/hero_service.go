package service

import (
	"errors"
	"strings"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"gorm.io/gorm"
)

// ErrHeroNotFound 表示请求的轮播不存在。
var ErrHeroNotFound = errors.New("hero slider not found")

// HeroService 管理首页主视觉轮播及其幻灯片。
type HeroService struct {
	db *gorm.DB
}

// NewHeroService 构造 HeroService。
func NewHeroService(gdb *gorm.DB) *HeroService {
	return &HeroService{db: gdb}
}

// SlideInput 描述单页幻灯片的内容。
type SlideInput struct {
	Heading     string `json:"heading"`
	Subheading  string `json:"subheading"`
	ButtonLabel string `json:"buttonLabel"`
	ButtonURL   string `json:"buttonUrl"`
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `json:"isActive"`
}

// HeroInput 描述一次轮播保存的全部字段，幻灯片整组替换。
type HeroInput struct {
	Key        string       `json:"key"`
	Autoplay   bool         `json:"autoplay"`
	IntervalMS int          `json:"intervalMs"`
	IsActive   bool         `json:"isActive"`
	Slides     []SlideInput `json:"slides"`
}

// Get 按键读取轮播，幻灯片按排序值升序返回。
func (s *HeroService) Get(key string) (*db.HeroSlider, error) {
	k := strings.TrimSpace(key)
	if k == "" {
		k = db.HeroSliderKeyDefault
	}

	var slider db.HeroSlider
	err := s.db.Preload("Slides", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("sort_order asc").Order("id asc")
	}).Where("key = ?", k).First(&slider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHeroNotFound
		}
		return nil, err
	}

	return &slider, nil
}

// GetActive 返回启用状态的轮播及其启用的幻灯片。
func (s *HeroService) GetActive(key string) (*db.HeroSlider, error) {
	slider, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	if !slider.IsActive {
		return nil, ErrHeroNotFound
	}

	visible := make([]db.Slide, 0, len(slider.Slides))
	for _, slide := range slider.Slides {
		if slide.IsActive {
			visible = append(visible, slide)
		}
	}
	slider.Slides = visible

	return slider, nil
}

// Save 以键为单位 upsert 轮播，并在同一事务内整组替换幻灯片。
// 重复调用幂等：键下始终只有一个轮播，幻灯片以本次提交为准。
func (s *HeroService) Save(input HeroInput) (*db.HeroSlider, error) {
	key := strings.TrimSpace(input.Key)
	if key == "" {
		key = db.HeroSliderKeyDefault
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var slider db.HeroSlider
		if err := tx.Where("key = ?", key).First(&slider).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			slider = db.HeroSlider{Key: key}
			if err := tx.Create(&slider).Error; err != nil {
				return err
			}
		}

		slider.Autoplay = input.Autoplay
		slider.IntervalMS = input.IntervalMS
		slider.IsActive = input.IsActive
		if err := tx.Save(&slider).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("slider_id = ?", slider.ID).Delete(&db.Slide{}).Error; err != nil {
			return err
		}

		for idx, item := range input.Slides {
			slide := db.Slide{
				SliderID:    slider.ID,
				SortOrder:   idx,
				Heading:     item.Heading,
				Subheading:  item.Subheading,
				ButtonLabel: item.ButtonLabel,
				ButtonURL:   item.ButtonURL,
				ImageURL:    item.ImageURL,
				IsActive:    item.IsActive,
			}
			if err := tx.Create(&slide).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(key)
}
