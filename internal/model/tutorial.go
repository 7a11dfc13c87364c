package model

import "time"

// CategoryAll is the sentinel category ("All") that disables filtering.
const CategoryAll = "전체"

// Tutorial represents a cataloged instructional video.
// Rating is stored in tenths of a star (48 = 4.8), range 0-50.
type Tutorial struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Description  string    `json:"description" gorm:"type:text"`
	VideoURL     string    `json:"videoUrl" gorm:"type:text;not null"`
	ThumbnailURL string    `json:"thumbnailUrl" gorm:"type:text"`
	SubtitleURL  string    `json:"subtitleUrl" gorm:"type:text"`
	Category     string    `json:"category" gorm:"size:100;not null;index"` // 기초, 응용, 고급
	Difficulty   string    `json:"difficulty" gorm:"size:100;not null"`     // 초급, 중급, 고급
	Duration     int       `json:"duration" gorm:"default:0"`               // seconds
	Views        int64     `json:"views" gorm:"default:0"`
	Rating       int       `json:"rating" gorm:"default:0"`
	// No gorm default: a zero-valued field with a default tag is
	// omitted from the INSERT, which would turn drafts into published
	// rows. Absent `published` defaults to true at the request layer.
	Published    bool      `json:"published" gorm:"index"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
