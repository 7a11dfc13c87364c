package model

import "time"

// AppGalleryItem represents an example application entry with an
// external PartyRock link. Same lifecycle as Tutorial minus the view
// counter.
type AppGalleryItem struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	Description   string    `json:"description" gorm:"type:text"`
	ScreenshotURL string    `json:"screenshotUrl" gorm:"type:text"`
	PartyrockLink string    `json:"partyrockLink" gorm:"type:text"`
	Category      string    `json:"category" gorm:"size:100;not null;index"` // 교육, 비즈니스, 정부/공공
	Difficulty    string    `json:"difficulty" gorm:"size:100;not null"`     // 초급, 중급, 고급
	UseCase       string    `json:"useCase" gorm:"type:text"`
	Rating        int       `json:"rating" gorm:"default:0"`
	Featured      bool      `json:"featured" gorm:"default:false;index"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName keeps the historical table name.
func (AppGalleryItem) TableName() string {
	return "app_gallery"
}
