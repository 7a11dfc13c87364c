package model

import "time"

// UserProgress tracks completion and watch time of one tutorial for one
// user. The (user_id, tutorial_id) pair is unique; writes go through an
// atomic upsert against that index.
type UserProgress struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userId" gorm:"not null;uniqueIndex:idx_user_tutorial"`
	TutorialID  uint      `json:"tutorialId" gorm:"not null;uniqueIndex:idx_user_tutorial"`
	Completed   bool      `json:"completed" gorm:"default:false"`
	WatchTime   int       `json:"watchTime" gorm:"default:0"` // seconds
	LastWatched time.Time `json:"lastWatched"`

	// Relations
	User     User     `json:"-" gorm:"foreignKey:UserID"`
	Tutorial Tutorial `json:"-" gorm:"foreignKey:TutorialID"`
}

// TableName keeps the historical table name.
func (UserProgress) TableName() string {
	return "user_progress"
}
