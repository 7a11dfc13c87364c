package model

// User represents a learner account. There is no registration route in
// this service; rows are created by seeding or direct storage calls and
// exist to anchor per-tutorial progress.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Password string `json:"-" gorm:"size:255;not null"` // Never expose in JSON
}
