package model

import "time"

// Setting is the singleton configuration row. The admin key lives here
// so a change survives restarts and is visible to every instance; the
// ADMIN_KEY environment variable only bootstraps the first row.
type Setting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AdminKey  string    `json:"-" gorm:"size:255;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the historical table name.
func (Setting) TableName() string {
	return "settings"
}
