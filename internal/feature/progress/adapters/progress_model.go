package adapters

import "time"

// ProgressModel is the GORM model for the user_progress table.
// It exists for schema migration; reads and writes go through progressSQLX.
type ProgressModel struct {
	ID               uint       `gorm:"primaryKey"`
	UserID           uint       `gorm:"not null;uniqueIndex:idx_user_progress_user_module"`
	ModuleID         uint       `gorm:"not null;uniqueIndex:idx_user_progress_user_module"`
	CurrentContentID uint       `gorm:"not null;default:0"`
	IsCompleted      bool       `gorm:"not null;default:false"`
	StartedAt        time.Time  `gorm:"not null"`
	CompletedAt      *time.Time
}

// TableName returns the table name for GORM.
func (ProgressModel) TableName() string {
	return "user_progress"
}
