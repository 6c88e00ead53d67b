// Package adapters provides the gorm storage for quizzes.
package adapters

import (
	"time"

	"learning_backend/internal/feature/quizzes/domain/entity"
)

// QuizModel is the GORM model for the quizzes table.
// UpdatedAt stays NULL until the first update.
type QuizModel struct {
	ID          uint       `gorm:"primaryKey"`
	ModuleID    uint       `gorm:"not null;index"`
	Title       string     `gorm:"size:255;not null"`
	Description string     `gorm:"type:text;not null"`
	CreatedDate time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName returns the table name for GORM.
func (QuizModel) TableName() string {
	return "quizzes"
}

func (m *QuizModel) toEntity() entity.Quiz {
	return entity.Quiz{
		ID:          m.ID,
		ModuleID:    m.ModuleID,
		Title:       m.Title,
		Description: m.Description,
		CreatedDate: m.CreatedDate,
		UpdatedAt:   m.UpdatedAt,
	}
}

func quizToModel(e *entity.Quiz) QuizModel {
	return QuizModel{
		ID:          e.ID,
		ModuleID:    e.ModuleID,
		Title:       e.Title,
		Description: e.Description,
	}
}
