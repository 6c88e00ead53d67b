// Package adapters provides the gorm storage for modules and their contents.
package adapters

import (
	"time"

	"learning_backend/internal/feature/modules/domain/entity"
)

// ModuleModel is the GORM model for the modules table.
type ModuleModel struct {
	ID              uint   `gorm:"primaryKey"`
	Title           string `gorm:"size:255;not null"`
	Description     string `gorm:"type:text;not null"`
	DifficultyLevel string `gorm:"size:32;not null"`
	Duration        int    `gorm:"not null;default:0"`
	Prerequisites   string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Contents        []ContentModel `gorm:"foreignKey:ModuleID"`
}

// TableName returns the table name for GORM.
func (ModuleModel) TableName() string {
	return "modules"
}

// ContentModel is the GORM model for the module_contents table.
type ContentModel struct {
	ID          uint   `gorm:"primaryKey"`
	ModuleID    uint   `gorm:"not null;index"`
	ContentType string `gorm:"size:32;not null"`
	Content     string `gorm:"type:text;not null"`
	Sequence    int    `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (ContentModel) TableName() string {
	return "module_contents"
}

func (m *ModuleModel) toEntity() entity.Module {
	out := entity.Module{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		DifficultyLevel: m.DifficultyLevel,
		Duration:        m.Duration,
		Prerequisites:   m.Prerequisites,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Contents != nil {
		out.Contents = make([]entity.Content, 0, len(m.Contents))
		for i := range m.Contents {
			out.Contents = append(out.Contents, m.Contents[i].toEntity())
		}
	}
	return out
}

func moduleToModel(e *entity.Module) ModuleModel {
	return ModuleModel{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		DifficultyLevel: e.DifficultyLevel,
		Duration:        e.Duration,
		Prerequisites:   e.Prerequisites,
	}
}

func (m *ContentModel) toEntity() entity.Content {
	return entity.Content{
		ID:          m.ID,
		ModuleID:    m.ModuleID,
		ContentType: m.ContentType,
		Content:     m.Content,
		Sequence:    m.Sequence,
	}
}

func contentToModel(e *entity.Content) ContentModel {
	return ContentModel{
		ID:          e.ID,
		ModuleID:    e.ModuleID,
		ContentType: e.ContentType,
		Content:     e.Content,
		Sequence:    e.Sequence,
	}
}
