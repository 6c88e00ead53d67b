package db

import (
	"gorm.io/gorm"

	"learning_backend/internal/feature/auth/domain/entity"
	moduleadapters "learning_backend/internal/feature/modules/adapters"
	progressadapters "learning_backend/internal/feature/progress/adapters"
	quizadapters "learning_backend/internal/feature/quizzes/adapters"
)

// Models lists every table the service owns, parents before children.
func Models() []any {
	return []any{
		&entity.User{},
		&moduleadapters.ModuleModel{},
		&moduleadapters.ContentModel{},
		&progressadapters.ProgressModel{},
		&quizadapters.QuizModel{},
	}
}

// AutoMigrate creates or alters the tables of Models.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(Models()...)
}
