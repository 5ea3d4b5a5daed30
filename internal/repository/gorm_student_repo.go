package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/simak-go-api/internal/models"
)

type gormStudentRepository struct {
	db *gorm.DB
}

// NewGormStudentRepository constructs a student repository backed by an
// embedded database. It keeps the same wholesale Load/Save contract as the
// JSON document store so callers stay unchanged.
func NewGormStudentRepository(db *gorm.DB) StudentRepository {
	return &gormStudentRepository{db: db}
}

func (r *gormStudentRepository) Load(ctx context.Context) ([]models.Student, error) {
	students := []models.Student{}
	if err := r.db.WithContext(ctx).Order("id").Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

func (r *gormStudentRepository) Save(ctx context.Context, students []models.Student) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Student{}).Error; err != nil {
			return err
		}

		if len(students) == 0 {
			return nil
		}

		// Replacement snapshot: identifiers are reassigned in insertion order.
		rows := make([]models.Student, len(students))
		copy(rows, students)
		for i := range rows {
			rows[i].ID = 0
		}

		return tx.Create(&rows).Error
	})
}
