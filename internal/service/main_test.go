package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/simak-go-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func testValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterStudentValidations(v); err != nil {
		panic(err)
	}
	return v
}

// memoryStudentRepo is an in-memory substitute for the flat-file store.
type memoryStudentRepo struct {
	students []models.Student
	saves    int
}

func (r *memoryStudentRepo) Load(ctx context.Context) ([]models.Student, error) {
	snapshot := make([]models.Student, len(r.students))
	copy(snapshot, r.students)
	return snapshot, nil
}

func (r *memoryStudentRepo) Save(ctx context.Context, students []models.Student) error {
	snapshot := make([]models.Student, len(students))
	copy(snapshot, students)
	r.students = snapshot
	r.saves++
	return nil
}

type memoryUserRepo struct {
	users map[string]string
	saves int
}

func (r *memoryUserRepo) Load(ctx context.Context) (map[string]string, error) {
	snapshot := make(map[string]string, len(r.users))
	for username, hash := range r.users {
		snapshot[username] = hash
	}
	return snapshot, nil
}

func (r *memoryUserRepo) Save(ctx context.Context, users map[string]string) error {
	snapshot := make(map[string]string, len(users))
	for username, hash := range users {
		snapshot[username] = hash
	}
	r.users = snapshot
	r.saves++
	return nil
}
