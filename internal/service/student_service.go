package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/simak-go-api/internal/dto"
	"github.com/noah-isme/simak-go-api/internal/models"
	"github.com/noah-isme/simak-go-api/internal/repository"
)

// Sentinel errors for student management use cases.
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrDuplicateStudent = errors.New("student already exists")
)

// StudentService orchestrates student record management use cases.
type StudentService interface {
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Get(ctx context.Context, nim string) (dto.StudentResponse, error)
	Create(ctx context.Context, form dto.StudentForm) (dto.StudentResponse, error)
	Update(ctx context.Context, nim string, form dto.StudentForm) (dto.StudentResponse, error)
	Delete(ctx context.Context, nim string) error
}

type studentService struct {
	repo      repository.StudentRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, validator *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		validator: validator,
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, dto.NewStudentResponse(student))
	}

	return responses, nil
}

func (s *studentService) Get(ctx context.Context, nim string) (dto.StudentResponse, error) {
	students, err := s.repo.Load(ctx)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	for _, student := range students {
		if student.NIM == nim {
			return dto.NewStudentResponse(student), nil
		}
	}

	return dto.StudentResponse{}, ErrStudentNotFound
}

func (s *studentService) Create(ctx context.Context, form dto.StudentForm) (dto.StudentResponse, error) {
	record, err := s.validateForm(form)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	students, err := s.repo.Load(ctx)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	for _, student := range students {
		if student.NIM == record.NIM {
			return dto.StudentResponse{}, ErrDuplicateStudent
		}
	}

	students = append(students, record)
	if err := s.repo.Save(ctx, students); err != nil {
		return dto.StudentResponse{}, err
	}

	s.logger.Info().Str("nim", record.NIM).Msg("student created")

	return dto.NewStudentResponse(record), nil
}

func (s *studentService) Update(ctx context.Context, nim string, form dto.StudentForm) (dto.StudentResponse, error) {
	form.NIM = nim
	record, err := s.validateForm(form)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	students, err := s.repo.Load(ctx)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	for i := range students {
		if students[i].NIM != nim {
			continue
		}

		students[i].Name = record.Name
		students[i].Class = record.Class
		students[i].GPA = record.GPA
		students[i].Department = record.Department

		if err := s.repo.Save(ctx, students); err != nil {
			return dto.StudentResponse{}, err
		}

		s.logger.Info().Str("nim", nim).Msg("student updated")

		return dto.NewStudentResponse(students[i]), nil
	}

	return dto.StudentResponse{}, ErrStudentNotFound
}

func (s *studentService) Delete(ctx context.Context, nim string) error {
	students, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	remaining := make([]models.Student, 0, len(students))
	for _, student := range students {
		if student.NIM != nim {
			remaining = append(remaining, student)
		}
	}

	if len(remaining) == len(students) {
		return ErrStudentNotFound
	}

	if err := s.repo.Save(ctx, remaining); err != nil {
		return err
	}

	s.logger.Info().Str("nim", nim).Msg("student deleted")

	return nil
}

// validateForm normalises the submitted fields, applies the ordered field
// validations and converts the form into a storable record.
func (s *studentService) validateForm(form dto.StudentForm) (models.Student, error) {
	form.NIM = strings.TrimSpace(form.NIM)
	form.Name = strings.TrimSpace(form.Name)
	form.Class = strings.ToUpper(strings.TrimSpace(form.Class))
	form.GPA = strings.TrimSpace(form.GPA)
	form.Department = strings.TrimSpace(form.Department)

	if err := s.validator.Struct(form); err != nil {
		return models.Student{}, studentFormReason(err)
	}

	gpa, err := strconv.ParseFloat(form.GPA, 64)
	if err != nil {
		return models.Student{}, &ValidationError{Reason: "gpa must be numeric"}
	}

	return models.Student{
		NIM:        form.NIM,
		Name:       form.Name,
		Class:      form.Class,
		GPA:        gpa,
		Department: form.Department,
	}, nil
}
