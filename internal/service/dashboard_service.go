package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/noah-isme/simak-go-api/internal/dto"
	"github.com/noah-isme/simak-go-api/internal/repository"
)

// DashboardService computes summary statistics over the full records
// snapshot on every request.
type DashboardService interface {
	Summary(ctx context.Context) (dto.DashboardResponse, error)
}

type dashboardService struct {
	repo   repository.StudentRepository
	logger zerolog.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(repo repository.StudentRepository, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		repo:   repo,
		logger: logger.With().Str("component", "dashboard_service").Logger(),
	}
}

func (s *dashboardService) Summary(ctx context.Context) (dto.DashboardResponse, error) {
	students, err := s.repo.Load(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	summary := dto.DashboardResponse{
		Total:         len(students),
		PerDepartment: map[string]int{},
		TopDepartment: "-",
	}

	if len(students) == 0 {
		return summary, nil
	}

	var gpaSum float64
	seen := make([]string, 0, len(students))
	for _, student := range students {
		gpaSum += student.GPA
		if _, ok := summary.PerDepartment[student.Department]; !ok {
			seen = append(seen, student.Department)
		}
		summary.PerDepartment[student.Department]++
	}

	summary.AverageGPA = math.Round(gpaSum/float64(len(students))*100) / 100

	// First department to reach the maximum count wins ties.
	best := 0
	for _, department := range seen {
		if summary.PerDepartment[department] > best {
			best = summary.PerDepartment[department]
			summary.TopDepartment = department
		}
	}

	return summary, nil
}
