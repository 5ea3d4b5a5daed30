package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/noah-isme/simak-go-api/internal/dto"
	"github.com/noah-isme/simak-go-api/internal/models"
	"github.com/noah-isme/simak-go-api/internal/repository"
)

// Search method and sort algorithm names accepted by the listing view.
const (
	SearchMethodLinear     = "linear"
	SearchMethodSequential = "sequential"
	SearchMethodBinary     = "binary"
	SortAlgorithmBubble    = "bubble"
)

// QueryService filters, searches and sorts the student records snapshot and
// reports the asymptotic cost class of the steps it took.
type QueryService interface {
	ListFiltered(ctx context.Context, req dto.StudentListRequest) (dto.StudentListResponse, error)
}

type queryService struct {
	repo   repository.StudentRepository
	logger zerolog.Logger
}

// NewQueryService constructs the query service.
func NewQueryService(repo repository.StudentRepository, logger zerolog.Logger) QueryService {
	return &queryService{
		repo:   repo,
		logger: logger.With().Str("component", "query_service").Logger(),
	}
}

func (s *queryService) ListFiltered(ctx context.Context, req dto.StudentListRequest) (dto.StudentListResponse, error) {
	students, err := s.repo.Load(ctx)
	if err != nil {
		return dto.StudentListResponse{}, err
	}

	keyword := strings.TrimSpace(req.Query)
	method := req.Method
	if method == "" {
		method = SearchMethodLinear
	}
	sortField := req.SortField
	if sortField == "" {
		sortField = "nama"
	}
	descending := req.Order == "desc"

	if req.Department != "" {
		filtered := make([]models.Student, 0, len(students))
		for _, student := range students {
			if student.Department == req.Department {
				filtered = append(filtered, student)
			}
		}
		students = filtered
	}

	searchNote := "Search: not used."
	if keyword != "" {
		switch method {
		case SearchMethodLinear, SearchMethodSequential:
			students = linearSearch(students, keyword)
			searchNote = "Search: Linear Search → O(n)"
		case SearchMethodBinary:
			students = binarySearch(students, keyword)
			searchNote = "Search: Binary Search → O(log n)"
		}
	}

	sortNote := "Sort: built-in stable sort → O(n log n)"
	if req.SortAlg == SortAlgorithmBubble {
		students = bubbleSort(students, sortField, descending)
		sortNote = "Sort: Bubble Sort → O(n²)"
	} else {
		students = stableSort(students, sortField, descending)
	}

	items := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		items = append(items, dto.NewStudentResponse(student))
	}

	return dto.StudentListResponse{
		Items:          items,
		Departments:    models.Departments,
		ComplexityNote: searchNote + "\n" + sortNote,
	}, nil
}

// linearSearch keeps records whose NIM, name or department contains the
// keyword as a case-insensitive substring.
func linearSearch(students []models.Student, keyword string) []models.Student {
	k := strings.ToLower(keyword)
	matches := make([]models.Student, 0, len(students))
	for _, student := range students {
		if strings.Contains(strings.ToLower(student.NIM), k) ||
			strings.Contains(strings.ToLower(student.Name), k) ||
			strings.Contains(strings.ToLower(student.Department), k) {
			matches = append(matches, student)
		}
	}
	return matches
}

// binarySearch is a demonstration search mode: it probes a name-sorted copy
// for a matching midpoint, then scans outward while the name keeps matching.
// Matches that are not contiguous in name order (keyword hits on NIM or
// department only) can be missed, which is the documented trade-off of this
// mode; linear search is the default.
func binarySearch(students []models.Student, keyword string) []models.Student {
	k := strings.ToLower(keyword)

	sorted := make([]models.Student, len(students))
	copy(sorted, students)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	matches := []models.Student{}
	left, right := 0, len(sorted)-1
	for left <= right {
		mid := (left + right) / 2
		midName := strings.ToLower(sorted[mid].Name)

		if strings.Contains(midName, k) ||
			strings.Contains(strings.ToLower(sorted[mid].NIM), k) ||
			strings.Contains(strings.ToLower(sorted[mid].Department), k) {
			for i := mid; i >= 0 && strings.Contains(strings.ToLower(sorted[i].Name), k); i-- {
				matches = append(matches, sorted[i])
			}
			for i := mid + 1; i < len(sorted) && strings.Contains(strings.ToLower(sorted[i].Name), k); i++ {
				matches = append(matches, sorted[i])
			}
			return matches
		}

		if k < midName {
			right = mid - 1
		} else {
			left = mid + 1
		}
	}

	return matches
}

// bubbleSort orders records by the requested field using a quadratic
// comparison-exchange pass. Ties keep their original relative order.
func bubbleSort(students []models.Student, field string, descending bool) []models.Student {
	sorted := make([]models.Student, len(students))
	copy(sorted, students)

	for i := 0; i < len(sorted); i++ {
		for j := 0; j < len(sorted)-i-1; j++ {
			var swap bool
			if descending {
				swap = fieldLess(sorted[j], sorted[j+1], field)
			} else {
				swap = fieldLess(sorted[j+1], sorted[j], field)
			}
			if swap {
				sorted[j], sorted[j+1] = sorted[j+1], sorted[j]
			}
		}
	}

	return sorted
}

func stableSort(students []models.Student, field string, descending bool) []models.Student {
	sorted := make([]models.Student, len(students))
	copy(sorted, students)

	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return fieldLess(sorted[j], sorted[i], field)
		}
		return fieldLess(sorted[i], sorted[j], field)
	})

	return sorted
}

// fieldLess compares two records by the named sortable field. Unknown field
// names fall back to the student name.
func fieldLess(a, b models.Student, field string) bool {
	switch field {
	case "nim":
		return a.NIM < b.NIM
	case "kelas":
		return a.Class < b.Class
	case "ipk":
		return a.GPA < b.GPA
	case "jurusan":
		return a.Department < b.Department
	default:
		return a.Name < b.Name
	}
}
