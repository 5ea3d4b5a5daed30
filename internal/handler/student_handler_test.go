package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/simak-go-api/internal/dto"
	"github.com/noah-isme/simak-go-api/internal/handler"
	"github.com/noah-isme/simak-go-api/internal/service"
)

type stubStudentService struct {
	students   []dto.StudentResponse
	created    dto.StudentResponse
	createErr  error
	deleteErr  error
	lastNIM    string
	lastCreate dto.StudentForm
}

func (s *stubStudentService) List(_ context.Context) ([]dto.StudentResponse, error) {
	return s.students, nil
}

func (s *stubStudentService) Get(_ context.Context, nim string) (dto.StudentResponse, error) {
	s.lastNIM = nim
	for _, student := range s.students {
		if student.NIM == nim {
			return student, nil
		}
	}
	return dto.StudentResponse{}, service.ErrStudentNotFound
}

func (s *stubStudentService) Create(_ context.Context, form dto.StudentForm) (dto.StudentResponse, error) {
	s.lastCreate = form
	if s.createErr != nil {
		return dto.StudentResponse{}, s.createErr
	}
	return s.created, nil
}

func (s *stubStudentService) Update(_ context.Context, nim string, form dto.StudentForm) (dto.StudentResponse, error) {
	s.lastNIM = nim
	return s.created, nil
}

func (s *stubStudentService) Delete(_ context.Context, nim string) error {
	s.lastNIM = nim
	return s.deleteErr
}

type stubQueryService struct {
	response dto.StudentListResponse
	lastReq  dto.StudentListRequest
}

func (s *stubQueryService) ListFiltered(_ context.Context, req dto.StudentListRequest) (dto.StudentListResponse, error) {
	s.lastReq = req
	return s.response, nil
}

func newStudentApp(students *stubStudentService, queries *stubQueryService) *fiber.App {
	app := fiber.New()
	handler.NewStudentHandler(students, queries, zerolog.Nop()).Register(app.Group(""))
	return app
}

func TestStudentHandlerIndexForwardsQueryParams(t *testing.T) {
	queries := &stubQueryService{response: dto.StudentListResponse{
		Items:          []dto.StudentResponse{{NIM: "111111111111", Name: "Budi"}},
		ComplexityNote: "Search: Linear Search → O(n)\nSort: built-in stable sort → O(n log n)",
	}}
	app := newStudentApp(&stubStudentService{}, queries)

	req := httptest.NewRequest(http.MethodGet, "/index?q=budi&jurusan=Hukum&method=binary&sort_alg=bubble&sort_field=ipk&order=desc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Equal(t, "budi", queries.lastReq.Query)
	require.Equal(t, "Hukum", queries.lastReq.Department)
	require.Equal(t, "binary", queries.lastReq.Method)
	require.Equal(t, "bubble", queries.lastReq.SortAlg)
	require.Equal(t, "ipk", queries.lastReq.SortField)
	require.Equal(t, "desc", queries.lastReq.Order)

	var payload struct {
		Success bool                    `json:"success"`
		Data    dto.StudentListResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()
	require.True(t, payload.Success)
	require.Len(t, payload.Data.Items, 1)
	require.Contains(t, payload.Data.ComplexityNote, "Linear Search")
}

func TestStudentHandlerIndexDefaults(t *testing.T) {
	queries := &stubQueryService{}
	app := newStudentApp(&stubStudentService{}, queries)

	req := httptest.NewRequest(http.MethodGet, "/index", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "linear", queries.lastReq.Method)
	require.Equal(t, "nama", queries.lastReq.SortField)
	require.Equal(t, "asc", queries.lastReq.Order)
}

func TestStudentHandlerCreateValidationError(t *testing.T) {
	students := &stubStudentService{createErr: &service.ValidationError{Reason: "id must be 12 digits"}}
	app := newStudentApp(students, &stubQueryService{})

	form := url.Values{}
	form.Set("nim", "123")
	form.Set("nama", "Budi")
	form.Set("kelas", "TI1A")
	form.Set("ipk", "3.0")
	form.Set("jurusan", "Hukum")

	req := httptest.NewRequest(http.MethodPost, "/tambah", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()
	require.False(t, payload.Success)
	require.Equal(t, "id must be 12 digits", payload.Message)
	require.Equal(t, "123", students.lastCreate.NIM)
}

func TestStudentHandlerCreateDuplicate(t *testing.T) {
	students := &stubStudentService{createErr: service.ErrDuplicateStudent}
	app := newStudentApp(students, &stubQueryService{})

	form := url.Values{}
	form.Set("nim", "123456789012")

	req := httptest.NewRequest(http.MethodPost, "/tambah", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestStudentHandlerDeleteNotFound(t *testing.T) {
	students := &stubStudentService{deleteErr: service.ErrStudentNotFound}
	app := newStudentApp(students, &stubQueryService{})

	req := httptest.NewRequest(http.MethodGet, "/delete/999999999999", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, "999999999999", students.lastNIM)
}

var (
	_ service.StudentService = (*stubStudentService)(nil)
	_ service.QueryService   = (*stubQueryService)(nil)
)
