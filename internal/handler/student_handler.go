package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/simak-go-api/internal/dto"
	"github.com/noah-isme/simak-go-api/internal/models"
	"github.com/noah-isme/simak-go-api/internal/service"
	"github.com/noah-isme/simak-go-api/internal/utils"
)

// StudentHandler wires the record listing and management endpoints.
type StudentHandler struct {
	students service.StudentService
	queries  service.QueryService
	logger   zerolog.Logger
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(students service.StudentService, queries service.QueryService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		students: students,
		queries:  queries,
		logger:   logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches the session-protected record routes to the router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("/index", h.index)
	router.Get("/mahasiswa", h.list)
	router.Get("/tambah", h.createForm)
	router.Post("/tambah", h.create)
	router.Get("/edit/:nim", h.editForm)
	router.Post("/edit/:nim", h.edit)
	router.Get("/delete/:nim", h.delete)
}

func (h *StudentHandler) index(c *fiber.Ctx) error {
	req := dto.StudentListRequest{
		Query:      c.Query("q"),
		Department: c.Query("jurusan"),
		Method:     c.Query("method", service.SearchMethodLinear),
		SortAlg:    c.Query("sort_alg"),
		SortField:  c.Query("sort_field", "nama"),
		Order:      c.Query("order", "asc"),
	}

	response, err := h.queries.ListFiltered(c.Context(), req)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to query students")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to query students")
	}

	return utils.SendSuccess(c, "students retrieved", response)
}

func (h *StudentHandler) list(c *fiber.Ctx) error {
	students, err := h.students.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list students")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list students")
	}

	return utils.SendSuccess(c, "students retrieved", students)
}

func (h *StudentHandler) createForm(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "create form", fiber.Map{
		"jurusan_list": models.Departments,
	})
}

func (h *StudentHandler) create(c *fiber.Ctx) error {
	var form dto.StudentForm
	if err := c.BodyParser(&form); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	student, err := h.students.Create(c.Context(), form)
	if err != nil {
		if reason, ok := validationReason(err); ok {
			return utils.SendError(c, fiber.StatusBadRequest, reason)
		}
		if errors.Is(err, service.ErrDuplicateStudent) {
			return utils.SendError(c, fiber.StatusConflict, "student already exists")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create student")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create student")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "student created", student)
}

func (h *StudentHandler) editForm(c *fiber.Ctx) error {
	student, err := h.students.Get(c.Context(), c.Params("nim"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch student")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch student")
	}

	return utils.SendSuccess(c, "edit form", fiber.Map{
		"mahasiswa":    student,
		"jurusan_list": models.Departments,
	})
}

func (h *StudentHandler) edit(c *fiber.Ctx) error {
	var form dto.StudentForm
	if err := c.BodyParser(&form); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	student, err := h.students.Update(c.Context(), c.Params("nim"), form)
	if err != nil {
		if reason, ok := validationReason(err); ok {
			return utils.SendError(c, fiber.StatusBadRequest, reason)
		}
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to update student")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update student")
	}

	return utils.SendSuccess(c, "student updated", student)
}

func (h *StudentHandler) delete(c *fiber.Ctx) error {
	nim := c.Params("nim")
	if err := h.students.Delete(c.Context(), nim); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete student")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete student")
	}

	return utils.SendSuccess(c, "student deleted", fiber.Map{"nim": nim})
}
