package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/noah-isme/simak-go-api/internal/models"
)

// StudentRepository provides whole-snapshot access to the student records store.
// Load returns the complete record list; Save replaces it wholesale.
type StudentRepository interface {
	Load(ctx context.Context) ([]models.Student, error)
	Save(ctx context.Context, students []models.Student) error
}

type jsonStudentRepository struct {
	path   string
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewJSONStudentRepository constructs a student repository backed by a single
// indented JSON document. A missing or unreadable document loads as empty.
func NewJSONStudentRepository(path string, logger zerolog.Logger) StudentRepository {
	return &jsonStudentRepository{
		path:   path,
		logger: logger.With().Str("component", "student_repository").Logger(),
	}
}

func (r *jsonStudentRepository) Load(ctx context.Context) ([]models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Student{}, nil
		}
		return nil, err
	}

	var students []models.Student
	if err := json.Unmarshal(raw, &students); err != nil {
		// Lenient recovery: a corrupt document is treated as empty.
		r.logger.Warn().Err(err).Str("path", r.path).Msg("student document unparsable, loading as empty")
		return []models.Student{}, nil
	}

	return students, nil
}

func (r *jsonStudentRepository) Save(ctx context.Context, students []models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if students == nil {
		students = []models.Student{}
	}

	raw, err := json.MarshalIndent(students, "", "    ")
	if err != nil {
		return err
	}

	return writeFileAtomic(r.path, raw)
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place so readers never observe a partial document.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}
