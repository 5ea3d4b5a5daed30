package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// UserRepository provides whole-snapshot access to the username → password
// hash mapping.
type UserRepository interface {
	Load(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, users map[string]string) error
}

type jsonUserRepository struct {
	path   string
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewJSONUserRepository constructs a user repository backed by a single JSON
// object document. A missing or unreadable document loads as empty.
func NewJSONUserRepository(path string, logger zerolog.Logger) UserRepository {
	return &jsonUserRepository{
		path:   path,
		logger: logger.With().Str("component", "user_repository").Logger(),
	}
}

func (r *jsonUserRepository) Load(ctx context.Context) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	var users map[string]string
	if err := json.Unmarshal(raw, &users); err != nil {
		r.logger.Warn().Err(err).Str("path", r.path).Msg("user document unparsable, loading as empty")
		return map[string]string{}, nil
	}
	if users == nil {
		users = map[string]string{}
	}

	return users, nil
}

func (r *jsonUserRepository) Save(ctx context.Context, users map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if users == nil {
		users = map[string]string{}
	}

	raw, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return err
	}

	return writeFileAtomic(r.path, raw)
}
