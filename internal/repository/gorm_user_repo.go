package repository

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/noah-isme/simak-go-api/internal/models"
)

type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository constructs a user repository backed by an embedded
// database with the same Load/Save contract as the JSON document store.
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Load(ctx context.Context) (map[string]string, error) {
	var accounts []models.User
	if err := r.db.WithContext(ctx).Find(&accounts).Error; err != nil {
		return nil, err
	}

	users := make(map[string]string, len(accounts))
	for _, account := range accounts {
		users[account.Username] = account.PasswordHash
	}

	return users, nil
}

func (r *gormUserRepository) Save(ctx context.Context, users map[string]string) error {
	usernames := make([]string, 0, len(users))
	for username := range users {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{}).Error; err != nil {
			return err
		}

		if len(usernames) == 0 {
			return nil
		}

		accounts := make([]models.User, 0, len(usernames))
		for _, username := range usernames {
			accounts = append(accounts, models.User{Username: username, PasswordHash: users[username]})
		}

		return tx.Create(&accounts).Error
	})
}
