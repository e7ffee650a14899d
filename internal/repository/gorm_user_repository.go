package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"propal/internal/model"
)

type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository builds a GORM-backed repository. WriteAll swaps the
// whole table inside one transaction so the store keeps its whole-list shape,
// and rows are numbered by list position so ReadAll returns them in order.
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) ReadAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("seq").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return nonNil(users), nil
}

func (r *gormUserRepository) WriteAll(ctx context.Context, users []model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.User{}).Error; err != nil {
			return fmt.Errorf("clear users: %w", err)
		}
		if len(users) == 0 {
			return nil
		}
		rows := make([]model.User, len(users))
		for i, u := range users {
			u.Seq = uint64(i + 1)
			rows[i] = u
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert users: %w", err)
		}
		return nil
	})
}
