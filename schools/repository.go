package schools

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("school not found")
	ErrDuplicateCode = errors.New("school code already exists")
)

type Repository interface {
	Create(ctx context.Context, school NewSchool) (School, error)
	GetByID(ctx context.Context, id int64) (School, error)
	GetByCode(ctx context.Context, code string) (School, error)
	List(ctx context.Context) ([]School, error)
	UpdateSettings(ctx context.Context, id int64, patch SettingsPatch) (Settings, error)
	Delete(ctx context.Context, id int64) error
}
