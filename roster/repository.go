package roster

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("wrestler not found")

// Repository scopes every operation to one school. Id-addressed mutations only
// touch wrestlers owned by that school.
type Repository interface {
	Create(ctx context.Context, schoolID int64, w NewWrestler) (Wrestler, error)
	CreateMany(ctx context.Context, schoolID int64, ws []NewWrestler) (int, error)
	List(ctx context.Context, schoolID int64) ([]Wrestler, error)
	Update(ctx context.Context, schoolID, id int64, patch WrestlerPatch) (Wrestler, error)
	Delete(ctx context.Context, schoolID, id int64) error
}
