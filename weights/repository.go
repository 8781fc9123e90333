package weights

import (
	"context"
	"errors"
)

var ErrWrestlerNotFound = errors.New("wrestler not found")

type Repository interface {
	// Add resolves the wrestler by exact first and last name inside the school
	// (lowest id wins) and stores the record. ErrWrestlerNotFound means nothing
	// was written.
	Add(ctx context.Context, schoolID int64, rec NewRecord) (int64, error)
	// History lists the school's records ordered by date then id. A non-empty
	// nameFilter keeps records whose "first last" contains it, ignoring case.
	History(ctx context.Context, schoolID int64, nameFilter string) ([]Record, error)
}
