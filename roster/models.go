package roster

import (
	"math"
	"strconv"
)

type Wrestler struct {
	ID          int64   `db:"id" json:"id"`
	SchoolID    int64   `db:"school_id" json:"-"`
	FirstName   string  `db:"first_name" json:"firstName"`
	LastName    string  `db:"last_name" json:"lastName"`
	WeightClass int     `db:"weight_class" json:"weightClass"`
	Sex         *string `db:"sex" json:"sex"`
}

func (w Wrestler) FullName() string {
	return w.FirstName + " " + w.LastName
}

type NewWrestler struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	WeightClass int     `json:"weightClass"`
	Sex         *string `json:"sex,omitempty"`
}

// WrestlerPatch carries the fields an update may change. Nil means "leave as is".
type WrestlerPatch struct {
	FirstName   *string
	LastName    *string
	WeightClass *int
	Sex         *string
}

func (p WrestlerPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.WeightClass == nil && p.Sex == nil
}

// ParseWeightClass parses a weight class that fits the INTEGER column.
func ParseWeightClass(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// ValidWeightClass reports whether v fits the INTEGER column.
func ValidWeightClass(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
