package weights

import (
	"encoding/json"
	"time"
)

const DateLayout = "2006-01-02"

type Record struct {
	ID         int64     `db:"id"`
	WrestlerID int64     `db:"wrestler_id"`
	Name       string    `db:"name"`
	Date       time.Time `db:"date"`
	Weight     float64   `db:"weight"`
	Type       string    `db:"type"`
}

// Day returns the record's calendar date as YYYY-MM-DD.
func (r Record) Day() string {
	return r.Date.UTC().Format(DateLayout)
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         int64   `json:"id"`
		WrestlerID int64   `json:"wrestlerId"`
		Name       string  `json:"name"`
		Date       string  `json:"date"`
		Weight     float64 `json:"weight"`
		Type       string  `json:"type"`
	}{r.ID, r.WrestlerID, r.Name, r.Day(), r.Weight, r.Type})
}

// NewRecord identifies its wrestler by name; the store resolves the id.
type NewRecord struct {
	FirstName string
	LastName  string
	Date      time.Time
	Weight    float64
	Type      string
}
