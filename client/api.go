package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type Wrestler struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Name        string  `json:"name"`
	WeightClass int     `json:"weightClass"`
	Sex         *string `json:"sex"`
}

type NewWrestler struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	WeightClass int     `json:"weightClass"`
	Sex         *string `json:"sex,omitempty"`
}

// WrestlerUpdate sends only the non-nil fields.
type WrestlerUpdate struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	WeightClass *int    `json:"weightClass,omitempty"`
	Sex         *string `json:"sex,omitempty"`
}

type ListFilter struct {
	Sex   string
	Query string
	Sort  string
}

type WeightEntry struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Date      string  `json:"date"`
	Weight    float64 `json:"weight"`
	Type      string  `json:"type"`
}

type WeightRecord struct {
	ID         int64   `json:"id"`
	WrestlerID int64   `json:"wrestlerId"`
	Name       string  `json:"name"`
	Date       string  `json:"date"`
	Weight     float64 `json:"weight"`
	Type       string  `json:"type"`
}

type SettingsUpdate struct {
	Name           *string `json:"name,omitempty"`
	PrimaryColor   *string `json:"primary_color,omitempty"`
	SecondaryColor *string `json:"secondary_color,omitempty"`
	Password       *string `json:"password,omitempty"`
}

type Settings struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
}

func (c *Client) Wrestlers(ctx context.Context, f ListFilter) ([]Wrestler, error) {
	params := url.Values{}
	if f.Sex != "" {
		params.Set("sex", f.Sex)
	}
	if f.Query != "" {
		params.Set("q", f.Query)
	}
	if f.Sort != "" {
		params.Set("sort", f.Sort)
	}

	var out struct {
		Wrestlers []Wrestler `json:"wrestlers"`
	}
	if err := c.call(ctx, http.MethodGet, withQuery("/api/wrestlers", params), nil, &out); err != nil {
		return nil, err
	}
	return out.Wrestlers, nil
}

func (c *Client) AddWrestler(ctx context.Context, w NewWrestler) (Wrestler, error) {
	var out struct {
		Wrestler Wrestler `json:"wrestler"`
	}
	if err := c.call(ctx, http.MethodPost, "/api/wrestlers", w, &out); err != nil {
		return Wrestler{}, err
	}
	return out.Wrestler, nil
}

// ImportWrestlers posts a block pasted from a spreadsheet and returns how many
// wrestlers were added.
func (c *Client) ImportWrestlers(ctx context.Context, rawText string) (int, error) {
	var out struct {
		Imported int `json:"imported"`
	}
	if err := c.call(ctx, http.MethodPost, "/api/wrestlers/import", map[string]string{"rawText": rawText}, &out); err != nil {
		return 0, err
	}
	return out.Imported, nil
}

func (c *Client) UpdateWrestler(ctx context.Context, id int64, u WrestlerUpdate) (Wrestler, error) {
	var out struct {
		Wrestler Wrestler `json:"wrestler"`
	}
	if err := c.call(ctx, http.MethodPatch, fmt.Sprintf("/api/wrestlers/%d", id), u, &out); err != nil {
		return Wrestler{}, err
	}
	return out.Wrestler, nil
}

func (c *Client) DeleteWrestler(ctx context.Context, id int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/wrestlers/%d", id), nil, nil)
}

func (c *Client) AddWeight(ctx context.Context, e WeightEntry) error {
	return c.call(ctx, http.MethodPost, "/api/weights", e, nil)
}

func (c *Client) WeightHistory(ctx context.Context, nameFilter string) ([]WeightRecord, error) {
	params := url.Values{}
	if nameFilter != "" {
		params.Set("wrestler", nameFilter)
	}

	var out struct {
		Weights []WeightRecord `json:"weights"`
	}
	if err := c.call(ctx, http.MethodGet, withQuery("/api/weights", params), nil, &out); err != nil {
		return nil, err
	}
	return out.Weights, nil
}

// UpdateSettings changes the school's settings and keeps the session's school
// view in step.
func (c *Client) UpdateSettings(ctx context.Context, u SettingsUpdate) (Settings, error) {
	var out struct {
		School Settings `json:"school"`
	}
	if err := c.call(ctx, http.MethodPatch, "/api/school/settings", u, &out); err != nil {
		return Settings{}, err
	}

	c.mu.Lock()
	if c.session != nil {
		next := *c.session
		next.School.Name = out.School.Name
		next.School.PrimaryColor = out.School.PrimaryColor
		next.School.SecondaryColor = out.School.SecondaryColor
		c.session = &next
	}
	c.mu.Unlock()
	return out.School, nil
}

// Report fetches one report kind ("graphs", "avg" or "missing"). out receives
// the whole {kind, results} body.
func (c *Client) Report(ctx context.Context, kind, sex string, ids []int64, out interface{}) error {
	params := url.Values{}
	if sex != "" {
		params.Set("sex", sex)
	}
	if len(ids) > 0 {
		parts := make([]string, 0, len(ids))
		for _, id := range ids {
			parts = append(parts, strconv.FormatInt(id, 10))
		}
		params.Set("ids", strings.Join(parts, ","))
	}
	return c.call(ctx, http.MethodGet, withQuery("/api/reports/"+url.PathEscape(kind), params), nil, out)
}
