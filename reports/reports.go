// Package reports computes the roster reports coaches print: weight charts,
// average loss per practice and missed practices.
package reports

import (
	"errors"
	"sort"
	"strings"
	"time"

	"weighroom-backend/roster"
	"weighroom-backend/weights"
)

const (
	KindGraphs  = "graphs"
	KindAverage = "avg"
	KindMissing = "missing"
)

var ErrUnknownKind = errors.New("unknown report kind")

type Options struct {
	Sex string
	// IDs restricts the report to these wrestlers. Empty means all.
	IDs []int64
}

type WrestlerRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	WeightClass int    `json:"weightClass"`
}

type Point struct {
	Date   string   `json:"date"`
	Before *float64 `json:"before"`
	After  *float64 `json:"after"`
}

type Chart struct {
	Wrestler WrestlerRef `json:"wrestler"`
	Series   []Point     `json:"series"`
}

type Average struct {
	Wrestler WrestlerRef `json:"wrestler"`
	Loss     float64     `json:"loss"`
}

type Missing struct {
	Wrestler WrestlerRef `json:"wrestler"`
	Missed   int         `json:"missed"`
}

// Build runs one report kind over the school's roster and weight history.
func Build(kind string, wrestlers []roster.Wrestler, records []weights.Record, opts Options) (interface{}, error) {
	selected := Select(wrestlers, records, opts)
	byWrestler := GroupByWrestler(records)

	switch kind {
	case KindGraphs:
		out := make([]Chart, 0, len(selected))
		for _, w := range selected {
			out = append(out, Chart{Wrestler: ref(w), Series: ChartSeries(byWrestler[w.ID])})
		}
		return out, nil

	case KindAverage:
		out := make([]Average, 0, len(selected))
		for _, w := range selected {
			out = append(out, Average{Wrestler: ref(w), Loss: AverageLoss(byWrestler[w.ID])})
		}
		return out, nil

	case KindMissing:
		practices := PracticeDates(records)
		out := make([]Missing, 0, len(selected))
		for _, w := range selected {
			out = append(out, Missing{Wrestler: ref(w), Missed: MissedPractices(byWrestler[w.ID], practices)})
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Missed > out[j].Missed })
		return out, nil
	}
	return nil, ErrUnknownKind
}

// Select applies the sex and id filters, drops wrestlers with no records and
// orders the rest by lower-cased "first last".
func Select(wrestlers []roster.Wrestler, records []weights.Record, opts Options) []roster.Wrestler {
	hasRecords := make(map[int64]bool, len(wrestlers))
	for _, r := range records {
		hasRecords[r.WrestlerID] = true
	}

	var wanted map[int64]bool
	if len(opts.IDs) > 0 {
		wanted = make(map[int64]bool, len(opts.IDs))
		for _, id := range opts.IDs {
			wanted[id] = true
		}
	}

	sex := strings.TrimSpace(opts.Sex)
	out := make([]roster.Wrestler, 0, len(wrestlers))
	for _, w := range wrestlers {
		if sex != "" && !strings.EqualFold(sex, "all") && (w.Sex == nil || *w.Sex != sex) {
			continue
		}
		if wanted != nil && !wanted[w.ID] {
			continue
		}
		if !hasRecords[w.ID] {
			continue
		}
		out = append(out, w)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].FullName()) < strings.ToLower(out[j].FullName())
	})
	return out
}

func GroupByWrestler(records []weights.Record) map[int64][]weights.Record {
	out := make(map[int64][]weights.Record)
	for _, r := range records {
		out[r.WrestlerID] = append(out[r.WrestlerID], r)
	}
	for _, rs := range out {
		sort.SliceStable(rs, func(i, j int) bool { return rs[i].Date.Before(rs[j].Date) })
	}
	return out
}

// ChartSeries groups one wrestler's records per day. The last value of each
// type on a day wins.
func ChartSeries(records []weights.Record) []Point {
	days := pairByDay(records)
	out := make([]Point, 0, len(days))
	for _, d := range sortedKeys(days) {
		out = append(out, *days[d])
	}
	return out
}

// AverageLoss is the mean of before minus after over days with both values,
// or 0 when there is no such day.
func AverageLoss(records []weights.Record) float64 {
	var sum float64
	var n int
	for _, p := range pairByDay(records) {
		if p.Before != nil && p.After != nil {
			sum += *p.Before - *p.After
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// PracticeDates returns, ascending, the weekdays on which at least two distinct
// wrestlers logged a "before" weight.
func PracticeDates(records []weights.Record) []string {
	byDay := make(map[string]map[int64]bool)
	for _, r := range records {
		if r.Type != "before" {
			continue
		}
		if wd := r.Date.UTC().Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		day := r.Day()
		if byDay[day] == nil {
			byDay[day] = make(map[int64]bool)
		}
		byDay[day][r.WrestlerID] = true
	}

	out := make([]string, 0, len(byDay))
	for day, ids := range byDay {
		if len(ids) >= 2 {
			out = append(out, day)
		}
	}
	sort.Strings(out)
	return out
}

// MissedPractices counts practice dates without a "before" record for the
// wrestler.
func MissedPractices(records []weights.Record, practices []string) int {
	weighed := make(map[string]bool, len(records))
	for _, r := range records {
		if r.Type == "before" {
			weighed[r.Day()] = true
		}
	}
	missed := 0
	for _, d := range practices {
		if !weighed[d] {
			missed++
		}
	}
	return missed
}

func pairByDay(records []weights.Record) map[string]*Point {
	days := make(map[string]*Point)
	for _, r := range records {
		day := r.Day()
		p, ok := days[day]
		if !ok {
			p = &Point{Date: day}
			days[day] = p
		}
		v := r.Weight
		switch r.Type {
		case "before":
			p.Before = &v
		case "after":
			p.After = &v
		}
	}
	return days
}

func sortedKeys(m map[string]*Point) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func ref(w roster.Wrestler) WrestlerRef {
	return WrestlerRef{ID: w.ID, Name: w.FullName(), WeightClass: w.WeightClass}
}
