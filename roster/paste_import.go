package roster

import (
	"errors"
	"strconv"
	"strings"
)

// ParsePaste turns a block copied out of a spreadsheet into wrestlers. Lines are
// tab separated (first, last[, weight class[, sex]]) or, failing that, split on
// whitespace (first last [weight class] [sex]). Blank lines and header-like lines
// are skipped. Every bad line yields one message and the rest keep parsing.
func ParsePaste(raw string) ([]NewWrestler, []string) {
	lines := strings.Split(raw, "\n")
	out := make([]NewWrestler, 0, len(lines))
	errs := make([]string, 0)

	for _, ln := range lines {
		line := strings.TrimSpace(ln)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		if strings.Contains(lower, "first") && strings.Contains(lower, "last") {
			continue
		}

		var parts []string
		if strings.Contains(line, "\t") {
			parts = trimAll(strings.Split(line, "\t"))
		} else {
			parts = strings.Fields(line)
		}

		if len(parts) < 2 || len(parts) > 4 {
			errs = append(errs, `Could not parse line (expected first, last, weight class, sex): "`+line+`"`)
			continue
		}

		w := NewWrestler{FirstName: parts[0], LastName: parts[1]}
		if w.FirstName == "" || w.LastName == "" {
			errs = append(errs, `Missing name in line: "`+line+`"`)
			continue
		}

		switch len(parts) {
		case 3:
			wc, err := ParseWeightClass(parts[2])
			switch {
			case err == nil:
				w.WeightClass = wc
			case errors.Is(err, strconv.ErrRange):
				errs = append(errs, `Invalid weight class in line: "`+line+`"`)
				continue
			case parts[2] != "":
				w.Sex = &parts[2]
			}
		case 4:
			if parts[2] != "" {
				wc, err := ParseWeightClass(parts[2])
				if err != nil {
					errs = append(errs, `Invalid weight class in line: "`+line+`"`)
					continue
				}
				w.WeightClass = wc
			}
			if parts[3] != "" {
				w.Sex = &parts[3]
			}
		}

		out = append(out, w)
	}

	return out, errs
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
