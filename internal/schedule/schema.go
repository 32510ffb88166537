package schedule

import (
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

// Column names every schedule file must carry.
const (
	ColID        = "id"
	ColDay       = "day"
	ColDate      = "date"
	ColStartTime = "start_time"
	ColEndTime   = "end_time"
	ColStage     = "stage"
	ColTitle     = "title"
	ColCategory  = "category"
)

// A digit is any Unicode decimal digit and the time separator is any single
// Unicode space, vertical tab and U+001C..U+001F included. RE2's \d and \s
// are ASCII-only, hence the explicit classes.
const (
	digit           = `\p{Nd}`
	space           = `[\t\n\v\f\r\x1c-\x1f\x{85}\p{Z}]`
	datePatternText = `^` + digit + `{4}-` + digit + `{2}-` + digit + `{2}$`
	timePatternText = `^` + digit + `{1,2}:` + digit + `{2}` + space + `(AM|PM)$`
)

// Digit counts and separators only; 2024-13-40 and 25:99 AM both match.
var (
	datePattern = regexp.MustCompile(datePatternText)
	timePattern = regexp.MustCompile(timePatternText)
)

// Schema is the fixed shape of a festival schedule file.
type Schema struct {
	Headers    []string
	Days       []string
	Stages     []string
	Categories []string
}

// Default returns the schema published schedules are checked against.
func Default() *Schema {
	return &Schema{
		Headers: []string{
			ColID, ColDay, ColDate, ColStartTime, ColEndTime, ColStage, ColTitle, ColCategory,
		},
		Days: []string{"Thursday", "Friday", "Saturday", "Sunday"},
		Stages: []string{
			"Eden Field Main Stage",
			"Eden Hall",
			"Mike Compton Dance Hall",
			"Big Barn",
			"Sunshine Stage",
			"Ship Deck",
			"Out & About",
			"Lounging",
			"Brookside",
			"U-LEAF",
		},
		Categories: []string{"Performance", "Activity"},
	}
}

// MissingHeaders returns the required headers absent from names, in schema
// order. Names are trimmed before comparison; case matters.
func (s *Schema) MissingHeaders(names []string) []string {
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[trim(n)] = true
	}
	var missing []string
	for _, h := range s.Headers {
		if !present[h] {
			missing = append(missing, h)
		}
	}
	return missing
}

func (s *Schema) ValidDay(v string) bool { return slices.Contains(s.Days, v) }
func (s *Schema) ValidStage(v string) bool { return slices.Contains(s.Stages, v) }
func (s *Schema) ValidCategory(v string) bool { return slices.Contains(s.Categories, v) }

// ValidDate reports whether v has the YYYY-MM-DD digit layout.
func ValidDate(v string) bool { return datePattern.MatchString(v) }

// ValidTime reports whether v looks like "9:30 AM".
func ValidTime(v string) bool { return timePattern.MatchString(v) }

type columnDoc struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Required    bool     `yaml:"required"`
	Unique      bool     `yaml:"unique,omitempty"`
	Pattern     string   `yaml:"pattern,omitempty"`
	Allowed     []string `yaml:"allowed,omitempty"`
}

type schemaDoc struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Columns     []columnDoc `yaml:"columns"`
}

// YAML describes the schema as a YAML document.
func (s *Schema) YAML() ([]byte, error) {
	doc := schemaDoc{
		Title: "schedule.csv",
		Description: "Festival schedule, one event per row. The first row names the columns; " +
			"extra columns are ignored and every value is trimmed before it is checked.",
		Columns: []columnDoc{
			{Name: ColID, Description: "Event identifier. Must be non-empty and unique within the file.", Required: true, Unique: true},
			{Name: ColDay, Description: "Festival day the event runs on.", Required: true, Allowed: s.Days},
			{Name: ColDate, Description: "Calendar date as YYYY-MM-DD. Only the digit layout is checked.", Required: true, Pattern: datePatternText},
			{Name: ColStartTime, Description: "12-hour start time, e.g. \"9:30 AM\". Only the layout is checked.", Required: true, Pattern: timePatternText},
			{Name: ColEndTime, Description: "12-hour end time, e.g. \"11:00 PM\". Not compared with start_time.", Required: true, Pattern: timePatternText},
			{Name: ColStage, Description: "Venue the event takes place at.", Required: true, Allowed: s.Stages},
			{Name: ColTitle, Description: "Event title shown to visitors. Must be non-empty.", Required: true},
			{Name: ColCategory, Description: "Kind of event.", Required: true, Allowed: s.Categories},
		},
	}
	return yaml.Marshal(doc)
}
