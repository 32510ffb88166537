package schedule

import (
	"fmt"
	"strings"
)

// Violation is a single rule failure. Row is zero for header violations.
type Violation struct {
	Row     int
	Field   string
	Message string
}

func (v Violation) String() string {
	if v.Row == 0 {
		return v.Message
	}
	return fmt.Sprintf("Row %d: %s", v.Row, v.Message)
}

// Report is the outcome of one validation run.
type Report struct {
	HeaderOK   bool
	Rows       int
	Violations []Violation
}

// Valid reports whether the header check passed and no row failed.
func (r Report) Valid() bool {
	return r.HeaderOK && len(r.Violations) == 0
}

// Messages returns the violations in the order they were found.
func (r Report) Messages() []string {
	out := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		out[i] = v.String()
	}
	return out
}

// Validator checks one schedule. Call Header once, then Row for each data
// record in file order. A Validator must not be reused across files.
type Validator struct {
	schema *Schema
	seen   map[string]bool
	report Report
}

func NewValidator(s *Schema) *Validator {
	return &Validator{schema: s, seen: make(map[string]bool)}
}

// Header checks the header names. When any required column is missing it
// records one violation naming all of them and subsequent rows are ignored.
func (v *Validator) Header(names []string) bool {
	missing := v.schema.MissingHeaders(names)
	if len(missing) > 0 {
		v.report.Violations = append(v.report.Violations, Violation{
			Message: "Missing required headers: " + strings.Join(missing, ", "),
		})
		return false
	}
	v.report.HeaderOK = true
	return true
}

// Row applies every field rule to r. No rule stops the others.
func (v *Validator) Row(r Row) {
	if !v.report.HeaderOK {
		return
	}
	v.report.Rows++

	id := r.Value(ColID)
	switch {
	case id == "":
		v.fail(r, ColID, "empty id")
	case v.seen[id]:
		v.fail(r, ColID, fmt.Sprintf("duplicate id '%s'", id))
	default:
		v.seen[id] = true
	}

	if day := r.Value(ColDay); !v.schema.ValidDay(day) {
		v.fail(r, ColDay, fmt.Sprintf("invalid day '%s'", day))
	}
	if date := r.Value(ColDate); !ValidDate(date) {
		v.fail(r, ColDate, fmt.Sprintf("invalid date '%s' (expected YYYY-MM-DD)", date))
	}
	for _, col := range []string{ColStartTime, ColEndTime} {
		if t := r.Value(col); !ValidTime(t) {
			v.fail(r, col, fmt.Sprintf("bad %s '%s'", col, t))
		}
	}
	if stage := r.Value(ColStage); !v.schema.ValidStage(stage) {
		v.fail(r, ColStage, fmt.Sprintf("invalid stage '%s'", stage))
	}
	if r.Value(ColTitle) == "" {
		v.fail(r, ColTitle, "empty title")
	}
	if cat := r.Value(ColCategory); !v.schema.ValidCategory(cat) {
		v.fail(r, ColCategory, fmt.Sprintf("invalid category '%s'", cat))
	}
}

func (v *Validator) fail(r Row, field, msg string) {
	v.report.Violations = append(v.report.Violations, Violation{Row: r.Number, Field: field, Message: msg})
}

// Report returns what has been found so far.
func (v *Validator) Report() Report {
	return v.report
}

// Validate checks header and rows against the default schema and returns the
// verdict with one message per violation.
func Validate(header []string, rows []Row) (bool, []string) {
	v := NewValidator(Default())
	if v.Header(header) {
		for _, r := range rows {
			v.Row(r)
		}
	}
	rep := v.Report()
	return rep.Valid(), rep.Messages()
}
