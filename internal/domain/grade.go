package domain

import (
	"fmt"
	"strings"
)

// GradeLevel is the audience tier a lesson or quiz is written for.
// The string value is the human-readable label that is interpolated into
// prompts and shown in selectors.
type GradeLevel string

// Supported grade levels, in display order.
const (
	GradeKindergarten GradeLevel = "Kindergarten"
	GradeElementary   GradeLevel = "Elementary School (1-5)"
	GradeMiddle       GradeLevel = "Middle School (6-8)"
	GradeHigh         GradeLevel = "High School (9-12)"
	GradeUniversity   GradeLevel = "University"
)

var gradeLevels = []GradeLevel{
	GradeKindergarten,
	GradeElementary,
	GradeMiddle,
	GradeHigh,
	GradeUniversity,
}

var gradeCodes = map[GradeLevel]string{
	GradeKindergarten: "kindergarten",
	GradeElementary:   "elementary",
	GradeMiddle:       "middle",
	GradeHigh:         "high",
	GradeUniversity:   "university",
}

// GradeLevels returns every supported grade level in display order.
func GradeLevels() []GradeLevel {
	out := make([]GradeLevel, len(gradeLevels))
	copy(out, gradeLevels)
	return out
}

// Code returns the short machine-friendly identifier for the grade level,
// or an empty string if the grade level is not recognised.
func (g GradeLevel) Code() string {
	return gradeCodes[g]
}

// Label returns the display label.
func (g GradeLevel) Label() string {
	return string(g)
}

// Valid reports whether g is one of the supported grade levels.
func (g GradeLevel) Valid() bool {
	_, ok := gradeCodes[g]
	return ok
}

// ParseGradeLevel resolves either a label ("Middle School (6-8)") or a code
// ("middle") to a GradeLevel. Matching is case-insensitive and ignores
// surrounding whitespace.
func ParseGradeLevel(s string) (GradeLevel, error) {
	needle := strings.TrimSpace(s)
	for _, g := range gradeLevels {
		if strings.EqualFold(needle, string(g)) || strings.EqualFold(needle, gradeCodes[g]) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGradeLevel, s)
}
