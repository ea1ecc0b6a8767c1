// Package syllabus holds the static EAMCET intermediate syllabus and helpers
// for scoping it to a student's year. The chapter tables follow the official
// TS/AP MPC syllabus and are the single source of truth for quiz and plan
// generation.
package syllabus

import "encoding/json"

// Stream identifies an intermediate stream.
type Stream string

// StreamMPC is the Mathematics-Physics-Chemistry stream, the only stream
// EAMCET engineering covers.
const StreamMPC Stream = "MPC"

// Year identifies the student's intermediate year. Anything other than the
// two known values is treated as a dropper repeating the full syllabus.
type Year string

const (
	YearFirst  Year = "1st Year"
	YearSecond Year = "2nd Year"
)

// Subject names as they appear in quiz questions and plan tasks.
const (
	SubjectMathematics = "Mathematics"
	SubjectPhysics     = "Physics"
	SubjectChemistry   = "Chemistry"
)

// Subjects returns the three MPC subjects in canonical order.
func Subjects() []string {
	return []string{SubjectMathematics, SubjectPhysics, SubjectChemistry}
}

// YearSyllabus is one year's chapter table. Mathematics is split into the
// official paper groups (Maths IA/IB or IIA/IIB); Physics and Chemistry are
// flat chapter lists.
type YearSyllabus struct {
	Mathematics map[string][]string `json:"Mathematics"`
	Physics     []string            `json:"Physics"`
	Chemistry   []string            `json:"Chemistry"`
}

// ForYear returns the syllabus table for one stream and year.
func ForYear(stream Stream, year Year) (YearSyllabus, bool) {
	years, ok := tables[stream]
	if !ok {
		return YearSyllabus{}, false
	}
	ys, ok := years[year]
	return ys, ok
}

// SubjectChapters returns the flat chapter list for one subject in one year.
// Mathematics paper groups are flattened in group order.
func SubjectChapters(stream Stream, year Year, subject string) []string {
	ys, ok := ForYear(stream, year)
	if !ok {
		return nil
	}
	switch subject {
	case SubjectMathematics:
		return flattenMaths(ys.Mathematics)
	case SubjectPhysics:
		return ys.Physics
	case SubjectChemistry:
		return ys.Chemistry
	}
	return nil
}

// ScopedChapters returns every chapter a student of the given year may be
// examined on. 1st Year students see only 1st year chapters; everyone else
// gets both years.
func ScopedChapters(stream Stream, year Year) []string {
	if year == YearFirst {
		return allChapters(stream, YearFirst)
	}
	return append(allChapters(stream, YearFirst), allChapters(stream, YearSecond)...)
}

// Context serializes the in-scope syllabus as JSON for inclusion in prompts.
// 1st and 2nd year students get their own year's table; droppers get both
// years combined.
func Context(stream Stream, year Year) string {
	switch year {
	case YearFirst, YearSecond:
		ys, ok := ForYear(stream, year)
		if !ok {
			return "{}"
		}
		return mustJSON(ys)
	default:
		first, _ := ForYear(stream, YearFirst)
		second, _ := ForYear(stream, YearSecond)
		return mustJSON(map[string]YearSyllabus{
			"1st_Year": first,
			"2nd_Year": second,
		})
	}
}

func allChapters(stream Stream, year Year) []string {
	var out []string
	for _, subject := range Subjects() {
		out = append(out, SubjectChapters(stream, year, subject)...)
	}
	return out
}

// flattenMaths concatenates maths paper groups in their fixed order.
func flattenMaths(groups map[string][]string) []string {
	var out []string
	for _, name := range mathsGroupOrder {
		out = append(out, groups[name]...)
	}
	return out
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		// The tables are static; marshalling them cannot fail.
		panic(err)
	}
	return string(b)
}
