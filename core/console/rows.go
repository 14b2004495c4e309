package console

import (
	"strconv"
	"strings"
	"time"

	"github.com/aulahq/console/core/catalog"
)

// AssignmentRow is one assignment joined against its four sibling
// collections. Search and rendering work on these resolved fields, never on
// the raw foreign keys.
type AssignmentRow struct {
	Assignment catalog.Assignment
	Teacher    string
	CourseCode string
	Course     string
	Group      string
	Term       string
}

// AssignmentRows projects every cached assignment through the resolvers.
// Collections still loading read as empty, so rows degrade to placeholders
// instead of blocking.
func (s *Store) AssignmentRows() []AssignmentRow {
	var (
		assignments = s.Assignments()
		teachers    = s.Teachers()
		courses     = s.Courses()
		groups      = s.Groups()
		terms       = s.Terms()
	)

	rows := make([]AssignmentRow, 0, len(assignments))
	for _, a := range assignments {
		code := a.Code
		if code == "" {
			code = catalog.Placeholder
		}
		rows = append(rows, AssignmentRow{
			Assignment: a,
			Teacher:    catalog.ResolveTeacher(teachers, a.TeacherCode),
			CourseCode: code,
			Course:     catalog.ResolveCourse(courses, a.CourseKey),
			Group:      catalog.ResolveGroup(groups, a.GroupID),
			Term:       catalog.ResolveTerm(terms, a.TermID),
		})
	}
	return rows
}

// FilterAssignmentRows narrows rows to those whose resolved teacher or
// course name contains q, case-insensitively. Pure and idempotent; re-run
// on every keystroke.
func FilterAssignmentRows(rows []AssignmentRow, q string) []AssignmentRow {
	q = strings.ToLower(q)
	out := make([]AssignmentRow, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Teacher), q) ||
			strings.Contains(strings.ToLower(r.Course), q) {
			out = append(out, r)
		}
	}
	return out
}

// TermRow is a term plus its derived status at render time.
type TermRow struct {
	Term   catalog.Term
	Status catalog.TermStatus
}

// TermRows classifies every term against the given clock.
func TermRows(terms []catalog.Term, now time.Time) []TermRow {
	rows := make([]TermRow, 0, len(terms))
	for _, t := range terms {
		rows = append(rows, TermRow{Term: t, Status: t.StatusAt(now)})
	}
	return rows
}

// FilterTerms matches on the year's digits or the period name.
func FilterTerms(terms []catalog.Term, q string) []catalog.Term {
	lq := strings.ToLower(q)
	out := make([]catalog.Term, 0, len(terms))
	for _, t := range terms {
		if strings.Contains(strconv.Itoa(t.Year), q) ||
			strings.Contains(strings.ToLower(t.Period), lq) {
			out = append(out, t)
		}
	}
	return out
}

// FilterCourses matches on code or name.
func FilterCourses(courses []catalog.Course, q string) []catalog.Course {
	lq := strings.ToLower(q)
	out := make([]catalog.Course, 0, len(courses))
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Code), lq) ||
			strings.Contains(strings.ToLower(c.Name), lq) {
			out = append(out, c)
		}
	}
	return out
}

// FilterGroups matches on name.
func FilterGroups(groups []catalog.Group, q string) []catalog.Group {
	lq := strings.ToLower(q)
	out := make([]catalog.Group, 0, len(groups))
	for _, g := range groups {
		if strings.Contains(strings.ToLower(g.Name), lq) {
			out = append(out, g)
		}
	}
	return out
}
