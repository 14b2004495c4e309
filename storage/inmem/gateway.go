// Package inmem is an in-memory catalog.Gateway for tests and offline runs.
// It mimics the backend's observable behavior, not its rules: capability
// checks stay in the console controllers.
package inmem

import (
	"context"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/aulahq/console/core/catalog"
)

type Gateway struct {
	mu          sync.RWMutex
	teachers    []catalog.Teacher
	courses     []catalog.Course
	groups      []catalog.Group
	terms       []catalog.Term
	assignments []catalog.Assignment

	groupPK int
	termPK  int
}

var _ catalog.Gateway = (*Gateway)(nil)

func New() *Gateway {
	return &Gateway{}
}

// Seed helpers for fixtures.

func (g *Gateway) SeedTeachers(ts ...catalog.Teacher) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.teachers = append(g.teachers, ts...)
}

func (g *Gateway) SeedCourses(cs ...catalog.Course) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.courses = append(g.courses, cs...)
}

func (g *Gateway) SeedGroups(gs ...catalog.Group) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, gr := range gs {
		if gr.ID > g.groupPK {
			g.groupPK = gr.ID
		}
	}
	g.groups = append(g.groups, gs...)
}

func (g *Gateway) SeedTerms(ts ...catalog.Term) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, t := range ts {
		if t.ID > g.termPK {
			g.termPK = t.ID
		}
	}
	g.terms = append(g.terms, ts...)
}

func (g *Gateway) SeedAssignments(as ...catalog.Assignment) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.assignments = append(g.assignments, as...)
}

func (g *Gateway) ListTeachers(context.Context) ([]catalog.Teacher, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]catalog.Teacher(nil), g.teachers...), nil
}

func (g *Gateway) ListCourses(context.Context) ([]catalog.Course, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]catalog.Course(nil), g.courses...), nil
}

func (g *Gateway) ListGroups(context.Context) ([]catalog.Group, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]catalog.Group(nil), g.groups...), nil
}

func (g *Gateway) ListTerms(context.Context) ([]catalog.Term, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]catalog.Term(nil), g.terms...), nil
}

func (g *Gateway) ListAssignments(context.Context) ([]catalog.Assignment, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]catalog.Assignment(nil), g.assignments...), nil
}

func (g *Gateway) Create(_ context.Context, typ catalog.EntityType, payload interface{}) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch p := payload.(type) {
	case *catalog.NewTeacher:
		g.teachers = append(g.teachers, catalog.Teacher{
			Code: p.Code, Name: p.Name, Surname: p.Surname, Specialty: p.Specialty,
		})
	case *catalog.NewCourse:
		g.courses = append(g.courses, catalog.Course{
			CourseKey: catalog.CourseKey{ProgramID: p.ProgramID, Code: p.Code},
			Name:      p.Name,
		})
	case *catalog.NewGroup:
		g.groupPK++
		g.groups = append(g.groups, catalog.Group{ID: g.groupPK, Name: p.Name})
	case *catalog.NewTerm:
		start, err := catalog.ParseDate(p.StartDate)
		if err != nil {
			return err
		}
		end, err := catalog.ParseDate(p.EndDate)
		if err != nil {
			return err
		}
		g.termPK++
		g.terms = append(g.terms, catalog.Term{
			ID: g.termPK, Year: p.Year, Period: p.Period, StartDate: start, EndDate: end,
		})
	case *catalog.NewAssignment:
		g.assignments = append(g.assignments, catalog.Assignment{
			TeacherCode: p.TeacherCode,
			GroupID:     p.GroupID,
			CourseKey:   catalog.CourseKey{ProgramID: p.ProgramID, Code: p.Code},
			TermID:      p.TermID,
		})
	default:
		return errors.Errorf("inmem: unsupported %s payload %T", typ, payload)
	}
	return nil
}

func (g *Gateway) Update(_ context.Context, typ catalog.EntityType, id string, payload interface{}) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch typ {
	case catalog.EntityTeachers:
		p, ok := payload.(*catalog.UpdateTeacher)
		if !ok {
			return errors.Errorf("inmem: unsupported %s payload %T", typ, payload)
		}
		for i, t := range g.teachers {
			if t.Code == id {
				g.teachers[i].Name = p.Name
				g.teachers[i].Surname = p.Surname
				g.teachers[i].Specialty = p.Specialty
				return nil
			}
		}
	case catalog.EntityCourses:
		p, ok := payload.(*catalog.UpdateCourse)
		if !ok {
			return errors.Errorf("inmem: unsupported %s payload %T", typ, payload)
		}
		key, err := catalog.ParseCourseOption(id)
		if err != nil {
			return err
		}
		for i, c := range g.courses {
			if c.CourseKey == key {
				g.courses[i].Name = p.Name
				return nil
			}
		}
	case catalog.EntityGroups:
		p, ok := payload.(*catalog.UpdateGroup)
		if !ok {
			return errors.Errorf("inmem: unsupported %s payload %T", typ, payload)
		}
		gid, err := strconv.Atoi(id)
		if err != nil {
			return err
		}
		for i, gr := range g.groups {
			if gr.ID == gid {
				g.groups[i].Name = p.Name
				return nil
			}
		}
	case catalog.EntityTerms:
		p, ok := payload.(*catalog.UpdateTerm)
		if !ok {
			return errors.Errorf("inmem: unsupported %s payload %T", typ, payload)
		}
		tid, err := strconv.Atoi(id)
		if err != nil {
			return err
		}
		start, err := catalog.ParseDate(p.StartDate)
		if err != nil {
			return err
		}
		end, err := catalog.ParseDate(p.EndDate)
		if err != nil {
			return err
		}
		for i, t := range g.terms {
			if t.ID == tid {
				g.terms[i].Year = p.Year
				g.terms[i].Period = p.Period
				g.terms[i].StartDate = start
				g.terms[i].EndDate = end
				return nil
			}
		}
	default:
		return errors.Errorf("inmem: %s does not support update", typ)
	}
	return errors.Errorf("inmem: %s %q not found", typ, id)
}

func (g *Gateway) Delete(_ context.Context, typ catalog.EntityType, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch typ {
	case catalog.EntityTeachers:
		for i, t := range g.teachers {
			if t.Code == id {
				g.teachers = append(g.teachers[:i], g.teachers[i+1:]...)
				return nil
			}
		}
	case catalog.EntityCourses:
		key, err := catalog.ParseCourseOption(id)
		if err != nil {
			return err
		}
		for i, c := range g.courses {
			if c.CourseKey == key {
				g.courses = append(g.courses[:i], g.courses[i+1:]...)
				return nil
			}
		}
	case catalog.EntityGroups:
		gid, err := strconv.Atoi(id)
		if err != nil {
			return err
		}
		for i, gr := range g.groups {
			if gr.ID == gid {
				g.groups = append(g.groups[:i], g.groups[i+1:]...)
				return nil
			}
		}
	case catalog.EntityTerms:
		tid, err := strconv.Atoi(id)
		if err != nil {
			return err
		}
		for i, t := range g.terms {
			if t.ID == tid {
				g.terms = append(g.terms[:i], g.terms[i+1:]...)
				return nil
			}
		}
	default:
		return errors.Errorf("inmem: %s does not support delete", typ)
	}
	return errors.Errorf("inmem: %s %q not found", typ, id)
}
