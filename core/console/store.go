package console

import (
	"context"
	"sync"

	"github.com/aulahq/console/core"
	"github.com/aulahq/console/core/catalog"
)

// Store is the per-screen collection cache. Each entity type gets one slot,
// replaced wholesale by refreshes; nothing is ever patched in place. A slot
// that has never resolved reads as empty and loading; a failed fetch
// degrades it to empty and loaded, so joins downstream never fault.
type Store struct {
	gw  catalog.Gateway
	log core.Logger

	mu          sync.RWMutex
	slots       map[catalog.EntityType]*slot
	teachers    []catalog.Teacher
	courses     []catalog.Course
	groups      []catalog.Group
	terms       []catalog.Term
	assignments []catalog.Assignment
}

// slot tracks refresh bookkeeping for one entity type. Refreshes may
// complete out of order; a completion only applies if nothing issued later
// has applied already, so stale responses never clobber newer data.
type slot struct {
	loaded  bool
	issued  uint64
	applied uint64
}

func NewStore(gw catalog.Gateway, log core.Logger) *Store {
	return &Store{
		gw:  gw,
		log: log,
		slots: map[catalog.EntityType]*slot{
			catalog.EntityTeachers:    {},
			catalog.EntityCourses:     {},
			catalog.EntityGroups:      {},
			catalog.EntityTerms:       {},
			catalog.EntityAssignments: {},
		},
	}
}

// Refresh re-fetches the given collections concurrently and waits for all of
// them. Fetch failures are swallowed here: the slot empties, the loading
// flag clears and the cause goes to the diagnostic log only.
func (s *Store) Refresh(ctx context.Context, types ...catalog.EntityType) {
	var wg sync.WaitGroup
	for _, typ := range types {
		wg.Add(1)
		go func(typ catalog.EntityType) {
			defer wg.Done()
			s.refresh(ctx, typ)
		}(typ)
	}
	wg.Wait()
}

func (s *Store) refresh(ctx context.Context, typ catalog.EntityType) {
	s.mu.Lock()
	sl, ok := s.slots[typ]
	if !ok {
		s.mu.Unlock()
		s.log.Warn("store: refresh of unknown entity type", typ)
		return
	}
	sl.issued++
	seq := sl.issued
	s.mu.Unlock()

	var (
		teachers    []catalog.Teacher
		courses     []catalog.Course
		groups      []catalog.Group
		terms       []catalog.Term
		assignments []catalog.Assignment
		err         error
	)
	switch typ {
	case catalog.EntityTeachers:
		teachers, err = s.gw.ListTeachers(ctx)
	case catalog.EntityCourses:
		courses, err = s.gw.ListCourses(ctx)
	case catalog.EntityGroups:
		groups, err = s.gw.ListGroups(ctx)
	case catalog.EntityTerms:
		terms, err = s.gw.ListTerms(ctx)
	case catalog.EntityAssignments:
		assignments, err = s.gw.ListAssignments(ctx)
	}
	if err != nil {
		s.log.Debug("store: list failed, slot degrades to empty", typ, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < sl.applied {
		// a later refresh already landed; drop this one
		s.log.Debug("store: stale refresh discarded", typ)
		return
	}
	switch typ {
	case catalog.EntityTeachers:
		s.teachers = teachers
	case catalog.EntityCourses:
		s.courses = courses
	case catalog.EntityGroups:
		s.groups = groups
	case catalog.EntityTerms:
		s.terms = terms
	case catalog.EntityAssignments:
		s.assignments = assignments
	}
	sl.applied = seq
	sl.loaded = true
}

// Loading reports whether typ has not resolved at least once yet.
func (s *Store) Loading(typ catalog.EntityType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sl, ok := s.slots[typ]
	return ok && !sl.loaded
}

// Ready reports whether every given collection has resolved at least once.
// Partial readiness is the normal case while a screen mounts.
func (s *Store) Ready(types ...catalog.EntityType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, typ := range types {
		if sl, ok := s.slots[typ]; ok && !sl.loaded {
			return false
		}
	}
	return true
}

// Accessors return copies so callers can range freely while refreshes land.
// An unresolved or degraded slot still yields an empty slice, never nil.

func (s *Store) Teachers() []catalog.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]catalog.Teacher, 0, len(s.teachers)), s.teachers...)
}

func (s *Store) Courses() []catalog.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]catalog.Course, 0, len(s.courses)), s.courses...)
}

func (s *Store) Groups() []catalog.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]catalog.Group, 0, len(s.groups)), s.groups...)
}

func (s *Store) Terms() []catalog.Term {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]catalog.Term, 0, len(s.terms)), s.terms...)
}

func (s *Store) Assignments() []catalog.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]catalog.Assignment, 0, len(s.assignments)), s.assignments...)
}
