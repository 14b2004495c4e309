package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aulahq/console/core"
	"github.com/aulahq/console/core/catalog"
)

var allEntities = []catalog.EntityType{
	catalog.EntityTeachers,
	catalog.EntityCourses,
	catalog.EntityGroups,
	catalog.EntityTerms,
	catalog.EntityAssignments,
}

func TestStoreRefresh(t *testing.T) {
	gw := newCountingGateway()
	gw.SeedTeachers(catalog.Teacher{Code: "D001", Name: "Ana", Surname: "Rojas"})
	gw.SeedGroups(catalog.Group{ID: 1, Name: "A"})

	store := NewStore(gw, core.NopLogger{})

	assert.True(t, store.Loading(catalog.EntityTeachers))
	assert.False(t, store.Ready(allEntities...))
	assert.Empty(t, store.Teachers())

	store.Refresh(context.Background(), allEntities...)

	assert.True(t, store.Ready(allEntities...))
	assert.False(t, store.Loading(catalog.EntityTeachers))
	assert.Len(t, store.Teachers(), 1)
	assert.Len(t, store.Groups(), 1)
	assert.Empty(t, store.Courses())

	// each slot fetched exactly once
	for _, typ := range allEntities {
		assert.Equal(t, 1, gw.lists(typ), "lists(%s)", typ)
	}
}

func TestStoreFailedListDegradesToEmpty(t *testing.T) {
	gw := newCountingGateway()
	gw.SeedTeachers(catalog.Teacher{Code: "D001", Name: "Ana", Surname: "Rojas"})
	gw.failLists(catalog.EntityTeachers, core.NewAuthError("GET /api/docentes", 401))

	store := NewStore(gw, core.NopLogger{})
	store.Refresh(context.Background(), catalog.EntityTeachers)

	// the slot resolves empty instead of propagating the failure
	assert.Empty(t, store.Teachers())
	assert.False(t, store.Loading(catalog.EntityTeachers))
	assert.True(t, store.Ready(catalog.EntityTeachers))
}

func TestStorePartialReadiness(t *testing.T) {
	gw := newCountingGateway()
	store := NewStore(gw, core.NopLogger{})

	store.Refresh(context.Background(), catalog.EntityTerms)

	assert.True(t, store.Ready(catalog.EntityTerms))
	assert.False(t, store.Ready(catalog.EntityTerms, catalog.EntityAssignments))
	// unresolved slots still read as empty, never nil faults
	assert.NotNil(t, store.Assignments())
	assert.Empty(t, store.Assignments())
}

func TestStoreAccessorsNeverNil(t *testing.T) {
	gw := newCountingGateway()
	gw.failLists(catalog.EntityTeachers, core.NewTransportError("GET /api/docentes", 500, nil))
	store := NewStore(gw, core.NopLogger{})

	check := func(when string) {
		assert.NotNil(t, store.Teachers(), "%s: Teachers", when)
		assert.NotNil(t, store.Courses(), "%s: Courses", when)
		assert.NotNil(t, store.Groups(), "%s: Groups", when)
		assert.NotNil(t, store.Terms(), "%s: Terms", when)
		assert.NotNil(t, store.Assignments(), "%s: Assignments", when)
	}

	check("before any refresh")

	store.Refresh(context.Background(), catalog.EntityTerms)
	check("while only terms resolved")

	store.Refresh(context.Background(), catalog.EntityTeachers)
	check("after a failed fetch")
}

// gatedGateway serves ListTeachers lazily: each call parks until the test
// feeds it a response, so completion order is fully controlled.
type gatedGateway struct {
	catalog.Gateway
	calls chan chan []catalog.Teacher
}

func (g *gatedGateway) ListTeachers(context.Context) ([]catalog.Teacher, error) {
	reply := make(chan []catalog.Teacher)
	g.calls <- reply
	return <-reply, nil
}

func TestStoreStaleRefreshDiscarded(t *testing.T) {
	gw := &gatedGateway{Gateway: newCountingGateway(), calls: make(chan chan []catalog.Teacher, 2)}
	store := NewStore(gw, core.NopLogger{})

	done := make(chan struct{}, 2)
	refresh := func() {
		store.refresh(context.Background(), catalog.EntityTeachers)
		done <- struct{}{}
	}

	go refresh()
	first := <-gw.calls
	go refresh()
	second := <-gw.calls

	// the later-issued refresh completes first and wins
	second <- []catalog.Teacher{{Code: "D002", Name: "Luis", Surname: "Paz"}}
	<-done
	first <- []catalog.Teacher{{Code: "D001", Name: "Ana", Surname: "Rojas"}}
	<-done

	teachers := store.Teachers()
	if assert.Len(t, teachers, 1) {
		assert.Equal(t, "D002", teachers[0].Code)
	}
}
