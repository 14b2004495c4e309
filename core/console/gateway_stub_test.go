package console

import (
	"context"
	"sync"

	"github.com/aulahq/console/core/catalog"
	"github.com/aulahq/console/storage/inmem"
)

// countingGateway wraps the in-memory gateway, recording list/mutation
// traffic and optionally failing calls, so tests can assert on exactly what
// reached the backend.
type countingGateway struct {
	*inmem.Gateway

	mu          sync.Mutex
	listCalls   map[catalog.EntityType]int
	createCalls int
	updateCalls int
	deleteCalls int

	listErr     map[catalog.EntityType]error
	mutationErr error
}

func newCountingGateway() *countingGateway {
	return &countingGateway{
		Gateway:   inmem.New(),
		listCalls: make(map[catalog.EntityType]int),
		listErr:   make(map[catalog.EntityType]error),
	}
}

func (g *countingGateway) lists(typ catalog.EntityType) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.listCalls[typ]
}

func (g *countingGateway) record(typ catalog.EntityType) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listCalls[typ]++
	return g.listErr[typ]
}

func (g *countingGateway) ListTeachers(ctx context.Context) ([]catalog.Teacher, error) {
	if err := g.record(catalog.EntityTeachers); err != nil {
		return nil, err
	}
	return g.Gateway.ListTeachers(ctx)
}

func (g *countingGateway) ListCourses(ctx context.Context) ([]catalog.Course, error) {
	if err := g.record(catalog.EntityCourses); err != nil {
		return nil, err
	}
	return g.Gateway.ListCourses(ctx)
}

func (g *countingGateway) ListGroups(ctx context.Context) ([]catalog.Group, error) {
	if err := g.record(catalog.EntityGroups); err != nil {
		return nil, err
	}
	return g.Gateway.ListGroups(ctx)
}

func (g *countingGateway) ListTerms(ctx context.Context) ([]catalog.Term, error) {
	if err := g.record(catalog.EntityTerms); err != nil {
		return nil, err
	}
	return g.Gateway.ListTerms(ctx)
}

func (g *countingGateway) ListAssignments(ctx context.Context) ([]catalog.Assignment, error) {
	if err := g.record(catalog.EntityAssignments); err != nil {
		return nil, err
	}
	return g.Gateway.ListAssignments(ctx)
}

func (g *countingGateway) Create(ctx context.Context, typ catalog.EntityType, payload interface{}) error {
	g.mu.Lock()
	g.createCalls++
	err := g.mutationErr
	g.mu.Unlock()
	if err != nil {
		return err
	}
	return g.Gateway.Create(ctx, typ, payload)
}

func (g *countingGateway) Update(ctx context.Context, typ catalog.EntityType, id string, payload interface{}) error {
	g.mu.Lock()
	g.updateCalls++
	err := g.mutationErr
	g.mu.Unlock()
	if err != nil {
		return err
	}
	return g.Gateway.Update(ctx, typ, id, payload)
}

func (g *countingGateway) Delete(ctx context.Context, typ catalog.EntityType, id string) error {
	g.mu.Lock()
	g.deleteCalls++
	err := g.mutationErr
	g.mu.Unlock()
	if err != nil {
		return err
	}
	return g.Gateway.Delete(ctx, typ, id)
}

func (g *countingGateway) failLists(typ catalog.EntityType, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listErr[typ] = err
}

func (g *countingGateway) failMutations(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mutationErr = err
}
