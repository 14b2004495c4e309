package console

import (
	"context"

	"github.com/aulahq/console/core"
	"github.com/aulahq/console/core/catalog"
)

// Screen bundles what one list-and-modal page owns: its own collection
// store, one mutation workflow, one deletion confirmation, the search term
// and the set of collections it cannot render without.
type Screen struct {
	Entity catalog.EntityType
	Store  *Store
	Form   *FormController
	Delete *DeleteController

	required []catalog.EntityType
	search   string
}

func newScreen(entity catalog.EntityType, gw catalog.Gateway, log core.Logger, required ...catalog.EntityType) *Screen {
	store := NewStore(gw, log)
	return &Screen{
		Entity:   entity,
		Store:    store,
		Form:     NewFormController(entity, gw, store, log, required...),
		Delete:   NewDeleteController(entity, gw, store, log, required...),
		required: required,
	}
}

// NewAssignmentsScreen renders joined data, so a mutation refreshes the
// assignment collection together with all four referenced ones.
func NewAssignmentsScreen(gw catalog.Gateway, log core.Logger) *Screen {
	return newScreen(catalog.EntityAssignments, gw, log,
		catalog.EntityAssignments,
		catalog.EntityTeachers,
		catalog.EntityCourses,
		catalog.EntityGroups,
		catalog.EntityTerms,
	)
}

func NewTermsScreen(gw catalog.Gateway, log core.Logger) *Screen {
	return newScreen(catalog.EntityTerms, gw, log, catalog.EntityTerms)
}

func NewCoursesScreen(gw catalog.Gateway, log core.Logger) *Screen {
	return newScreen(catalog.EntityCourses, gw, log, catalog.EntityCourses)
}

func NewGroupsScreen(gw catalog.Gateway, log core.Logger) *Screen {
	return newScreen(catalog.EntityGroups, gw, log, catalog.EntityGroups)
}

// Mount fetches every required collection concurrently; completions land in
// any order and the screen tolerates partially-resolved state throughout.
func (s *Screen) Mount(ctx context.Context) {
	s.Store.Refresh(ctx, s.required...)
}

// Ready reports whether all required collections have resolved at least
// once; until then the page shows its loading indicator.
func (s *Screen) Ready() bool {
	return s.Store.Ready(s.required...)
}

func (s *Screen) SetSearch(q string) { s.search = q }
func (s *Screen) Search() string     { return s.search }
