package catalog

import "context"

// Gateway is the remote resource boundary: the backend owns every entity,
// the console only reads collections and submits mutations. Implementations
// live in storage/.
type Gateway interface {
	ListTeachers(ctx context.Context) ([]Teacher, error)
	ListCourses(ctx context.Context) ([]Course, error)
	ListGroups(ctx context.Context) ([]Group, error)
	ListTerms(ctx context.Context) ([]Term, error)
	ListAssignments(ctx context.Context) ([]Assignment, error)

	Create(ctx context.Context, typ EntityType, payload interface{}) error
	Update(ctx context.Context, typ EntityType, id string, payload interface{}) error
	Delete(ctx context.Context, typ EntityType, id string) error
}
