package inmem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aulahq/console/core/catalog"
)

func TestCreateListRoundTrip(t *testing.T) {
	gw := New()
	ctx := context.Background()

	assert.NoError(t, gw.Create(ctx, catalog.EntityTeachers, &catalog.NewTeacher{
		Code: "D001", Name: "Ana", Surname: "Rojas",
	}))
	assert.NoError(t, gw.Create(ctx, catalog.EntityTerms, &catalog.NewTerm{
		Year: 2025, Period: "I", StartDate: "2025-01-01", EndDate: "2025-06-30",
	}))
	assert.NoError(t, gw.Create(ctx, catalog.EntityGroups, &catalog.NewGroup{Name: "A"}))

	teachers, _ := gw.ListTeachers(ctx)
	assert.Len(t, teachers, 1)

	terms, _ := gw.ListTerms(ctx)
	if assert.Len(t, terms, 1) {
		assert.Equal(t, 1, terms[0].ID)
		assert.Equal(t, "2025-01-01", terms[0].StartDate.String())
	}

	groups, _ := gw.ListGroups(ctx)
	if assert.Len(t, groups, 1) {
		assert.Equal(t, 1, groups[0].ID)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	gw := New()
	ctx := context.Background()
	gw.SeedGroups(catalog.Group{ID: 5, Name: "A"})
	gw.SeedCourses(catalog.Course{CourseKey: catalog.CourseKey{ProgramID: "PID1", Code: "MAT101"}, Name: "Cálculo"})

	assert.NoError(t, gw.Update(ctx, catalog.EntityGroups, "5", &catalog.UpdateGroup{Name: "B"}))
	groups, _ := gw.ListGroups(ctx)
	assert.Equal(t, "B", groups[0].Name)

	// course ids on the wire are the combined option
	assert.NoError(t, gw.Update(ctx, catalog.EntityCourses, "PID1|MAT101", &catalog.UpdateCourse{Name: "Cálculo I"}))
	courses, _ := gw.ListCourses(ctx)
	assert.Equal(t, "Cálculo I", courses[0].Name)

	assert.Error(t, gw.Update(ctx, catalog.EntityGroups, "99", &catalog.UpdateGroup{Name: "X"}))

	assert.NoError(t, gw.Delete(ctx, catalog.EntityGroups, "5"))
	groups, _ = gw.ListGroups(ctx)
	assert.Empty(t, groups)

	// next created group id continues past the deleted seed
	assert.NoError(t, gw.Create(ctx, catalog.EntityGroups, &catalog.NewGroup{Name: "C"}))
	groups, _ = gw.ListGroups(ctx)
	assert.Equal(t, 6, groups[0].ID)
}
