package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCapabilities(t *testing.T) {
	tests := []struct {
		entity EntityType
		op     Operation
		want   bool
	}{
		{EntityTerms, OpCreate, true},
		{EntityTerms, OpUpdate, true},
		{EntityTerms, OpDelete, true},
		{EntityAssignments, OpList, true},
		{EntityAssignments, OpCreate, true},
		{EntityAssignments, OpUpdate, false},
		{EntityAssignments, OpDelete, false},
		{EntityType("unknown"), OpList, false},
	}
	for _, tt := range tests {
		if got := Capabilities(tt.entity).Supports(tt.op); got != tt.want {
			t.Errorf("Capabilities(%s).Supports(%s) = %v, want %v", tt.entity, tt.op, got, tt.want)
		}
	}
}

func TestParseCourseOption(t *testing.T) {
	key, err := ParseCourseOption("PID1|MAT101")
	assert.NoError(t, err)
	assert.Equal(t, CourseKey{ProgramID: "PID1", Code: "MAT101"}, key)

	key, err = ParseCourseOption("")
	assert.NoError(t, err)
	assert.True(t, key.IsZero())

	for _, opt := range []string{"MAT101", "|MAT101", "PID1|"} {
		_, err = ParseCourseOption(opt)
		assert.Error(t, err, "option %q", opt)
	}

	assert.Equal(t, "PID1|MAT101", CourseKey{"PID1", "MAT101"}.Option())
}

func TestDateOnlyUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    DateOnly
		wantErr bool
	}{
		{name: "bare date", in: `"2025-01-01"`, want: Date(2025, time.January, 1)},
		{name: "rfc3339", in: `"2025-01-01T00:00:00.000Z"`, want: Date(2025, time.January, 1)},
		{name: "null", in: `null`, want: DateOnly{}},
		{name: "empty", in: `""`, want: DateOnly{}},
		{name: "garbage", in: `"yesterday"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DateOnly
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want.String(), d.String())
		})
	}
}

func TestDateOnlyMarshal(t *testing.T) {
	b, err := json.Marshal(Date(2025, time.June, 30))
	assert.NoError(t, err)
	assert.Equal(t, `"2025-06-30"`, string(b))

	b, err = json.Marshal(DateOnly{})
	assert.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestAssignmentSerialization(t *testing.T) {
	a := Assignment{
		TeacherCode: "D001",
		GroupID:     2,
		CourseKey:   CourseKey{ProgramID: "PID1", Code: "MAT101"},
		TermID:      7,
	}

	b, err := json.Marshal(a)
	assert.NoError(t, err)
	// the composite key serializes flat, exactly as the backend sends it
	assert.JSONEq(t, `{"coddocente":"D001","idgrupo":2,"idcarrera":"PID1","sigla":"MAT101","idgestion":7}`, string(b))

	assert.Equal(t, "D001-2-PID1-MAT101-7", a.Key())
}
