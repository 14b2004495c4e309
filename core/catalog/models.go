package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Entity types, named after the backend's path segments.
const (
	EntityTeachers    EntityType = "docentes"
	EntityCourses     EntityType = "materias"
	EntityGroups      EntityType = "grupos"
	EntityTerms       EntityType = "gestiones"
	EntityAssignments EntityType = "asignaciones"

	// managed by structurally identical screens outside this core
	EntityRoles       EntityType = "roles"
	EntityUsers       EntityType = "usuarios"
	EntityPermissions EntityType = "permisos"
	EntityPrograms    EntityType = "carreras"
)

type EntityType string

func (t EntityType) String() string { return string(t) }

// Operations an entity type may support.
const (
	OpList   Operation = "list"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

type Operation string

// Capability describes which operations the backend supports for an entity
// type. The UI shows the same affordances everywhere; generic controllers
// consult this instead of per-screen conditionals.
type Capability struct {
	List   bool
	Create bool
	Update bool
	Delete bool
}

func (c Capability) Supports(op Operation) bool {
	switch op {
	case OpList:
		return c.List
	case OpCreate:
		return c.Create
	case OpUpdate:
		return c.Update
	case OpDelete:
		return c.Delete
	}
	return false
}

var (
	fullCRUD = Capability{List: true, Create: true, Update: true, Delete: true}

	capabilities = map[EntityType]Capability{
		EntityTeachers: fullCRUD,
		EntityCourses:  fullCRUD,
		EntityGroups:   fullCRUD,
		EntityTerms:    fullCRUD,
		// assignments cannot be updated or deleted through this system
		EntityAssignments: {List: true, Create: true},
		EntityRoles:       fullCRUD,
		EntityUsers:       fullCRUD,
		EntityPermissions: fullCRUD,
		EntityPrograms:    fullCRUD,
	}
)

// Capabilities returns the capability descriptor for t. Unregistered types
// support nothing.
func Capabilities(t EntityType) Capability {
	return capabilities[t]
}

// Teacher is identified by its teacher code.
type Teacher struct {
	Code      string `json:"coddocente"`
	Name      string `json:"nombre"`
	Surname   string `json:"apellido"`
	Specialty string `json:"especialidad,omitempty"`
}

func (t Teacher) FullName() string { return t.Name + " " + t.Surname }

// CourseKey is the composite identity of a course. A course code alone is
// NOT unique across programs; every course lookup goes through this pair.
type CourseKey struct {
	ProgramID string `json:"idcarrera"`
	Code      string `json:"sigla"`
}

func (k CourseKey) IsZero() bool { return k == CourseKey{} }

// Option renders the key as the combined "idcarrera|sigla" select option.
func (k CourseKey) Option() string { return k.ProgramID + "|" + k.Code }

// ParseCourseOption splits a combined "idcarrera|sigla" option back into its
// key. The empty option maps to the zero key (selection cleared).
func ParseCourseOption(opt string) (CourseKey, error) {
	if opt == "" {
		return CourseKey{}, nil
	}
	parts := strings.SplitN(opt, "|", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return CourseKey{}, errors.Errorf("malformed course option %q", opt)
	}
	return CourseKey{ProgramID: parts[0], Code: parts[1]}, nil
}

type Course struct {
	CourseKey
	Name string `json:"nombre"`
}

type Group struct {
	ID   int    `json:"idgrupo"`
	Name string `json:"nombre"`
}

// Term periods offered by the backend.
var Periods = []string{"I", "II", "Verano", "Anual"}

type Term struct {
	ID        int      `json:"idgestion"`
	Year      int      `json:"anio"`
	Period    string   `json:"periodo"`
	StartDate DateOnly `json:"fechainicio"`
	EndDate   DateOnly `json:"fechafin"`
}

// Label renders the "2025 - I" display form used everywhere a term is shown.
func (t Term) Label() string { return fmt.Sprintf("%d - %s", t.Year, t.Period) }

// Assignment says: this teacher teaches this course, to this group, in this
// term. Its identity is the full five-field combination; the backend exposes
// no surrogate id for it.
type Assignment struct {
	TeacherCode string `json:"coddocente"`
	GroupID     int    `json:"idgrupo"`
	CourseKey
	TermID int `json:"idgestion"`
}

// Key is the combined row identity.
func (a Assignment) Key() string {
	return fmt.Sprintf("%s-%d-%s-%s-%d", a.TeacherCode, a.GroupID, a.ProgramID, a.Code, a.TermID)
}

const dateLayout = "2006-01-02"

// DateOnly is a day-granularity date. The backend serves both bare dates and
// RFC3339 timestamps; either unmarshals, keeping the calendar day only.
type DateOnly struct {
	time.Time
}

func Date(year int, month time.Month, day int) DateOnly {
	return DateOnly{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// ParseDate parses the form-layer "2006-01-02" representation.
func ParseDate(s string) (DateOnly, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return DateOnly{}, errors.Wrapf(err, "invalid date %q", s)
	}
	return DateOnly{t}, nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return errors.Wrapf(err, "invalid date %q", s)
	}
	y, m, day := t.Date()
	d.Time = time.Date(y, m, day, 0, 0, 0, 0, time.Local)
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d DateOnly) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}
