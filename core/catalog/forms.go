package catalog

import (
	"github.com/aulahq/console/core"
)

// Form payloads submitted by the mutation workflow. All constraints here are
// form-layer: they block submission before any backend call is made. The
// JSON tags double as both the wire format and the field names reported in
// validation errors.

// NewTeacher contains information needed to register a Teacher.
type NewTeacher struct {
	Code      string `json:"coddocente" validate:"required"`
	Name      string `json:"nombre" validate:"required"`
	Surname   string `json:"apellido" validate:"required"`
	Specialty string `json:"especialidad"`
}

func (f *NewTeacher) Validate() error {
	f.Code = core.CleanString(f.Code)
	f.Name = core.CleanString(f.Name)
	f.Surname = core.CleanString(f.Surname)
	f.Specialty = core.CleanString(f.Specialty)
	return core.ValidateStruct(f)
}

// UpdateTeacher edits a Teacher's attributes; the code is the URL id and
// cannot change.
type UpdateTeacher struct {
	Name      string `json:"nombre" validate:"required"`
	Surname   string `json:"apellido" validate:"required"`
	Specialty string `json:"especialidad"`
}

func UpdateTeacherFrom(t Teacher) *UpdateTeacher {
	return &UpdateTeacher{Name: t.Name, Surname: t.Surname, Specialty: t.Specialty}
}

func (f *UpdateTeacher) Validate() error {
	f.Name = core.CleanString(f.Name)
	f.Surname = core.CleanString(f.Surname)
	f.Specialty = core.CleanString(f.Specialty)
	return core.ValidateStruct(f)
}

// NewCourse creates a Course under a program. (idcarrera, sigla) is the
// course's identity and must both be provided.
type NewCourse struct {
	ProgramID string `json:"idcarrera" validate:"required"`
	Code      string `json:"sigla" validate:"required"`
	Name      string `json:"nombre" validate:"required"`
}

func (f *NewCourse) Validate() error {
	f.ProgramID = core.CleanString(f.ProgramID)
	f.Code = core.CleanString(f.Code)
	f.Name = core.CleanString(f.Name)
	return core.ValidateStruct(f)
}

// UpdateCourse renames a Course; its composite key is immutable.
type UpdateCourse struct {
	Name string `json:"nombre" validate:"required"`
}

func UpdateCourseFrom(c Course) *UpdateCourse { return &UpdateCourse{Name: c.Name} }

func (f *UpdateCourse) Validate() error {
	f.Name = core.CleanString(f.Name)
	return core.ValidateStruct(f)
}

type NewGroup struct {
	Name string `json:"nombre" validate:"required"`
}

func (f *NewGroup) Validate() error {
	f.Name = core.CleanString(f.Name)
	return core.ValidateStruct(f)
}

type UpdateGroup struct {
	Name string `json:"nombre" validate:"required"`
}

func UpdateGroupFrom(g Group) *UpdateGroup { return &UpdateGroup{Name: g.Name} }

func (f *UpdateGroup) Validate() error {
	f.Name = core.CleanString(f.Name)
	return core.ValidateStruct(f)
}

// NewTerm creates an academic term. Start/end ordering is deliberately not
// checked here; the backend accepts inverted ranges today and the console
// mirrors that.
type NewTerm struct {
	Year      int    `json:"anio" validate:"required,min=2000,max=2100"`
	Period    string `json:"periodo" validate:"required,oneof=I II Verano Anual"`
	StartDate string `json:"fechainicio" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"fechafin" validate:"required,datetime=2006-01-02"`
}

func (f *NewTerm) Validate() error {
	f.Period = core.CleanString(f.Period)
	f.StartDate = core.CleanString(f.StartDate)
	f.EndDate = core.CleanString(f.EndDate)
	return core.ValidateStruct(f)
}

type UpdateTerm struct {
	Year      int    `json:"anio" validate:"required,min=2000,max=2100"`
	Period    string `json:"periodo" validate:"required,oneof=I II Verano Anual"`
	StartDate string `json:"fechainicio" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"fechafin" validate:"required,datetime=2006-01-02"`
}

func UpdateTermFrom(t Term) *UpdateTerm {
	return &UpdateTerm{
		Year:      t.Year,
		Period:    t.Period,
		StartDate: t.StartDate.String(),
		EndDate:   t.EndDate.String(),
	}
}

func (f *UpdateTerm) Validate() error {
	f.Period = core.CleanString(f.Period)
	f.StartDate = core.CleanString(f.StartDate)
	f.EndDate = core.CleanString(f.EndDate)
	return core.ValidateStruct(f)
}

// NewAssignment creates a teacher-to-course assignment. There is no update
// form: assignments are create/list only.
type NewAssignment struct {
	TeacherCode string `json:"coddocente" validate:"required"`
	GroupID     int    `json:"idgrupo" validate:"required"`
	ProgramID   string `json:"idcarrera" validate:"required"`
	Code        string `json:"sigla" validate:"required"`
	TermID      int    `json:"idgestion" validate:"required"`
}

// SetCourseOption fills the program id and course code from a combined
// "idcarrera|sigla" option. The two fields always move together: a code
// alone does not determine a program. The empty option clears both.
func (f *NewAssignment) SetCourseOption(opt string) error {
	key, err := ParseCourseOption(opt)
	if err != nil {
		return err
	}
	f.ProgramID = key.ProgramID
	f.Code = key.Code
	return nil
}

func (f *NewAssignment) ClearCourseOption() {
	f.ProgramID = ""
	f.Code = ""
}

func (f *NewAssignment) Validate() error {
	f.TeacherCode = core.CleanString(f.TeacherCode)
	return core.ValidateStruct(f)
}
