package catalog

// Placeholder shown when a referenced record is missing from its collection
// (e.g. a teacher deleted after the assignment was created). Joins degrade,
// they never fault.
const Placeholder = "—"

// ResolveTeacher maps a teacher code to the teacher's full name.
func ResolveTeacher(teachers []Teacher, code string) string {
	for _, t := range teachers {
		if t.Code == code {
			return t.FullName()
		}
	}
	return Placeholder
}

// ResolveCourse maps a composite course key to the course name. Matching is
// on the full (program id, code) pair; a code-only match against another
// program is not a match.
func ResolveCourse(courses []Course, key CourseKey) string {
	for _, c := range courses {
		if c.CourseKey == key {
			return c.Name
		}
	}
	return Placeholder
}

// ResolveGroup maps a group id to the group name.
func ResolveGroup(groups []Group, id int) string {
	for _, g := range groups {
		if g.ID == id {
			return g.Name
		}
	}
	return Placeholder
}

// ResolveTerm maps a term id to its "year - period" label.
func ResolveTerm(terms []Term, id int) string {
	for _, t := range terms {
		if t.ID == id {
			return t.Label()
		}
	}
	return Placeholder
}
