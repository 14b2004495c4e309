package catalog

import "time"

// TermStatus is derived presentation state, never supplied by the backend.
type TermStatus int

const (
	TermUpcoming TermStatus = iota
	TermActive
	TermFinished
)

func (s TermStatus) String() string {
	switch s {
	case TermUpcoming:
		return "Próxima"
	case TermActive:
		return "Activa"
	case TermFinished:
		return "Finalizada"
	}
	return "?"
}

// StatusAt classifies the term against the given clock at day granularity.
// Both boundary days count as Active. Pure: recompute on every render,
// "today" moves.
func (t Term) StatusAt(now time.Time) TermStatus {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.Local)

	if today.Before(t.StartDate.Time) {
		return TermUpcoming
	}
	if today.After(t.EndDate.Time) {
		return TermFinished
	}
	return TermActive
}
