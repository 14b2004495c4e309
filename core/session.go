package core

import (
	"github.com/golang-jwt/jwt/v5"
)

// Profile is the minimal identity shown in the console chrome.
type Profile struct {
	Name    string `json:"nombre"`
	Surname string `json:"apellido"`
	Role    string `json:"rol"`
}

// Session is the ambient session state: a bearer credential plus a display
// profile. It is populated at login, cleared at logout and read-only to the
// core. Gateway calls attach Token as-is, even when empty; the backend is
// the one that validates it.
type Session struct {
	Token   string
	Profile Profile
}

// NewSession builds a session from a bearer token. The profile is decoded
// from the token claims without signature verification: it is display-only,
// the backend re-checks the token on every call.
func NewSession(token string) Session {
	s := Session{Token: token}
	tok, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return s
	}
	if claims, ok := tok.Claims.(jwt.MapClaims); ok {
		s.Profile = Profile{
			Name:    claimString(claims, "nombre"),
			Surname: claimString(claims, "apellido"),
			Role:    claimString(claims, "rol"),
		}
	}
	return s
}

func (s Session) IsAnonymous() bool { return s.Token == "" }

// DisplayName renders "Nombre Apellido", falling back to a generic label
// when the profile is incomplete.
func (s Session) DisplayName() string {
	if s.Profile.Name != "" && s.Profile.Surname != "" {
		return s.Profile.Name + " " + s.Profile.Surname
	}
	return "Usuario"
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
