package entity

// ColorScheme is the UI theme preference stored in a plain cookie.
type ColorScheme string

const (
	SchemeDark   ColorScheme = "DARK"
	SchemeLight  ColorScheme = "LIGHT"
	SchemeSystem ColorScheme = "SYSTEM"
)

// Valid reports whether the value is one of the known schemes.
func (s ColorScheme) Valid() bool {
	switch s {
	case SchemeDark, SchemeLight, SchemeSystem:
		return true
	}

	return false
}
