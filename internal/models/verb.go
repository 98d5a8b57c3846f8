package models

// Verb represents the HTTP verb of a route
type Verb int

const (
	VerbGet Verb = iota
	VerbPost
	VerbPut
	VerbDelete
	VerbPatch
)

// String returns the wire-format method name for the verb
func (v Verb) String() string {
	switch v {
	case VerbGet:
		return "GET"
	case VerbPost:
		return "POST"
	case VerbPut:
		return "PUT"
	case VerbDelete:
		return "DELETE"
	case VerbPatch:
		return "PATCH"
	default:
		return "UNKNOWN"
	}
}
