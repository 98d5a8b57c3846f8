package annotations

import "github.com/veltran/tsbridge/internal/models"

// ControllerAnnotation is the reserved name marking a struct as a route group
const ControllerAnnotation = "Controller"

// BindingRole represents the semantic role of a parameter-binding annotation
type BindingRole int

const (
	BindingParam BindingRole = iota // binds one path parameter by name
	BindingParams                   // binds all path parameters via a struct type
	BindingBody                     // marks the request-body parameter
	BindingQuery                    // marks the query-parameters parameter
)

// verbRoles maps verb-annotation names to HTTP verbs. Names are case-sensitive
// and fixed; a lookup miss means "this method is not a route", not an error.
var verbRoles = map[string]models.Verb{
	"Get":    models.VerbGet,
	"Post":   models.VerbPost,
	"Put":    models.VerbPut,
	"Delete": models.VerbDelete,
	"Patch":  models.VerbPatch,
}

// bindingRoles maps binding-annotation names to their roles
var bindingRoles = map[string]BindingRole{
	"Param":       BindingParam,
	"Params":      BindingParams,
	"Body":        BindingBody,
	"QueryParams": BindingQuery,
}

// VerbRole looks up the verb selected by an annotation name
func VerbRole(name string) (models.Verb, bool) {
	verb, ok := verbRoles[name]
	return verb, ok
}

// Binding looks up the binding role of an annotation name
func Binding(name string) (BindingRole, bool) {
	role, ok := bindingRoles[name]
	return role, ok
}

// Recognized reports whether a name belongs to the fixed annotation vocabulary
func Recognized(name string) bool {
	if name == ControllerAnnotation {
		return true
	}
	if _, ok := verbRoles[name]; ok {
		return true
	}
	_, ok := bindingRoles[name]
	return ok
}
