package extractor

import "github.com/veltran/tsbridge/internal/models"

// The extractor walks declarations through these capability interfaces rather
// than a concrete AST, so any front end that can present annotated classes,
// methods and parameters can feed it.

// Unit is one source unit (a file) containing class-like declarations
type Unit interface {
	Name() string
	Classes() []Class
}

// Class is a class-like declaration carrying annotations and methods
type Class interface {
	Name() string
	Annotations() []Annotation
	Methods() []Method
}

// Method is a method-like declaration with parameters and a return type
type Method interface {
	Name() string
	Annotations() []Annotation
	Parameters() []Parameter
	ReturnType() TypeRef
}

// Parameter is one declared method parameter
type Parameter interface {
	Name() string
	Annotations() []Annotation
	Type() TypeRef
}

// Annotation is a named tag with positional literal arguments, read
// structurally from the declaration it is attached to
type Annotation interface {
	Name() string
	Args() []string
}

// TypeRef is a resolvable static type. UnwrapAsync removes exactly one level
// of the front end's asynchronous-result wrapper and is a no-op on anything
// else; Property looks up a named member of a structured type.
type TypeRef interface {
	Expr() models.TypeExpr
	IsAsync() bool
	UnwrapAsync() TypeRef
	IsVoid() bool
	Property(name string) (TypeRef, bool)
}
