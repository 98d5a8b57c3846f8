package models

import "fmt"

// TypeKind represents the structural kind of a TypeExpr
type TypeKind int

const (
	TypeVoid TypeKind = iota
	TypePrimitive
	TypeNamed
	TypeArray
	TypeMap
	TypePointer
)

// PrimitiveKind represents a primitive category after front-end normalization
type PrimitiveKind int

const (
	PrimBool PrimitiveKind = iota
	PrimInt
	PrimFloat
	PrimString
	PrimTime
	PrimAny
)

// TypeExpr is a structural type representation carried by the IR. It is a pure
// value tree with no references back into any front-end AST, so extracted
// metadata stays independent of how the source was loaded.
type TypeExpr struct {
	Kind      TypeKind
	Primitive PrimitiveKind // valid when Kind == TypePrimitive
	Name      string        // valid when Kind == TypeNamed
	Elem      *TypeExpr     // valid for TypeArray, TypeMap, TypePointer
	Key       *TypeExpr     // valid for TypeMap
}

// VoidType returns the "no value" type
func VoidType() TypeExpr {
	return TypeExpr{Kind: TypeVoid}
}

// Primitive returns a primitive type expression
func Primitive(kind PrimitiveKind) TypeExpr {
	return TypeExpr{Kind: TypePrimitive, Primitive: kind}
}

// Named returns a reference to a named declared type
func Named(name string) TypeExpr {
	return TypeExpr{Kind: TypeNamed, Name: name}
}

// ArrayOf returns a sequence type over elem
func ArrayOf(elem TypeExpr) TypeExpr {
	return TypeExpr{Kind: TypeArray, Elem: &elem}
}

// MapOf returns a map type from key to elem
func MapOf(key, elem TypeExpr) TypeExpr {
	return TypeExpr{Kind: TypeMap, Key: &key, Elem: &elem}
}

// PointerTo returns an optional/nullable wrapper around elem
func PointerTo(elem TypeExpr) TypeExpr {
	return TypeExpr{Kind: TypePointer, Elem: &elem}
}

// IsVoid reports whether the expression denotes "no value"
func (t TypeExpr) IsVoid() bool {
	return t.Kind == TypeVoid
}

// String returns a debug representation of the type expression
func (t TypeExpr) String() string {
	switch t.Kind {
	case TypeVoid:
		return "void"
	case TypePrimitive:
		switch t.Primitive {
		case PrimBool:
			return "bool"
		case PrimInt:
			return "int"
		case PrimFloat:
			return "float"
		case PrimString:
			return "string"
		case PrimTime:
			return "time"
		default:
			return "any"
		}
	case TypeNamed:
		return t.Name
	case TypeArray:
		return "[]" + t.Elem.String()
	case TypeMap:
		return fmt.Sprintf("map[%s]%s", t.Key.String(), t.Elem.String())
	case TypePointer:
		return "*" + t.Elem.String()
	default:
		return "unknown"
	}
}
