package source

import (
	"go/ast"
	"reflect"
	"strings"

	"github.com/veltran/tsbridge/internal/extractor"
	"github.com/veltran/tsbridge/internal/models"
)

// typeResolver maps ast type expressions to models.TypeExpr and resolves
// struct properties for group bindings. Struct declarations are indexed
// across the whole package so a Params type may live in a sibling file.
type typeResolver struct {
	structs map[string]*ast.StructType
}

func newTypeResolver(files []*ast.File) *typeResolver {
	r := &typeResolver{structs: make(map[string]*ast.StructType)}
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				if structType, ok := typeSpec.Type.(*ast.StructType); ok {
					r.structs[typeSpec.Name.Name] = structType
				}
			}
		}
	}
	return r
}

// resolve adapts an ast type expression into a TypeRef
func (r *typeResolver) resolve(expr ast.Expr) *typeRef {
	return &typeRef{expr: r.typeExpr(expr), resolver: r}
}

// typeExpr normalizes a Go type into the IR's structural representation.
// Unrepresentable types degrade to the any primitive rather than failing;
// the client side types them as unknown.
func (r *typeResolver) typeExpr(expr ast.Expr) models.TypeExpr {
	switch t := expr.(type) {
	case *ast.Ident:
		return identExpr(t.Name)
	case *ast.SelectorExpr:
		if ident, ok := t.X.(*ast.Ident); ok && ident.Name == "time" && t.Sel.Name == "Time" {
			return models.Primitive(models.PrimTime)
		}
		return models.Named(t.Sel.Name)
	case *ast.StarExpr:
		return models.PointerTo(r.typeExpr(t.X))
	case *ast.ArrayType:
		return models.ArrayOf(r.typeExpr(t.Elt))
	case *ast.MapType:
		return models.MapOf(r.typeExpr(t.Key), r.typeExpr(t.Value))
	case *ast.InterfaceType:
		return models.Primitive(models.PrimAny)
	default:
		return models.Primitive(models.PrimAny)
	}
}

func identExpr(name string) models.TypeExpr {
	switch name {
	case "bool":
		return models.Primitive(models.PrimBool)
	case "string":
		return models.Primitive(models.PrimString)
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"byte", "rune":
		return models.Primitive(models.PrimInt)
	case "float32", "float64":
		return models.Primitive(models.PrimFloat)
	case "any":
		return models.Primitive(models.PrimAny)
	default:
		return models.Named(name)
	}
}

// property looks up a struct member for a group binding: the json tag is
// authoritative when present, otherwise field names match case-insensitively
// so a path variable "id" binds a Go field "ID".
func (r *typeResolver) property(typ models.TypeExpr, name string) (models.TypeExpr, bool) {
	if typ.Kind == models.TypePointer {
		typ = *typ.Elem
	}
	if typ.Kind != models.TypeNamed {
		return models.TypeExpr{}, false
	}
	structType, ok := r.structs[typ.Name]
	if !ok {
		return models.TypeExpr{}, false
	}

	for _, field := range structType.Fields.List {
		// a named json tag is authoritative, including json:"-" which never
		// names a path variable; json:",opts" leaves the field name in charge
		if tagName, tagged := jsonFieldName(field); tagged && tagName != "" {
			if tagName == name {
				return r.typeExpr(field.Type), true
			}
			continue
		}
		for _, fieldName := range field.Names {
			if strings.EqualFold(fieldName.Name, name) {
				return r.typeExpr(field.Type), true
			}
		}
	}
	return models.TypeExpr{}, false
}

func jsonFieldName(field *ast.Field) (string, bool) {
	if field.Tag == nil {
		return "", false
	}
	tag := strings.Trim(field.Tag.Value, "`")
	value, ok := reflect.StructTag(tag).Lookup("json")
	if !ok {
		return "", false
	}
	if idx := strings.Index(value, ","); idx >= 0 {
		value = value[:idx]
	}
	return value, true
}

// typeRef implements extractor.TypeRef over the resolver's structural types.
// The asynchronous-result wrapper of this front end is the (T, error) result
// shape of a handler; inner is set only on wrapped references.
type typeRef struct {
	expr     models.TypeExpr
	inner    *typeRef
	resolver *typeResolver
}

func (t *typeRef) Expr() models.TypeExpr { return t.expr }

func (t *typeRef) IsAsync() bool { return t.inner != nil }

func (t *typeRef) UnwrapAsync() extractor.TypeRef {
	if t.inner != nil {
		return t.inner
	}
	return t
}

func (t *typeRef) IsVoid() bool { return t.expr.IsVoid() }

func (t *typeRef) Property(name string) (extractor.TypeRef, bool) {
	if t.resolver == nil {
		return nil, false
	}
	expr, ok := t.resolver.property(t.expr, name)
	if !ok {
		return nil, false
	}
	return &typeRef{expr: expr, resolver: t.resolver}, true
}

// returnTypeRef presents a handler's result list as an asynchronous-result
// wrapper: (T, error) wraps T, a bare error (or no results) wraps void.
func returnTypeRef(results *ast.FieldList, resolver *typeResolver) *typeRef {
	inner := &typeRef{expr: models.VoidType(), resolver: resolver}
	if results != nil {
		for _, field := range results.List {
			if isErrorType(field.Type) {
				continue
			}
			inner = resolver.resolve(field.Type)
			break
		}
	}
	return &typeRef{expr: inner.expr, inner: inner, resolver: resolver}
}

func isErrorType(expr ast.Expr) bool {
	ident, ok := expr.(*ast.Ident)
	return ok && ident.Name == "error"
}
