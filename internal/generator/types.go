package generator

import (
	"strings"

	"github.com/veltran/tsbridge/internal/models"
)

// tsType renders a TypeExpr as a TypeScript type annotation
func tsType(t models.TypeExpr) string {
	switch t.Kind {
	case models.TypeVoid:
		return "void"
	case models.TypePrimitive:
		return tsPrimitive(t.Primitive)
	case models.TypeNamed:
		return t.Name
	case models.TypeArray:
		elem := tsType(*t.Elem)
		if strings.Contains(elem, "|") {
			return "(" + elem + ")[]"
		}
		return elem + "[]"
	case models.TypeMap:
		return "Record<" + tsMapKey(*t.Key) + ", " + tsType(*t.Elem) + ">"
	case models.TypePointer:
		return tsType(*t.Elem) + " | null"
	default:
		return "unknown"
	}
}

func tsPrimitive(kind models.PrimitiveKind) string {
	switch kind {
	case models.PrimBool:
		return "boolean"
	case models.PrimInt, models.PrimFloat:
		return "number"
	case models.PrimString:
		return "string"
	case models.PrimTime:
		// RFC 3339 on the wire
		return "string"
	default:
		return "unknown"
	}
}

// tsMapKey keeps named key types, everything else serializes to string keys
func tsMapKey(key models.TypeExpr) string {
	if key.Kind == models.TypeNamed {
		return key.Name
	}
	return "string"
}

// collectNamed records every named type referenced by an expression so the
// emitter can import it from the shared types module
func collectNamed(t models.TypeExpr, named map[string]struct{}) {
	switch t.Kind {
	case models.TypeNamed:
		named[t.Name] = struct{}{}
	case models.TypeArray, models.TypePointer:
		collectNamed(*t.Elem, named)
	case models.TypeMap:
		collectNamed(*t.Key, named)
		collectNamed(*t.Elem, named)
	}
}
