package extractor

import "github.com/veltran/tsbridge/internal/models"

// In-memory declaration fakes. The extractor only sees the capability
// interfaces, so tests can describe declarations directly without a front end.

type fakeUnit struct {
	name    string
	classes []Class
}

func (u fakeUnit) Name() string     { return u.name }
func (u fakeUnit) Classes() []Class { return u.classes }

type fakeClass struct {
	name    string
	anns    []Annotation
	methods []Method
}

func (c fakeClass) Name() string              { return c.name }
func (c fakeClass) Annotations() []Annotation { return c.anns }
func (c fakeClass) Methods() []Method         { return c.methods }

type fakeMethod struct {
	name    string
	anns    []Annotation
	params  []Parameter
	returns TypeRef
}

func (m fakeMethod) Name() string              { return m.name }
func (m fakeMethod) Annotations() []Annotation { return m.anns }
func (m fakeMethod) Parameters() []Parameter   { return m.params }

func (m fakeMethod) ReturnType() TypeRef {
	if m.returns == nil {
		return asyncType(voidType())
	}
	return m.returns
}

type fakeParam struct {
	name string
	anns []Annotation
	typ  TypeRef
}

func (p fakeParam) Name() string              { return p.name }
func (p fakeParam) Annotations() []Annotation { return p.anns }
func (p fakeParam) Type() TypeRef             { return p.typ }

type fakeAnn struct {
	name string
	args []string
}

func (a fakeAnn) Name() string   { return a.name }
func (a fakeAnn) Args() []string { return a.args }

type fakeType struct {
	expr  models.TypeExpr
	inner *fakeType
	props map[string]models.TypeExpr
}

func (t *fakeType) Expr() models.TypeExpr { return t.expr }
func (t *fakeType) IsAsync() bool         { return t.inner != nil }
func (t *fakeType) IsVoid() bool          { return t.expr.IsVoid() }

func (t *fakeType) UnwrapAsync() TypeRef {
	if t.inner != nil {
		return t.inner
	}
	return t
}

func (t *fakeType) Property(name string) (TypeRef, bool) {
	expr, ok := t.props[name]
	if !ok {
		return nil, false
	}
	return &fakeType{expr: expr}, true
}

func namedType(name string) *fakeType {
	return &fakeType{expr: models.Named(name)}
}

func intType() *fakeType {
	return &fakeType{expr: models.Primitive(models.PrimInt)}
}

func voidType() *fakeType {
	return &fakeType{expr: models.VoidType()}
}

func asyncType(inner *fakeType) *fakeType {
	return &fakeType{expr: inner.expr, inner: inner}
}
