package source

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/veltran/tsbridge/internal/annotations"
	"github.com/veltran/tsbridge/internal/extractor"
)

// unit adapts one *ast.File to extractor.Unit
type unit struct {
	name    string
	classes []*class
}

type class struct {
	name        string
	annotations []extractor.Annotation
	methods     []*method
}

type method struct {
	name        string
	annotations []extractor.Annotation
	params      []*parameter
	returns     extractor.TypeRef
}

type parameter struct {
	name        string
	annotations []extractor.Annotation
	typ         extractor.TypeRef
}

// annotation is the concrete extractor.Annotation produced from a directive
type annotation struct {
	name string
	args []string
}

func (a annotation) Name() string   { return a.name }
func (a annotation) Args() []string { return a.args }

func (u *unit) Name() string { return u.name }

func (u *unit) Classes() []extractor.Class {
	classes := make([]extractor.Class, len(u.classes))
	for i, c := range u.classes {
		classes[i] = c
	}
	return classes
}

func (c *class) Name() string                        { return c.name }
func (c *class) Annotations() []extractor.Annotation { return c.annotations }

func (c *class) Methods() []extractor.Method {
	methods := make([]extractor.Method, len(c.methods))
	for i, m := range c.methods {
		methods[i] = m
	}
	return methods
}

func (m *method) Name() string                        { return m.name }
func (m *method) Annotations() []extractor.Annotation { return m.annotations }
func (m *method) ReturnType() extractor.TypeRef       { return m.returns }

func (m *method) Parameters() []extractor.Parameter {
	params := make([]extractor.Parameter, len(m.params))
	for i, p := range m.params {
		params[i] = p
	}
	return params
}

func (p *parameter) Name() string                        { return p.name }
func (p *parameter) Annotations() []extractor.Annotation { return p.annotations }
func (p *parameter) Type() extractor.TypeRef             { return p.typ }

// newUnit walks one file's declarations and builds the adapter tree. Struct
// declarations become classes; functions with a receiver matching a struct in
// the same file become its methods, in declaration order.
func newUnit(name string, file *ast.File, resolver *typeResolver) *unit {
	u := &unit{name: name}
	byName := make(map[string]*class)

	ins := inspector.New([]*ast.File{file})

	ins.Preorder([]ast.Node{(*ast.GenDecl)(nil)}, func(n ast.Node) {
		decl := n.(*ast.GenDecl)
		if decl.Tok != token.TYPE {
			return
		}
		for _, spec := range decl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			if _, ok := typeSpec.Type.(*ast.StructType); !ok {
				continue
			}
			c := &class{
				name:        typeSpec.Name.Name,
				annotations: docAnnotations(decl.Doc),
			}
			u.classes = append(u.classes, c)
			byName[c.name] = c
		}
	})

	ins.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		decl := n.(*ast.FuncDecl)
		if decl.Recv == nil || len(decl.Recv.List) == 0 {
			return
		}
		owner, ok := byName[receiverName(decl.Recv.List[0].Type)]
		if !ok {
			return
		}
		owner.methods = append(owner.methods, newMethod(decl, resolver))
	})

	return u
}

// newMethod splits the method's directives into method-level annotations and
// parameter bindings, then attaches bindings to the named Go parameter.
func newMethod(decl *ast.FuncDecl, resolver *typeResolver) *method {
	m := &method{
		name:    decl.Name.Name,
		params:  methodParameters(decl.Type.Params, resolver),
		returns: returnTypeRef(decl.Type.Results, resolver),
	}

	if decl.Doc == nil {
		return m
	}
	for _, comment := range decl.Doc.List {
		directive, err := annotations.ParseDirective(comment.Text)
		if err != nil {
			// ordinary comments and malformed directives are inert
			continue
		}
		role, isBinding := annotations.Binding(directive.Name)
		if !isBinding {
			m.annotations = append(m.annotations, annotation{
				name: directive.Name,
				args: directive.Args,
			})
			continue
		}

		// binding directives name the Go parameter first, e.g.
		//   tsbridge::Param id "id"
		//   tsbridge::Body payload
		if len(directive.Args) == 0 {
			continue
		}
		target := directive.Args[0]
		args := directive.Args[1:]
		if role == annotations.BindingParam && len(args) == 0 {
			// single-token shorthand binds the path variable of the same name
			args = []string{target}
		}
		for _, param := range m.params {
			if param.name == target {
				param.annotations = append(param.annotations, annotation{
					name: directive.Name,
					args: args,
				})
				break
			}
		}
	}
	return m
}

// methodParameters adapts the Go parameter list, skipping a leading
// context.Context which is boundary plumbing rather than route data
func methodParameters(fields *ast.FieldList, resolver *typeResolver) []*parameter {
	if fields == nil {
		return nil
	}
	var params []*parameter
	for i, field := range fields.List {
		if i == 0 && isContextType(field.Type) {
			continue
		}
		typ := resolver.resolve(field.Type)
		for _, name := range field.Names {
			params = append(params, &parameter{name: name.Name, typ: typ})
		}
	}
	return params
}

// docAnnotations parses the recognized directives out of a doc comment group
func docAnnotations(doc *ast.CommentGroup) []extractor.Annotation {
	if doc == nil {
		return nil
	}
	var anns []extractor.Annotation
	for _, comment := range doc.List {
		directive, err := annotations.ParseDirective(comment.Text)
		if err != nil {
			continue
		}
		anns = append(anns, annotation{name: directive.Name, args: directive.Args})
	}
	return anns
}

func receiverName(expr ast.Expr) string {
	switch recv := expr.(type) {
	case *ast.StarExpr:
		if ident, ok := recv.X.(*ast.Ident); ok {
			return ident.Name
		}
	case *ast.Ident:
		return recv.Name
	}
	return ""
}

func isContextType(expr ast.Expr) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	ident, ok := sel.X.(*ast.Ident)
	return ok && ident.Name == "context" && sel.Sel.Name == "Context"
}
