package generator

import (
	"sort"
	"strings"

	"github.com/veltran/tsbridge/internal/models"
)

// The generated unit is modeled as a small tree of class/method/dispatch
// values and rendered by the emitter, keeping layout concerns out of the
// mapping from IR to client shape.

type clientFile struct {
	runtimeImport string
	typesImport   string
	typeImports   []string // referenced named model types, sorted
	classes       []clientClass
}

type clientClass struct {
	name    string
	methods []clientMethod
}

type clientMethod struct {
	name         string
	params       []clientParam
	responseType string // unwrapped TS response type, "void" when absent
	url          string // template-literal body, e.g. users/${id}
	verb         string
	bodyRef      string // generated parameter carrying the body, "" when absent
	queryRef     string // generated parameter carrying the query, "" when absent
}

type clientParam struct {
	name   string
	tsType string
}

// buildClientFile maps one RouteFile into the client tree. Method parameter
// order is a contract: path parameters in path order, then body, then query,
// then the trailing options parameter.
func buildClientFile(file models.RouteFile, config Config) clientFile {
	named := make(map[string]struct{})

	tree := clientFile{
		runtimeImport: config.RuntimeImport,
		typesImport:   config.TypesImport,
	}
	for _, routeClass := range file.RouteClasses {
		cls := clientClass{name: routeClass.BaseName + "Client"}
		for _, route := range routeClass.Routes {
			cls.methods = append(cls.methods, buildMethod(route, named))
		}
		tree.classes = append(tree.classes, cls)
	}

	for name := range named {
		tree.typeImports = append(tree.typeImports, name)
	}
	sort.Strings(tree.typeImports)
	return tree
}

func buildMethod(route models.Route, named map[string]struct{}) clientMethod {
	m := clientMethod{
		name: route.Name,
		url:  urlTemplate(route.PathSegments),
		verb: route.Verb.String(),
	}

	for _, segment := range route.PathSegments {
		if segment.Kind != models.SegmentParameter {
			continue
		}
		collectNamed(segment.Type, named)
		m.params = append(m.params, clientParam{
			name:   segment.Name,
			tsType: tsType(segment.Type),
		})
	}
	if route.RequestBody != nil {
		collectNamed(route.RequestBody.Type, named)
		m.params = append(m.params, clientParam{
			name:   route.RequestBody.Name,
			tsType: tsType(route.RequestBody.Type),
		})
		m.bodyRef = route.RequestBody.Name
	}
	if route.QueryParams != nil {
		collectNamed(route.QueryParams.Type, named)
		m.params = append(m.params, clientParam{
			name:   route.QueryParams.Name,
			tsType: tsType(route.QueryParams.Type),
		})
		m.queryRef = route.QueryParams.Name
	}
	m.params = append(m.params, clientParam{name: "options", tsType: "RequestOptions"})

	if route.ResponseBody != nil {
		collectNamed(route.ResponseBody.Type, named)
		m.responseType = tsType(route.ResponseBody.Type)
	} else {
		m.responseType = "void"
	}
	return m
}

// urlTemplate joins path segments with the separator, substituting parameter
// segments with template-literal references to their generated parameters
func urlTemplate(segments []models.PathSegment) string {
	parts := make([]string, len(segments))
	for i, segment := range segments {
		if segment.Kind == models.SegmentParameter {
			parts[i] = "${" + segment.Name + "}"
		} else {
			parts[i] = segment.Text
		}
	}
	return strings.Join(parts, "/")
}
