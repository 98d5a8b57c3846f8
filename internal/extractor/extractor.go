package extractor

import (
	"path"
	"regexp"
	"strings"

	"github.com/veltran/tsbridge/internal/annotations"
	"github.com/veltran/tsbridge/internal/errors"
	"github.com/veltran/tsbridge/internal/models"
)

const (
	// ControllerSuffix is stripped from declaration names to form the
	// generated client base name
	ControllerSuffix = "Controller"

	// unitSuffix is stripped from unit names to form the base file name
	unitSuffix = ".go"

	// unitControllerSuffix is an additional naming-convention suffix
	// stripped from base file names when present
	unitControllerSuffix = "_controller"
)

// parameterMarker matches a path segment that declares a path variable:
// a leading ':' followed by an identifier.
var parameterMarker = regexp.MustCompile(`^:[a-zA-Z_][a-zA-Z0-9_]*$`)

// Options configures an extraction run
type Options struct {
	// APIGroupName is stamped onto every extracted RouteFile. Resolution of
	// the group name is the caller's policy (see cli.ModuleResolver).
	APIGroupName string
}

// Extractor builds the routing IR from annotated declaration units
type Extractor struct {
	opts Options
}

// New creates an extractor
func New(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// Extract walks the given units and returns one RouteFile per unit that
// contains at least one Controller-annotated class. Extraction is a pure
// read-only traversal; any failure aborts the whole run so that an unsound
// client is never generated.
func (e *Extractor) Extract(units []Unit) ([]models.RouteFile, error) {
	var files []models.RouteFile
	for _, unit := range units {
		file, err := e.extractUnit(unit)
		if err != nil {
			return nil, err
		}
		if file != nil {
			files = append(files, *file)
		}
	}
	return files, nil
}

// extractUnit returns nil when the unit carries no controller classes;
// such units are not part of the API surface.
func (e *Extractor) extractUnit(unit Unit) (*models.RouteFile, error) {
	var classes []models.RouteClass
	for _, class := range unit.Classes() {
		controller, ok := controllerAnnotation(class)
		if !ok {
			continue
		}
		routeClass, err := e.extractClass(class, controller)
		if err != nil {
			return nil, err
		}
		classes = append(classes, routeClass)
	}
	if len(classes) == 0 {
		return nil, nil
	}

	return &models.RouteFile{
		APIGroupName: e.opts.APIGroupName,
		BaseFileName: baseFileName(unit.Name()),
		RouteClasses: classes,
	}, nil
}

func (e *Extractor) extractClass(class Class, controller Annotation) (models.RouteClass, error) {
	basePath := ""
	if args := controller.Args(); len(args) > 0 {
		basePath = literalText(args[0])
	}

	routeClass := models.RouteClass{
		BaseName: strings.TrimSuffix(class.Name(), ControllerSuffix),
	}
	for _, method := range class.Methods() {
		route, err := e.extractRoute(method, basePath)
		if err != nil {
			return models.RouteClass{}, err
		}
		if route != nil {
			routeClass.Routes = append(routeClass.Routes, *route)
		}
	}
	return routeClass, nil
}

// extractRoute returns nil when the method carries no verb-role annotation.
// Annotations are scanned in declaration order and the first verb match wins.
func (e *Extractor) extractRoute(method Method, basePath string) (*models.Route, error) {
	verb, pathSuffix, ok := verbAnnotation(method)
	if !ok {
		return nil, nil
	}

	segments, err := parsePath(basePath+pathSuffix, method)
	if err != nil {
		return nil, err
	}

	route := &models.Route{
		Name:         method.Name(),
		PathSegments: segments,
		Verb:         verb,
	}

	for _, param := range method.Parameters() {
		for _, ann := range param.Annotations() {
			role, ok := annotations.Binding(ann.Name())
			if !ok {
				continue
			}
			switch role {
			case annotations.BindingBody:
				if route.RequestBody == nil {
					// bodies are never themselves asynchronous-result values
					route.RequestBody = &models.RequestBody{
						Name: param.Name(),
						Type: param.Type().UnwrapAsync().Expr(),
					}
				}
			case annotations.BindingQuery:
				if route.QueryParams == nil {
					route.QueryParams = &models.QueryParams{
						Name: param.Name(),
						Type: param.Type().Expr(),
					}
				}
			}
		}
	}

	// methods are always asynchronous at the boundary, so unwrapping once is
	// always attempted and always safe
	returned := method.ReturnType().UnwrapAsync()
	if !returned.IsVoid() {
		route.ResponseBody = &models.ResponseBody{Type: returned.Expr()}
	}

	return route, nil
}

// parsePath splits the concatenated route path into ordered segments. One
// leading separator is trimmed so that a base path of "/users" contributes
// the literal "users"; interior empty segments are preserved verbatim.
func parsePath(full string, method Method) ([]models.PathSegment, error) {
	full = strings.TrimPrefix(full, "/")
	parts := strings.Split(full, "/")

	segments := make([]models.PathSegment, 0, len(parts))
	for _, part := range parts {
		if !parameterMarker.MatchString(part) {
			segments = append(segments, models.LiteralSegment(part))
			continue
		}
		name := part[1:]
		typ, err := resolveParameterType(name, method)
		if err != nil {
			return nil, err
		}
		segments = append(segments, models.ParameterSegment(name, typ))
	}
	return segments, nil
}

// resolveParameterType finds the static type of a path variable by scanning
// the method's parameters for a matching binding: a Param annotation whose
// argument names the variable, or a Params group binding whose struct type
// has a property of that name.
func resolveParameterType(name string, method Method) (models.TypeExpr, error) {
	for _, param := range method.Parameters() {
		for _, ann := range param.Annotations() {
			role, ok := annotations.Binding(ann.Name())
			if !ok {
				continue
			}
			switch role {
			case annotations.BindingParam:
				if args := ann.Args(); len(args) > 0 && literalText(args[0]) == name {
					return param.Type().Expr(), nil
				}
			case annotations.BindingParams:
				if property, ok := param.Type().Property(name); ok {
					return property.Expr(), nil
				}
			}
		}
	}
	return models.TypeExpr{}, &errors.ParameterNotFoundError{
		Route:     method.Name(),
		Parameter: name,
	}
}

// controllerAnnotation finds the controller-role annotation on a class
func controllerAnnotation(class Class) (Annotation, bool) {
	for _, ann := range class.Annotations() {
		if ann.Name() == annotations.ControllerAnnotation {
			return ann, true
		}
	}
	return nil, false
}

// verbAnnotation finds the first verb-role annotation on a method and
// resolves its path-suffix argument
func verbAnnotation(method Method) (models.Verb, string, bool) {
	for _, ann := range method.Annotations() {
		verb, ok := annotations.VerbRole(ann.Name())
		if !ok {
			continue
		}
		suffix := ""
		if args := ann.Args(); len(args) > 0 {
			suffix = literalText(args[0])
		}
		return verb, suffix, true
	}
	return 0, "", false
}

// baseFileName strips the fixed unit suffix, plus the _controller naming
// convention when present, e.g. "users_controller.go" -> "users".
func baseFileName(unitName string) string {
	base := path.Base(strings.ReplaceAll(unitName, "\\", "/"))
	base = strings.TrimSuffix(base, unitSuffix)
	base = strings.TrimSuffix(base, unitControllerSuffix)
	return base
}
