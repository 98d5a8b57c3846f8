package extractor

import (
	goerrors "errors"
	"testing"

	"github.com/veltran/tsbridge/internal/errors"
	"github.com/veltran/tsbridge/internal/models"
)

func usersUnit(methods ...Method) fakeUnit {
	return fakeUnit{
		name: "users_controller.go",
		classes: []Class{fakeClass{
			name:    "UsersController",
			anns:    []Annotation{fakeAnn{name: "Controller", args: []string{"/users"}}},
			methods: methods,
		}},
	}
}

func TestExtract_GetByIDScenario(t *testing.T) {
	method := fakeMethod{
		name: "GetUser",
		anns: []Annotation{fakeAnn{name: "Get", args: []string{"/:id"}}},
		params: []Parameter{fakeParam{
			name: "id",
			anns: []Annotation{fakeAnn{name: "Param", args: []string{`"id"`}}},
			typ:  intType(),
		}},
		returns: asyncType(namedType("User")),
	}

	files, err := New(Options{APIGroupName: "shop"}).Extract([]Unit{usersUnit(method)})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 route file, got %d", len(files))
	}

	file := files[0]
	if file.APIGroupName != "shop" {
		t.Errorf("APIGroupName = %q, want %q", file.APIGroupName, "shop")
	}
	if file.BaseFileName != "users" {
		t.Errorf("BaseFileName = %q, want %q", file.BaseFileName, "users")
	}
	if len(file.RouteClasses) != 1 {
		t.Fatalf("expected 1 route class, got %d", len(file.RouteClasses))
	}

	class := file.RouteClasses[0]
	if class.BaseName != "Users" {
		t.Errorf("BaseName = %q, want %q", class.BaseName, "Users")
	}
	if len(class.Routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(class.Routes))
	}

	route := class.Routes[0]
	if route.Name != "GetUser" {
		t.Errorf("route name = %q", route.Name)
	}
	if route.Verb != models.VerbGet {
		t.Errorf("verb = %v, want GET", route.Verb)
	}
	wantSegments := []models.PathSegment{
		models.LiteralSegment("users"),
		models.ParameterSegment("id", models.Primitive(models.PrimInt)),
	}
	if len(route.PathSegments) != len(wantSegments) {
		t.Fatalf("segments = %+v, want %+v", route.PathSegments, wantSegments)
	}
	for i, want := range wantSegments {
		got := route.PathSegments[i]
		if got.Kind != want.Kind || got.Text != want.Text || got.Name != want.Name {
			t.Errorf("segment %d = %+v, want %+v", i, got, want)
		}
	}
	if route.ResponseBody == nil || route.ResponseBody.Type.Name != "User" {
		t.Errorf("response body = %+v, want User", route.ResponseBody)
	}
	if route.RequestBody != nil {
		t.Errorf("unexpected request body: %+v", route.RequestBody)
	}
	if route.QueryParams != nil {
		t.Errorf("unexpected query params: %+v", route.QueryParams)
	}
}

func TestExtract_PostWithBodyAndVoidResponse(t *testing.T) {
	method := fakeMethod{
		name: "CreateUser",
		anns: []Annotation{fakeAnn{name: "Post"}},
		params: []Parameter{fakeParam{
			name: "payload",
			anns: []Annotation{fakeAnn{name: "Body"}},
			typ:  namedType("CreateUserDto"),
		}},
		returns: asyncType(voidType()),
	}

	files, err := New(Options{}).Extract([]Unit{usersUnit(method)})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	route := files[0].RouteClasses[0].Routes[0]
	if route.Verb != models.VerbPost {
		t.Errorf("verb = %v, want POST", route.Verb)
	}
	if route.RequestBody == nil {
		t.Fatal("expected a request body")
	}
	if route.RequestBody.Name != "payload" || route.RequestBody.Type.Name != "CreateUserDto" {
		t.Errorf("request body = %+v", route.RequestBody)
	}
	if route.ResponseBody != nil {
		t.Errorf("void response should have no response body, got %+v", route.ResponseBody)
	}
}

func TestExtract_AsyncBodyUnwrappedOnce(t *testing.T) {
	method := fakeMethod{
		name: "Enqueue",
		anns: []Annotation{fakeAnn{name: "Post", args: []string{"/jobs"}}},
		params: []Parameter{fakeParam{
			name: "job",
			anns: []Annotation{fakeAnn{name: "Body"}},
			typ:  asyncType(namedType("Job")),
		}},
	}

	files, err := New(Options{}).Extract([]Unit{usersUnit(method)})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	body := files[0].RouteClasses[0].Routes[0].RequestBody
	if body == nil || body.Type.Name != "Job" {
		t.Errorf("request body = %+v, want unwrapped Job", body)
	}
}

func TestExtract_GroupBinding(t *testing.T) {
	filter := &fakeType{
		expr:  models.Named("UserFilter"),
		props: map[string]models.TypeExpr{"orgId": models.Primitive(models.PrimString)},
	}
	method := fakeMethod{
		name: "ListOrgUsers",
		anns: []Annotation{fakeAnn{name: "Get", args: []string{"/:orgId/members"}}},
		params: []Parameter{fakeParam{
			name: "filter",
			anns: []Annotation{fakeAnn{name: "Params"}},
			typ:  filter,
		}},
		returns: asyncType(&fakeType{expr: models.ArrayOf(models.Named("User"))}),
	}

	files, err := New(Options{}).Extract([]Unit{usersUnit(method)})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	segments := files[0].RouteClasses[0].Routes[0].PathSegments
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %+v", segments)
	}
	param := segments[1]
	if param.Kind != models.SegmentParameter || param.Name != "orgId" {
		t.Fatalf("segment 1 = %+v, want orgId parameter", param)
	}
	if param.Type.Kind != models.TypePrimitive || param.Type.Primitive != models.PrimString {
		t.Errorf("orgId type = %+v, want string primitive", param.Type)
	}
}

func TestExtract_QueryParams(t *testing.T) {
	method := fakeMethod{
		name: "ListUsers",
		anns: []Annotation{fakeAnn{name: "Get"}},
		params: []Parameter{fakeParam{
			name: "query",
			anns: []Annotation{fakeAnn{name: "QueryParams"}},
			typ:  namedType("ListUsersQuery"),
		}},
		returns: asyncType(&fakeType{expr: models.ArrayOf(models.Named("User"))}),
	}

	files, err := New(Options{}).Extract([]Unit{usersUnit(method)})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	route := files[0].RouteClasses[0].Routes[0]
	if route.QueryParams == nil || route.QueryParams.Name != "query" {
		t.Errorf("query params = %+v", route.QueryParams)
	}
	if route.QueryParams.Type.Name != "ListUsersQuery" {
		t.Errorf("query type = %+v", route.QueryParams.Type)
	}
}

func TestExtract_ParameterNotFound(t *testing.T) {
	method := fakeMethod{
		name:    "GetOrg",
		anns:    []Annotation{fakeAnn{name: "Get", args: []string{"/:orgId"}}},
		returns: asyncType(namedType("Org")),
	}

	_, err := New(Options{}).Extract([]Unit{usersUnit(method)})
	if err == nil {
		t.Fatal("expected ParameterNotFound error")
	}
	var notFound *errors.ParameterNotFoundError
	if !goerrors.As(err, &notFound) {
		t.Fatalf("error type = %T, want ParameterNotFoundError", err)
	}
	if notFound.Route != "GetOrg" || notFound.Parameter != "orgId" {
		t.Errorf("error = %+v, want route GetOrg parameter orgId", notFound)
	}
}

func TestExtract_MethodsWithoutVerbAreNotRoutes(t *testing.T) {
	helper := fakeMethod{name: "validate"}
	route := fakeMethod{
		name:    "GetUser",
		anns:    []Annotation{fakeAnn{name: "Get", args: []string{"/:id"}}},
		params:  []Parameter{fakeParam{name: "id", anns: []Annotation{fakeAnn{name: "Param", args: []string{"id"}}}, typ: intType()}},
		returns: asyncType(namedType("User")),
	}

	files, err := New(Options{}).Extract([]Unit{usersUnit(helper, route)})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	routes := files[0].RouteClasses[0].Routes
	if len(routes) != 1 || routes[0].Name != "GetUser" {
		t.Errorf("routes = %+v, want only GetUser", routes)
	}
}

func TestExtract_FirstVerbAnnotationWins(t *testing.T) {
	method := fakeMethod{
		name: "Ping",
		anns: []Annotation{
			fakeAnn{name: "Audit"}, // unrecognized, inert
			fakeAnn{name: "Get", args: []string{"/ping"}},
			fakeAnn{name: "Post", args: []string{"/other"}},
		},
	}

	files, err := New(Options{}).Extract([]Unit{usersUnit(method)})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	route := files[0].RouteClasses[0].Routes[0]
	if route.Verb != models.VerbGet {
		t.Errorf("verb = %v, want GET (first verb annotation wins)", route.Verb)
	}
	last := route.PathSegments[len(route.PathSegments)-1]
	if last.Text != "ping" {
		t.Errorf("path = %+v, want .../ping", route.PathSegments)
	}
}

func TestExtract_UnitsWithoutControllersAreDropped(t *testing.T) {
	plain := fakeUnit{
		name: "helpers.go",
		classes: []Class{fakeClass{
			name: "Clock",
			anns: []Annotation{fakeAnn{name: "Service"}},
		}},
	}

	files, err := New(Options{}).Extract([]Unit{plain})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no route files, got %+v", files)
	}
}

func TestExtract_MalformedBasePathContributesNothing(t *testing.T) {
	unit := fakeUnit{
		name: "orders_controller.go",
		classes: []Class{fakeClass{
			name: "OrdersController",
			// unterminated string literal: tolerated, contributes ""
			anns: []Annotation{fakeAnn{name: "Controller", args: []string{`"/orders`}}},
			methods: []Method{fakeMethod{
				name: "ListOrders",
				anns: []Annotation{fakeAnn{name: "Get", args: []string{"/recent"}}},
			}},
		}},
	}

	files, err := New(Options{}).Extract([]Unit{unit})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	segments := files[0].RouteClasses[0].Routes[0].PathSegments
	if len(segments) != 1 || segments[0].Text != "recent" {
		t.Errorf("segments = %+v, want single literal \"recent\"", segments)
	}
}

func TestExtract_InteriorEmptySegmentsPreserved(t *testing.T) {
	method := fakeMethod{
		name: "Weird",
		anns: []Annotation{fakeAnn{name: "Get", args: []string{"//status"}}},
	}

	files, err := New(Options{}).Extract([]Unit{usersUnit(method)})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	segments := files[0].RouteClasses[0].Routes[0].PathSegments
	// "/users" + "//status" -> "users//status" -> [users, "", status]
	if len(segments) != 3 {
		t.Fatalf("segments = %+v, want 3 segments", segments)
	}
	if segments[1].Kind != models.SegmentLiteral || segments[1].Text != "" {
		t.Errorf("segment 1 = %+v, want empty literal", segments[1])
	}
}

func TestBaseFileName(t *testing.T) {
	tests := []struct {
		unit string
		want string
	}{
		{"users_controller.go", "users"},
		{"users.go", "users"},
		{"internal/api/orders_controller.go", "orders"},
		{"health.go", "health"},
	}
	for _, tt := range tests {
		if got := baseFileName(tt.unit); got != tt.want {
			t.Errorf("baseFileName(%q) = %q, want %q", tt.unit, got, tt.want)
		}
	}
}
