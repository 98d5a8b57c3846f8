package models

// RouteFile represents the extracted routing surface of one source unit.
// The IR is built once by the extractor and consumed once by the generator;
// nothing mutates it in between.
type RouteFile struct {
	APIGroupName string
	BaseFileName string
	RouteClasses []RouteClass
}

// RouteClass represents one controller declaration and its routes
type RouteClass struct {
	BaseName string // declaration name with the Controller suffix stripped
	Routes   []Route
}

// Route represents a single network-invocable operation on a controller
type Route struct {
	Name         string // handler method name, copied verbatim into the client
	PathSegments []PathSegment
	Verb         Verb
	RequestBody  *RequestBody
	ResponseBody *ResponseBody
	QueryParams  *QueryParams
}

// RequestBody describes the body-bound parameter of a route
type RequestBody struct {
	Name string
	Type TypeExpr
}

// ResponseBody describes the unwrapped return type of a route
type ResponseBody struct {
	Type TypeExpr
}

// QueryParams describes the query-bound parameter of a route
type QueryParams struct {
	Name string
	Type TypeExpr
}
