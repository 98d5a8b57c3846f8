package models

// SegmentKind distinguishes literal path text from a typed path variable
type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentParameter
)

// PathSegment is one slash-delimited unit of a route path. Segment order is
// significant: it defines both the reconstructed URL and the order of the
// generated method parameters.
type PathSegment struct {
	Kind SegmentKind
	Text string   // literal text, may be empty
	Name string   // parameter name, set for SegmentParameter
	Type TypeExpr // parameter type, set for SegmentParameter
}

// LiteralSegment returns a literal path segment
func LiteralSegment(text string) PathSegment {
	return PathSegment{Kind: SegmentLiteral, Text: text}
}

// ParameterSegment returns a typed path-variable segment
func ParameterSegment(name string, typ TypeExpr) PathSegment {
	return PathSegment{Kind: SegmentParameter, Name: name, Type: typ}
}
