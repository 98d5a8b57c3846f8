package errors

import "fmt"

// ParameterNotFoundError reports a path parameter with no resolvable type
// binding. It is fatal for the whole run: a client cannot be generated
// without a type for every path variable.
type ParameterNotFoundError struct {
	Route     string
	Parameter string
}

// Error implements the error interface
func (e *ParameterNotFoundError) Error() string {
	return fmt.Sprintf("route %s: no type binding found for path parameter %q", e.Route, e.Parameter)
}
