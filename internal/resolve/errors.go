package resolve

import (
	"errors"
	"fmt"
)

// ErrDuplicateInterface reports one interface name declared by two loaded
// documents.
var ErrDuplicateInterface = errors.New("resolve: interface declared by multiple documents")

// UnknownInterfaceError reports a non-external binding naming an interface
// no loaded document declares.
type UnknownInterfaceError struct {
	Declared string
}

func (e *UnknownInterfaceError) Error() string {
	return fmt.Sprintf("resolve: binding declares unknown interface %q", e.Declared)
}

// UnresolvedDependencyError reports an interface referenced by an argument
// of a bound interface that has no non-external binding of its own.
type UnresolvedDependencyError struct {
	Owner   string
	Missing string
}

func (e *UnresolvedDependencyError) Error() string {
	return fmt.Sprintf("resolve: interface %q depends on %q; specify an implementation for %q",
		e.Owner, e.Missing, e.Missing)
}

// UnknownEnumError reports an argument naming an enum that is not declared.
type UnknownEnumError struct {
	Owner string
	Arg   string
	Enum  string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("resolve: interface %q argument %q references unknown enum %q",
		e.Owner, e.Arg, e.Enum)
}
