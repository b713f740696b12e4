package gen

import "fmt"

// NameCollisionError reports two schema names that normalize to the same Go
// identifier.
type NameCollisionError struct {
	Interface string
	Kind      string
	Name      string
}

func (e *NameCollisionError) Error() string {
	if e.Interface == "" {
		return fmt.Sprintf("gen: duplicate %s name %q after normalization", e.Kind, e.Name)
	}
	return fmt.Sprintf("gen: interface %q: duplicate %s name %q after normalization", e.Interface, e.Kind, e.Name)
}
