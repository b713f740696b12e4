package resolve

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Binding maps one schema interface to the Go type implementing it. An
// external binding points at a type outside the generated package and
// produces no contract; the display binding marks the bootstrap interface.
type Binding struct {
	Interface string `toml:"interface"`
	Impl      string `toml:"impl"`
	External  bool   `toml:"external"`
	Display   bool   `toml:"display"`
}

// Bindings is the embedder's binding declaration for one generated package.
type Bindings struct {
	Package string    `toml:"package"`
	Binds   []Binding `toml:"bind"`
}

// LoadBindings reads and validates a bindings file.
func LoadBindings(path string) (Bindings, error) {
	var b Bindings
	data, err := os.ReadFile(path)
	if err != nil {
		return Bindings{}, fmt.Errorf("resolve: bindings load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &b); err != nil {
		return Bindings{}, fmt.Errorf("resolve: bindings parse failed (%s): %w", path, err)
	}
	if err := ValidateBindings(b); err != nil {
		return Bindings{}, err
	}
	return b, nil
}

// ValidateBindings checks the structural binding invariants: a package
// name, at most one binding per interface, and at most one non-external
// display binding.
func ValidateBindings(b Bindings) error {
	if strings.TrimSpace(b.Package) == "" {
		return fmt.Errorf("resolve: bindings missing package name")
	}
	seen := make(map[string]bool, len(b.Binds))
	display := ""
	for i, bind := range b.Binds {
		if strings.TrimSpace(bind.Interface) == "" {
			return fmt.Errorf("resolve: bind[%d] missing interface", i)
		}
		if strings.TrimSpace(bind.Impl) == "" {
			return fmt.Errorf("resolve: bind[%d] (%s) missing impl", i, bind.Interface)
		}
		if seen[bind.Interface] {
			return fmt.Errorf("resolve: duplicate binding for interface %q", bind.Interface)
		}
		seen[bind.Interface] = true
		if bind.Display {
			if bind.External {
				return fmt.Errorf("resolve: display binding %q cannot be external", bind.Interface)
			}
			if display != "" {
				return fmt.Errorf("resolve: multiple display bindings: %q and %q", display, bind.Interface)
			}
			display = bind.Interface
		}
	}
	return nil
}
