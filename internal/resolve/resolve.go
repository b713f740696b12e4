package resolve

import (
	"fmt"
	"strings"

	"github.com/danmuck/wiregen/internal/schema"
)

// Context is the read-only product of binding resolution. It answers the
// questions the generator passes ask: which interfaces to generate, which
// Go type realizes an interface, and which declared version a static new_id
// argument registers with.
type Context struct {
	Package string
	Display string

	interfaces map[string]*schema.Interface
	bindings   map[string]Binding
	targets    []string
}

// Resolve merges the interfaces of all loaded documents, checks every
// binding and every statically typed reference, and builds the generation
// context. Resolution either succeeds completely or fails with the first
// error; there is no partial result.
func Resolve(protocols []*schema.Protocol, bindings Bindings) (*Context, error) {
	if err := ValidateBindings(bindings); err != nil {
		return nil, err
	}

	interfaces := make(map[string]*schema.Interface)
	var order []string
	for _, p := range protocols {
		for i := range p.Interfaces {
			iface := &p.Interfaces[i]
			if _, ok := interfaces[iface.Name]; ok {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateInterface, iface.Name)
			}
			interfaces[iface.Name] = iface
			order = append(order, iface.Name)
		}
	}

	byName := make(map[string]Binding, len(bindings.Binds))
	for _, b := range bindings.Binds {
		if !b.External {
			if _, ok := interfaces[b.Interface]; !ok {
				return nil, &UnknownInterfaceError{Declared: b.Interface}
			}
		}
		byName[b.Interface] = b
	}

	ctx := &Context{
		Package:    bindings.Package,
		interfaces: interfaces,
		bindings:   byName,
	}
	for _, name := range order {
		b, ok := byName[name]
		if !ok || b.External {
			continue
		}
		ctx.targets = append(ctx.targets, name)
		if b.Display {
			ctx.Display = name
		}
	}

	for _, name := range ctx.targets {
		if err := ctx.checkReferences(interfaces[name]); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}

// checkReferences walks every argument of a bound interface. Statically
// typed object and new_id references need a schema-resident, non-external
// binding; enum references need a declared enum.
func (c *Context) checkReferences(iface *schema.Interface) error {
	check := func(args []schema.Arg) error {
		for _, arg := range args {
			if arg.Type.References() && arg.Interface != "" {
				dep, ok := c.bindings[arg.Interface]
				if !ok || dep.External {
					return &UnresolvedDependencyError{Owner: iface.Name, Missing: arg.Interface}
				}
			}
			if arg.Enum != "" {
				if !c.enumDeclared(iface, arg.Enum) {
					return &UnknownEnumError{Owner: iface.Name, Arg: arg.Name, Enum: arg.Enum}
				}
			}
		}
		return nil
	}
	for _, req := range iface.Requests {
		if err := check(req.Args); err != nil {
			return err
		}
	}
	for _, ev := range iface.Events {
		if err := check(ev.Args); err != nil {
			return err
		}
	}
	return nil
}

// enumDeclared resolves a local ("axis") or qualified ("widget.axis") enum
// reference.
func (c *Context) enumDeclared(owner *schema.Interface, ref string) bool {
	iface := owner
	name := ref
	if dot := strings.IndexByte(ref, '.'); dot >= 0 {
		other, ok := c.interfaces[ref[:dot]]
		if !ok {
			return false
		}
		iface = other
		name = ref[dot+1:]
	}
	_, ok := iface.Enum(name)
	return ok
}

// Targets lists the interfaces to generate for, in declaration order across
// documents.
func (c *Context) Targets() []string {
	return c.targets
}

// Interface returns the declared interface named name.
func (c *Context) Interface(name string) (*schema.Interface, bool) {
	iface, ok := c.interfaces[name]
	return iface, ok
}

// Impl returns the Go type identifier bound to the interface.
func (c *Context) Impl(name string) (string, bool) {
	b, ok := c.bindings[name]
	if !ok {
		return "", false
	}
	return b.Impl, true
}

// Version returns the declared version of the interface. Static new_id
// arguments register with it.
func (c *Context) Version(name string) (uint32, bool) {
	iface, ok := c.interfaces[name]
	if !ok {
		return 0, false
	}
	return iface.Version, true
}

// Static reports whether an object or new_id argument is statically typed.
// The decision is made here, once, so generated decode paths carry no
// per-message branch.
func (c *Context) Static(arg schema.Arg) bool {
	return arg.Type.References() && arg.Interface != ""
}
