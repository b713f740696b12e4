package gen

import (
	"strings"

	"github.com/danmuck/wiregen/internal/resolve"
	"github.com/danmuck/wiregen/internal/schema"
)

// Generate compiles the loaded protocol documents against the resolved
// bindings into one formatted Go source file. Interfaces are emitted in
// declaration order across documents, contracts first, dispatchers after,
// so the output diffs cleanly between runs.
func Generate(protocols []*schema.Protocol, ctx *resolve.Context) ([]byte, error) {
	if err := checkNames(ctx); err != nil {
		return nil, err
	}

	f := NewFile(ctx.Package)
	f.Import("github.com/danmuck/wiregen/wire")
	f.HeaderComment("Code generated by wiregen; DO NOT EDIT.")
	for _, p := range protocols {
		writeProtocolHeader(f, p)
	}

	for _, name := range ctx.Targets() {
		iface, _ := ctx.Interface(name)
		if err := writeInterface(f, iface, ctx); err != nil {
			return nil, err
		}
	}
	for _, name := range ctx.Targets() {
		iface, _ := ctx.Interface(name)
		if err := writeDispatch(f, iface, ctx); err != nil {
			return nil, err
		}
	}
	writeProtocolDispatch(f, ctx)
	if ctx.Display != "" {
		if err := writeBootstrap(f, ctx); err != nil {
			return nil, err
		}
	}
	return f.Render()
}

// writeProtocolHeader records one document's identity in the file comment.
func writeProtocolHeader(f *File, p *schema.Protocol) {
	f.HeaderComment("")
	title := "Protocol " + p.Name
	if p.Summary != "" {
		title += ": " + p.Summary
	}
	f.HeaderComment(title)
	for _, line := range commentLines(p.Description) {
		f.HeaderComment(line)
	}
	if p.Copyright != "" {
		f.HeaderComment("")
		for _, line := range commentLines(p.Copyright) {
			f.HeaderComment(line)
		}
	}
}

func commentLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	return lines
}

// checkNames rejects identifier collisions schema validation cannot see:
// distinct snake_case names may normalize to the same Go identifier. The
// check runs before any code is emitted so a collision never produces a
// half-written file.
func checkNames(ctx *resolve.Context) error {
	ifaces := make(map[string]bool)
	impls := make(map[string]bool)
	for _, name := range ctx.Targets() {
		camel := CamelCase(name)
		if ifaces[camel] {
			return &NameCollisionError{Kind: "interface", Name: camel}
		}
		ifaces[camel] = true
		impl, _ := ctx.Impl(name)
		if impls[impl] {
			return &NameCollisionError{Kind: "implementation", Name: impl}
		}
		impls[impl] = true

		iface, _ := ctx.Interface(name)
		// wire.Object already provides ID on every bound type.
		methods := map[string]bool{"ID": true}
		for _, req := range iface.Requests {
			if err := checkMember(name, methods, req.Name, req.Args); err != nil {
				return err
			}
		}
		for _, ev := range iface.Events {
			if err := checkMember(name, methods, ev.Name, ev.Args); err != nil {
				return err
			}
		}
		enums := make(map[string]bool)
		for _, enum := range iface.Enums {
			typ := enumTypeName(name, enum.Name)
			if enums[typ] {
				return &NameCollisionError{Interface: name, Kind: "enum", Name: typ}
			}
			enums[typ] = true
			entries := make(map[string]bool)
			for _, entry := range enum.Entries {
				c := typ + CamelCase(entry.Name)
				if entries[c] {
					return &NameCollisionError{Interface: name, Kind: "enum entry", Name: c}
				}
				entries[c] = true
			}
		}
	}
	return nil
}

// checkMember guards one request or event: the method name must stay unique
// within the interface across both kinds, and parameter names must stay
// distinct after normalization.
func checkMember(iface string, methods map[string]bool, member string, args []schema.Arg) error {
	m := CamelCase(member)
	if methods[m] {
		return &NameCollisionError{Interface: iface, Kind: "method", Name: m}
	}
	methods[m] = true
	params := make(map[string]bool)
	for _, arg := range args {
		p := paramName(arg.Name)
		if params[p] {
			return &NameCollisionError{Interface: iface, Kind: "parameter", Name: p}
		}
		params[p] = true
	}
	return nil
}
