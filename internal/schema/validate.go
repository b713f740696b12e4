package schema

import "fmt"

// ValidationError names the schema element that violates a document
// invariant.
type ValidationError struct {
	Protocol  string
	Interface string
	Element   string
	Reason    string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("schema: protocol %q", e.Protocol)
	if e.Interface != "" {
		msg += fmt.Sprintf(": interface %q", e.Interface)
	}
	if e.Element != "" {
		msg += ": " + e.Element
	}
	return msg + ": " + e.Reason
}

// Validate checks the document invariants every compiler pass relies on.
func Validate(p *Protocol) error {
	if p.Name == "" {
		return &ValidationError{Reason: "protocol name required"}
	}
	seen := make(map[string]bool, len(p.Interfaces))
	for i := range p.Interfaces {
		iface := &p.Interfaces[i]
		if iface.Name == "" {
			return &ValidationError{Protocol: p.Name, Reason: "interface name required"}
		}
		if seen[iface.Name] {
			return &ValidationError{Protocol: p.Name, Reason: fmt.Sprintf("duplicate interface %q", iface.Name)}
		}
		seen[iface.Name] = true
		if iface.Version < 1 {
			return &ValidationError{Protocol: p.Name, Interface: iface.Name, Reason: "version must be at least 1"}
		}
		if err := validateInterface(p.Name, iface); err != nil {
			return err
		}
	}
	return nil
}

func validateInterface(protocol string, iface *Interface) error {
	// Requests and events share one method namespace on the bound type.
	members := make(map[string]bool, len(iface.Requests)+len(iface.Events))
	for r := range iface.Requests {
		req := &iface.Requests[r]
		element := fmt.Sprintf("request %q", req.Name)
		if req.Name == "" {
			return &ValidationError{Protocol: protocol, Interface: iface.Name, Reason: "request name required"}
		}
		if members[req.Name] {
			return &ValidationError{Protocol: protocol, Interface: iface.Name, Element: element, Reason: "duplicate message name"}
		}
		members[req.Name] = true
		if err := validateArgs(protocol, iface.Name, element, req.Args); err != nil {
			return err
		}
	}
	for e := range iface.Events {
		ev := &iface.Events[e]
		element := fmt.Sprintf("event %q", ev.Name)
		if ev.Name == "" {
			return &ValidationError{Protocol: protocol, Interface: iface.Name, Reason: "event name required"}
		}
		if members[ev.Name] {
			return &ValidationError{Protocol: protocol, Interface: iface.Name, Element: element, Reason: "duplicate message name"}
		}
		members[ev.Name] = true
		if err := validateArgs(protocol, iface.Name, element, ev.Args); err != nil {
			return err
		}
	}

	enums := make(map[string]bool, len(iface.Enums))
	for _, enum := range iface.Enums {
		element := fmt.Sprintf("enum %q", enum.Name)
		if enum.Name == "" {
			return &ValidationError{Protocol: protocol, Interface: iface.Name, Reason: "enum name required"}
		}
		if enums[enum.Name] {
			return &ValidationError{Protocol: protocol, Interface: iface.Name, Element: element, Reason: "duplicate enum name"}
		}
		enums[enum.Name] = true
		entries := make(map[string]bool, len(enum.Entries))
		for _, entry := range enum.Entries {
			if entry.Name == "" {
				return &ValidationError{Protocol: protocol, Interface: iface.Name, Element: element, Reason: "entry name required"}
			}
			if entries[entry.Name] {
				return &ValidationError{Protocol: protocol, Interface: iface.Name, Element: element, Reason: fmt.Sprintf("duplicate entry %q", entry.Name)}
			}
			entries[entry.Name] = true
		}
	}
	return nil
}

func validateArgs(protocol, iface, element string, args []Arg) error {
	names := make(map[string]bool, len(args))
	for _, arg := range args {
		if arg.Name == "" {
			return &ValidationError{Protocol: protocol, Interface: iface, Element: element, Reason: "argument name required"}
		}
		if names[arg.Name] {
			return &ValidationError{Protocol: protocol, Interface: iface, Element: element, Reason: fmt.Sprintf("duplicate argument %q", arg.Name)}
		}
		names[arg.Name] = true
		if !arg.Type.Known() {
			return &ValidationError{Protocol: protocol, Interface: iface, Element: element,
				Reason: fmt.Sprintf("argument %q has unknown type %q", arg.Name, arg.Type)}
		}
		if arg.Interface != "" && !arg.Type.References() {
			return &ValidationError{Protocol: protocol, Interface: iface, Element: element,
				Reason: fmt.Sprintf("argument %q of type %q cannot reference an interface", arg.Name, arg.Type)}
		}
		if arg.Enum != "" && !arg.Type.Enumerable() {
			return &ValidationError{Protocol: protocol, Interface: iface, Element: element,
				Reason: fmt.Sprintf("argument %q of type %q cannot reference an enum", arg.Name, arg.Type)}
		}
	}
	return nil
}
