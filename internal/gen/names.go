package gen

import "strings"

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// reservedLocals are identifiers generated bodies already use.
var reservedLocals = map[string]bool{
	"client": true, "msg": true, "args": true, "lease": true,
	"obj": true, "err": true, "ok": true,
}

// CamelCase converts a snake_case schema name to an exported identifier.
// Parts keep their spelling beyond the uppercased first letter, so digits
// survive: "entry_0" becomes "Entry0".
func CamelCase(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// paramName converts a schema argument name to a parameter identifier,
// renaming on collision with a keyword or a local the generated body uses.
func paramName(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if b.Len() == 0 && i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	id := b.String()
	if id == "" {
		id = "arg"
	}
	if goKeywords[id] || reservedLocals[id] {
		id += "_"
	}
	return id
}

func interfaceConst(iface string) string {
	return CamelCase(iface) + "Interface"
}

func versionConst(iface string) string {
	return CamelCase(iface) + "Version"
}

func opcodeConst(iface, member string) string {
	return CamelCase(iface) + CamelCase(member) + "Opcode"
}

func handlerName(iface string) string {
	return CamelCase(iface) + "Handler"
}

func enumTypeName(iface, enum string) string {
	return CamelCase(iface) + CamelCase(enum)
}

// receiverName picks the receiver identifier for methods generated on a
// bound type.
func receiverName(impl string) string {
	return strings.ToLower(impl[:1])
}
