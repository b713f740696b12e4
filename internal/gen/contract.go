package gen

import (
	"fmt"
	"strings"

	"github.com/danmuck/wiregen/internal/resolve"
	"github.com/danmuck/wiregen/internal/schema"
)

// writeInterface emits everything one bound interface contributes besides
// dispatch: name and version constants, opcode constants, the contract, the
// enum types, and the event methods on the bound type.
func writeInterface(f *File, iface *schema.Interface, ctx *resolve.Context) error {
	impl, ok := ctx.Impl(iface.Name)
	if !ok {
		return fmt.Errorf("gen: interface %q has no binding", iface.Name)
	}

	f.Printf("\n// %s interface, version %d.\n", iface.Name, iface.Version)
	f.Print("const (\n")
	f.Printf("%s = %q\n", interfaceConst(iface.Name), iface.Name)
	f.Printf("%s uint32 = %d\n", versionConst(iface.Name), iface.Version)
	f.Print(")\n")

	if len(iface.Requests) > 0 {
		f.Printf("\n// %s request opcodes.\n", iface.Name)
		f.Print("const (\n")
		for opcode, req := range iface.Requests {
			f.Printf("%s uint16 = %d\n", opcodeConst(iface.Name, req.Name), opcode)
		}
		f.Print(")\n")
	}
	if len(iface.Events) > 0 {
		f.Printf("\n// %s event opcodes.\n", iface.Name)
		f.Print("const (\n")
		for opcode, ev := range iface.Events {
			f.Printf("%s uint16 = %d\n", opcodeConst(iface.Name, ev.Name), opcode)
		}
		f.Print(")\n")
	}

	if err := writeContract(f, iface, impl, ctx); err != nil {
		return err
	}
	for _, enum := range iface.Enums {
		writeEnum(f, iface.Name, enum)
	}
	for opcode, ev := range iface.Events {
		if err := writeEvent(f, iface, uint16(opcode), ev, impl, ctx); err != nil {
			return err
		}
	}
	return nil
}

func writeContract(f *File, iface *schema.Interface, impl string, ctx *resolve.Context) error {
	f.Print("\n")
	if iface.Summary != "" {
		f.Printf("// %s is the contract for %s objects: %s.\n", handlerName(iface.Name), iface.Name, strings.TrimSuffix(iface.Summary, "."))
	} else {
		f.Printf("// %s is the contract for %s objects.\n", handlerName(iface.Name), iface.Name)
	}
	f.Printf("// Event methods are generated on %s itself.\n", impl)
	f.Printf("type %s interface {\n", handlerName(iface.Name))
	f.Print("wire.Object\n")
	for _, req := range iface.Requests {
		plans, err := planArgs(req.Args, ctx)
		if err != nil {
			return err
		}
		f.Print("\n")
		writeDoc(f, CamelCase(req.Name), req.Summary, "", req.Since)
		f.Printf("%s(%s) error\n", CamelCase(req.Name), signature(plans))
	}
	f.Print("}\n")
	f.Printf("\nvar _ %s = (*%s)(nil)\n", handlerName(iface.Name), impl)
	return nil
}

func writeEnum(f *File, iface string, enum schema.Enum) {
	typ := enumTypeName(iface, enum.Name)
	qualified := iface + "." + enum.Name

	f.Print("\n")
	if enum.Summary != "" {
		f.Printf("// %s is the %s enum: %s.\n", typ, qualified, strings.TrimSuffix(enum.Summary, "."))
	} else {
		f.Printf("// %s is the %s enum.\n", typ, qualified)
	}
	if enum.Bitfield {
		f.Print("// Entries combine as a bitfield.\n")
	}
	f.Printf("type %s uint32\n", typ)

	if len(enum.Entries) == 0 {
		return
	}

	f.Print("\nconst (\n")
	for _, entry := range enum.Entries {
		f.Printf("%s%s %s = %d", typ, CamelCase(entry.Name), typ, entry.Value)
		if entry.Summary != "" {
			f.Printf(" // %s", entry.Summary)
		}
		f.Print("\n")
	}
	f.Print(")\n")

	// Bitfield enums repeat values; the constructor and String switch on
	// each distinct value once.
	seen := make(map[uint32]bool, len(enum.Entries))
	var distinct []schema.Entry
	for _, entry := range enum.Entries {
		if seen[entry.Value] {
			continue
		}
		seen[entry.Value] = true
		distinct = append(distinct, entry)
	}

	values := make([]string, len(distinct))
	for i, entry := range distinct {
		values[i] = fmt.Sprint(entry.Value)
	}
	f.Printf("\n// New%s checks value against the declared %s entries.\n", typ, qualified)
	f.Printf("func New%s(value uint32) (%s, error) {\n", typ, typ)
	f.Print("switch value {\n")
	f.Printf("case %s:\n", strings.Join(values, ", "))
	f.Printf("return %s(value), nil\n", typ)
	f.Print("}\n")
	f.Printf("return 0, &wire.NoVariantError{Enum: %q, Value: value}\n", qualified)
	f.Print("}\n")

	f.Import("strconv")
	f.Printf("\nfunc (e %s) String() string {\n", typ)
	f.Print("switch e {\n")
	for _, entry := range distinct {
		f.Printf("case %d:\n", entry.Value)
		f.Printf("return %q\n", entry.Name)
	}
	f.Print("}\n")
	f.Printf("return %q + strconv.FormatUint(uint64(e), 10) + \")\"\n", qualified+"(")
	f.Print("}\n")
}

func writeEvent(f *File, iface *schema.Interface, opcode uint16, ev schema.Event, impl string, ctx *resolve.Context) error {
	plans, err := planArgs(ev.Args, ctx)
	if err != nil {
		return err
	}
	recv := receiverName(impl)
	for _, plan := range plans {
		if plan.name == recv {
			recv += "_"
		}
	}

	f.Print("\n")
	writeDoc(f, CamelCase(ev.Name), ev.Summary, ev.Description, ev.Since)
	f.Printf("func (%s *%s) %s(%s) error {\n", recv, impl, CamelCase(ev.Name), signature(plans))
	f.Printf("msg := wire.NewMessage(%s.ID(), %s)\n", recv, opcodeConst(iface.Name, ev.Name))
	for _, plan := range plans {
		f.Print(plan.encode)
	}
	f.Print(traceCall("<-", iface.Name, recv+".ID()", ev.Name, plans, true))
	f.Print("return client.Send(msg)\n")
	f.Print("}\n")
	return nil
}

func signature(plans []argPlan) string {
	var b strings.Builder
	b.WriteString("client *wire.Client")
	for _, plan := range plans {
		b.WriteString(", ")
		b.WriteString(plan.name)
		b.WriteByte(' ')
		b.WriteString(plan.paramType)
	}
	return b.String()
}

func writeDoc(f *File, name, summary, description string, since uint32) {
	wrote := false
	if summary != "" {
		f.Printf("// %s: %s.\n", name, strings.TrimSuffix(summary, "."))
		wrote = true
	}
	if description != "" {
		if wrote {
			f.Print("//\n")
		}
		for _, line := range strings.Split(description, "\n") {
			line = strings.TrimRight(line, " \t")
			if line == "" {
				f.Print("//\n")
				continue
			}
			f.Printf("// %s\n", line)
		}
		wrote = true
	}
	if since > 1 {
		if wrote {
			f.Print("//\n")
		}
		f.Printf("// Since version %d.\n", since)
	}
}
