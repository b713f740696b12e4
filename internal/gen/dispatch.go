package gen

import (
	"fmt"

	"github.com/danmuck/wiregen/internal/resolve"
	"github.com/danmuck/wiregen/internal/schema"
)

// writeDispatch emits the opcode switch for one bound interface. Arguments
// decode strictly in declaration order; the first failure returns before
// the handler runs. Argument leases release on every exit path.
func writeDispatch(f *File, iface *schema.Interface, ctx *resolve.Context) error {
	impl, ok := ctx.Impl(iface.Name)
	if !ok {
		return fmt.Errorf("gen: interface %q has no binding", iface.Name)
	}
	name := "Dispatch" + CamelCase(iface.Name)
	invalidOpcode := fmt.Sprintf(
		"return &wire.InvalidOpcodeError{ObjectID: msg.Object, Opcode: msg.Opcode, Interface: %s}\n",
		interfaceConst(iface.Name))

	f.Printf("\n// %s routes one message to the %s bound to the leased object.\n", name, impl)
	f.Printf("func %s(lease *wire.Lease, client *wire.Client, msg *wire.Message) error {\n", name)

	if len(iface.Requests) == 0 {
		f.Printf("if _, ok := lease.Object().(*%s); !ok {\n", impl)
		f.Printf("return &wire.InvalidObjectError{ID: lease.ID, Want: %s, Got: lease.Interface}\n", interfaceConst(iface.Name))
		f.Print("}\n")
		f.Print(invalidOpcode)
		f.Print("}\n")
		return nil
	}

	f.Printf("obj, ok := lease.Object().(*%s)\n", impl)
	f.Print("if !ok {\n")
	f.Printf("return &wire.InvalidObjectError{ID: lease.ID, Want: %s, Got: lease.Interface}\n", interfaceConst(iface.Name))
	f.Print("}\n")
	f.Print("switch msg.Opcode {\n")
	for _, req := range iface.Requests {
		plans, err := planArgs(req.Args, ctx)
		if err != nil {
			return err
		}
		f.Printf("case %s:\n", opcodeConst(iface.Name, req.Name))
		if needsCursor(req.Args) {
			f.Print("args := msg.Args()\n")
		}
		for _, plan := range plans {
			f.Print(plan.decode)
		}
		f.Print(traceCall("->", iface.Name, "lease.ID", req.Name, plans, false))
		call := fmt.Sprintf("obj.%s(%s)", CamelCase(req.Name), callArgs(plans))
		if req.Destructor {
			f.Printf("if err := %s; err != nil {\nreturn err\n}\n", call)
			f.Print("client.Unregister(lease.ID)\n")
			f.Print("return nil\n")
		} else {
			f.Printf("return %s\n", call)
		}
	}
	f.Print("default:\n")
	f.Print(invalidOpcode)
	f.Print("}\n")
	f.Print("}\n")
	return nil
}

// writeProtocolDispatch emits the connection-level entry point: acquire the
// target object, route on its registered interface, release on every path.
func writeProtocolDispatch(f *File, ctx *resolve.Context) {
	f.Print("\n// Dispatch acquires the object msg addresses and routes the message by\n")
	f.Print("// the interface it was registered under.\n")
	f.Print("func Dispatch(client *wire.Client, msg *wire.Message) error {\n")
	f.Print("lease, err := client.Acquire(msg.Object)\n")
	f.Print("if err != nil {\nreturn err\n}\n")
	f.Print("defer lease.Release()\n")
	f.Print("switch lease.Interface {\n")
	for _, name := range ctx.Targets() {
		f.Printf("case %s:\n", interfaceConst(name))
		f.Printf("return Dispatch%s(lease, client, msg)\n", CamelCase(name))
	}
	f.Print("default:\n")
	f.Print("return &wire.InvalidOpcodeError{ObjectID: msg.Object, Opcode: msg.Opcode, Interface: lease.Interface}\n")
	f.Print("}\n")
	f.Print("}\n")
}

// writeBootstrap emits the helper that seats the display object at the
// conventional bootstrap id.
func writeBootstrap(f *File, ctx *resolve.Context) error {
	impl, ok := ctx.Impl(ctx.Display)
	if !ok {
		return fmt.Errorf("gen: display interface %q has no binding", ctx.Display)
	}
	f.Printf("\n// Bootstrap registers root as the %s object every connection starts\n", ctx.Display)
	f.Print("// with, at wire.DisplayID.\n")
	f.Printf("func Bootstrap(client *wire.Client, root *%s) error {\n", impl)
	f.Printf("if err := client.Register(wire.DisplayID, %s, %s); err != nil {\nreturn err\n}\n",
		interfaceConst(ctx.Display), versionConst(ctx.Display))
	f.Print("return client.Fill(wire.DisplayID, root)\n")
	f.Print("}\n")
	return nil
}

func callArgs(plans []argPlan) string {
	s := "client"
	for _, plan := range plans {
		s += ", " + plan.name
	}
	return s
}

// needsCursor reports whether any argument reads from the message body.
// File descriptors arrive out of band, so an fd-only request never touches
// the cursor.
func needsCursor(args []schema.Arg) bool {
	for _, arg := range args {
		if arg.Type != schema.TypeFd {
			return true
		}
	}
	return false
}
