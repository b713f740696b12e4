package gen

import (
	"fmt"

	"github.com/danmuck/wiregen/internal/resolve"
	"github.com/danmuck/wiregen/internal/schema"
)

// argPlan carries every fragment one argument contributes to the output:
// its parameter, the dispatch statements that decode it, the event statement
// that encodes it, and its trace fragments. Static typing decisions are
// baked in here; the rendered code has no per-argument branches.
type argPlan struct {
	name       string
	paramType  string
	decode     string
	encode     string
	traceFmt   string
	traceReq   string
	traceEvent string
}

// planArg maps one argument through the codec rules. The resolution context
// supplies the bound type and declared version behind static references.
func planArg(arg schema.Arg, ctx *resolve.Context) (argPlan, error) {
	p := paramName(arg.Name)
	plan := argPlan{name: p}

	primitive := func(typ, next, trace string) {
		plan.paramType = typ
		plan.decode = fmt.Sprintf("%s, err := %s\nif err != nil {\nreturn err\n}\n", p, next)
		plan.traceFmt = trace
		plan.traceReq = p
		plan.traceEvent = p
	}

	switch arg.Type {
	case schema.TypeInt:
		primitive("int32", "args.NextInt()", "%d")
		plan.encode = fmt.Sprintf("msg.PushInt(%s)\n", p)
	case schema.TypeUint:
		primitive("uint32", "args.NextUint()", "%d")
		plan.encode = fmt.Sprintf("msg.PushUint(%s)\n", p)
	case schema.TypeFixed:
		primitive("wire.Fixed", "args.NextFixed()", "%v")
		plan.encode = fmt.Sprintf("msg.PushFixed(%s)\n", p)
	case schema.TypeString:
		primitive("string", "args.NextString()", "%q")
		plan.encode = fmt.Sprintf("msg.PushString(%s)\n", p)
	case schema.TypeArray:
		primitive("[]byte", "args.NextArray()", "%v")
		plan.encode = fmt.Sprintf("msg.PushArray(%s)\n", p)
	case schema.TypeFd:
		primitive("int", "client.NextFd()", "%d")
		plan.encode = fmt.Sprintf("msg.PushFd(%s)\n", p)
	case schema.TypeObject:
		if ctx.Static(arg) {
			impl, ok := ctx.Impl(arg.Interface)
			if !ok {
				return argPlan{}, fmt.Errorf("gen: argument %q references unbound interface %q", arg.Name, arg.Interface)
			}
			iface := interfaceConst(arg.Interface)
			plan.paramType = "*" + impl
			plan.decode = fmt.Sprintf(
				"%[1]sID, err := args.NextObject()\nif err != nil {\nreturn err\n}\n"+
					"%[1]sLease, err := client.AcquireTyped(%[1]sID, %[2]s)\nif err != nil {\nreturn err\n}\n"+
					"defer %[1]sLease.Release()\n"+
					"%[1]s, ok := %[1]sLease.Object().(*%[3]s)\nif !ok {\n"+
					"return &wire.InvalidObjectError{ID: %[1]sLease.ID, Want: %[2]s, Got: %[1]sLease.Interface}\n}\n",
				p, iface, impl)
			plan.encode = fmt.Sprintf("msg.PushUint(%s.ID())\n", p)
			plan.traceFmt = "%d"
			plan.traceReq = p + "ID"
			plan.traceEvent = p + ".ID()"
		} else {
			plan.paramType = "*wire.Lease"
			plan.decode = fmt.Sprintf(
				"%[1]sID, err := args.NextObject()\nif err != nil {\nreturn err\n}\n"+
					"%[1]s, err := client.Acquire(%[1]sID)\nif err != nil {\nreturn err\n}\n"+
					"defer %[1]s.Release()\n",
				p)
			plan.encode = fmt.Sprintf("msg.PushUint(%s.ID)\n", p)
			plan.traceFmt = "%d"
			plan.traceReq = p + ".ID"
			plan.traceEvent = p + ".ID"
		}
	case schema.TypeNewID:
		plan.paramType = "wire.NewID"
		register := fmt.Sprintf(
			"if err := client.Register(%[1]s.ID, %[1]s.Interface, %[1]s.Version); err != nil {\nreturn err\n}\n", p)
		if ctx.Static(arg) {
			if _, ok := ctx.Impl(arg.Interface); !ok {
				return argPlan{}, fmt.Errorf("gen: argument %q references unbound interface %q", arg.Name, arg.Interface)
			}
			plan.decode = fmt.Sprintf(
				"%s, err := args.NextNewID(%s, %s)\nif err != nil {\nreturn err\n}\n",
				p, interfaceConst(arg.Interface), versionConst(arg.Interface)) + register
			plan.encode = fmt.Sprintf("msg.PushNewID(%s)\n", p)
			plan.traceFmt = "dyn " + arg.Interface
		} else {
			plan.decode = fmt.Sprintf(
				"%s, err := args.NextDynamicNewID()\nif err != nil {\nreturn err\n}\n", p) + register
			plan.encode = fmt.Sprintf("msg.PushDynamicNewID(%s)\n", p)
			plan.traceFmt = "dyn %s"
			plan.traceReq = p + ".Interface"
			plan.traceEvent = p + ".Interface"
		}
	default:
		return argPlan{}, fmt.Errorf("gen: argument %q has unknown type %q", arg.Name, arg.Type)
	}
	return plan, nil
}

// planArgs maps a message's arguments in declaration order.
func planArgs(args []schema.Arg, ctx *resolve.Context) ([]argPlan, error) {
	plans := make([]argPlan, 0, len(args))
	for _, arg := range args {
		plan, err := planArg(arg, ctx)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// traceCall renders the Tracef invocation for one message, or "" when the
// message has no trace value beyond its name.
func traceCall(direction, iface string, id string, member string, plans []argPlan, event bool) string {
	format := fmt.Sprintf("%s %s@%%d.%s(", direction, iface, member)
	callArgs := id
	for i, plan := range plans {
		if i > 0 {
			format += ", "
		}
		format += plan.traceFmt
		arg := plan.traceReq
		if event {
			arg = plan.traceEvent
		}
		if arg != "" {
			callArgs += ", " + arg
		}
	}
	format += ")"
	return fmt.Sprintf("if wire.TraceEnabled() {\nwire.Tracef(%q, %s)\n}\n", format, callArgs)
}
