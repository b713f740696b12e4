package gen

import (
	"strings"
	"testing"

	"github.com/danmuck/wiregen/internal/schema"
)

func TestPlanArgPrimitives(t *testing.T) {
	ctx := testContext(t)
	cases := []struct {
		arg       schema.Arg
		paramType string
		decode    string
		encode    string
		traceFmt  string
	}{
		{
			arg:       schema.Arg{Name: "width", Type: schema.TypeInt},
			paramType: "int32",
			decode:    "width, err := args.NextInt()\nif err != nil {\nreturn err\n}\n",
			encode:    "msg.PushInt(width)\n",
			traceFmt:  "%d",
		},
		{
			arg:       schema.Arg{Name: "serial", Type: schema.TypeUint},
			paramType: "uint32",
			decode:    "serial, err := args.NextUint()\nif err != nil {\nreturn err\n}\n",
			encode:    "msg.PushUint(serial)\n",
			traceFmt:  "%d",
		},
		{
			arg:       schema.Arg{Name: "opacity", Type: schema.TypeFixed},
			paramType: "wire.Fixed",
			decode:    "opacity, err := args.NextFixed()\nif err != nil {\nreturn err\n}\n",
			encode:    "msg.PushFixed(opacity)\n",
			traceFmt:  "%v",
		},
		{
			arg:       schema.Arg{Name: "title", Type: schema.TypeString},
			paramType: "string",
			decode:    "title, err := args.NextString()\nif err != nil {\nreturn err\n}\n",
			encode:    "msg.PushString(title)\n",
			traceFmt:  "%q",
		},
		{
			arg:       schema.Arg{Name: "data", Type: schema.TypeArray},
			paramType: "[]byte",
			decode:    "data, err := args.NextArray()\nif err != nil {\nreturn err\n}\n",
			encode:    "msg.PushArray(data)\n",
			traceFmt:  "%v",
		},
		{
			arg:       schema.Arg{Name: "pipe", Type: schema.TypeFd},
			paramType: "int",
			decode:    "pipe, err := client.NextFd()\nif err != nil {\nreturn err\n}\n",
			encode:    "msg.PushFd(pipe)\n",
			traceFmt:  "%d",
		},
	}
	for _, tc := range cases {
		plan, err := planArg(tc.arg, ctx)
		if err != nil {
			t.Fatalf("planArg(%s): %v", tc.arg.Type, err)
		}
		if plan.paramType != tc.paramType {
			t.Errorf("%s: paramType = %q, want %q", tc.arg.Type, plan.paramType, tc.paramType)
		}
		if plan.decode != tc.decode {
			t.Errorf("%s: decode = %q, want %q", tc.arg.Type, plan.decode, tc.decode)
		}
		if plan.encode != tc.encode {
			t.Errorf("%s: encode = %q, want %q", tc.arg.Type, plan.encode, tc.encode)
		}
		if plan.traceFmt != tc.traceFmt {
			t.Errorf("%s: traceFmt = %q, want %q", tc.arg.Type, plan.traceFmt, tc.traceFmt)
		}
	}
}

func TestPlanArgStaticObject(t *testing.T) {
	ctx := testContext(t)
	plan, err := planArg(schema.Arg{Name: "parent", Type: schema.TypeObject, Interface: "surface"}, ctx)
	if err != nil {
		t.Fatalf("planArg: %v", err)
	}
	if plan.paramType != "*Surface" {
		t.Errorf("paramType = %q, want *Surface", plan.paramType)
	}
	for _, want := range []string{
		"parentID, err := args.NextObject()",
		"parentLease, err := client.AcquireTyped(parentID, SurfaceInterface)",
		"defer parentLease.Release()",
		"parent, ok := parentLease.Object().(*Surface)",
		"&wire.InvalidObjectError{ID: parentLease.ID, Want: SurfaceInterface, Got: parentLease.Interface}",
	} {
		if !strings.Contains(plan.decode, want) {
			t.Errorf("decode missing %q:\n%s", want, plan.decode)
		}
	}
	if plan.encode != "msg.PushUint(parent.ID())\n" {
		t.Errorf("encode = %q", plan.encode)
	}
	if plan.traceReq != "parentID" || plan.traceEvent != "parent.ID()" {
		t.Errorf("trace args = %q, %q", plan.traceReq, plan.traceEvent)
	}
}

func TestPlanArgDynamicObject(t *testing.T) {
	ctx := testContext(t)
	plan, err := planArg(schema.Arg{Name: "watched", Type: schema.TypeObject}, ctx)
	if err != nil {
		t.Fatalf("planArg: %v", err)
	}
	if plan.paramType != "*wire.Lease" {
		t.Errorf("paramType = %q, want *wire.Lease", plan.paramType)
	}
	for _, want := range []string{
		"watchedID, err := args.NextObject()",
		"watched, err := client.Acquire(watchedID)",
		"defer watched.Release()",
	} {
		if !strings.Contains(plan.decode, want) {
			t.Errorf("decode missing %q:\n%s", want, plan.decode)
		}
	}
	if plan.encode != "msg.PushUint(watched.ID)\n" {
		t.Errorf("encode = %q", plan.encode)
	}
}

func TestPlanArgNewID(t *testing.T) {
	ctx := testContext(t)

	static, err := planArg(schema.Arg{Name: "child", Type: schema.TypeNewID, Interface: "widget"}, ctx)
	if err != nil {
		t.Fatalf("planArg static: %v", err)
	}
	if static.paramType != "wire.NewID" {
		t.Errorf("static paramType = %q", static.paramType)
	}
	for _, want := range []string{
		"child, err := args.NextNewID(WidgetInterface, WidgetVersion)",
		"if err := client.Register(child.ID, child.Interface, child.Version); err != nil",
	} {
		if !strings.Contains(static.decode, want) {
			t.Errorf("static decode missing %q:\n%s", want, static.decode)
		}
	}
	if static.encode != "msg.PushNewID(child)\n" {
		t.Errorf("static encode = %q", static.encode)
	}
	if static.traceFmt != "dyn widget" {
		t.Errorf("static traceFmt = %q", static.traceFmt)
	}

	dyn, err := planArg(schema.Arg{Name: "target", Type: schema.TypeNewID}, ctx)
	if err != nil {
		t.Fatalf("planArg dynamic: %v", err)
	}
	for _, want := range []string{
		"target, err := args.NextDynamicNewID()",
		"if err := client.Register(target.ID, target.Interface, target.Version); err != nil",
	} {
		if !strings.Contains(dyn.decode, want) {
			t.Errorf("dynamic decode missing %q:\n%s", want, dyn.decode)
		}
	}
	if dyn.encode != "msg.PushDynamicNewID(target)\n" {
		t.Errorf("dynamic encode = %q", dyn.encode)
	}
	if dyn.traceFmt != "dyn %s" || dyn.traceReq != "target.Interface" {
		t.Errorf("dynamic trace = %q, %q", dyn.traceFmt, dyn.traceReq)
	}
}

func TestPlanArgRejectsUnknown(t *testing.T) {
	ctx := testContext(t)
	if _, err := planArg(schema.Arg{Name: "x", Type: "blob"}, ctx); err == nil {
		t.Fatal("unknown type accepted")
	}
	if _, err := planArg(schema.Arg{Name: "p", Type: schema.TypeObject, Interface: "ghost"}, ctx); err == nil {
		t.Fatal("unbound static reference accepted")
	}
	if _, err := planArg(schema.Arg{Name: "p", Type: schema.TypeNewID, Interface: "ghost"}, ctx); err == nil {
		t.Fatal("unbound static new_id accepted")
	}
}

func TestTraceCall(t *testing.T) {
	ctx := testContext(t)
	plans, err := planArgs([]schema.Arg{
		{Name: "width", Type: schema.TypeInt},
		{Name: "title", Type: schema.TypeString},
	}, ctx)
	if err != nil {
		t.Fatalf("planArgs: %v", err)
	}

	got := traceCall("->", "widget", "lease.ID", "resize", plans, false)
	want := "if wire.TraceEnabled() {\nwire.Tracef(\"-> widget@%d.resize(%d, %q)\", lease.ID, width, title)\n}\n"
	if got != want {
		t.Errorf("request trace:\n got %q\nwant %q", got, want)
	}

	got = traceCall("<-", "widget", "w.ID()", "resized", nil, true)
	want = "if wire.TraceEnabled() {\nwire.Tracef(\"<- widget@%d.resized()\", w.ID())\n}\n"
	if got != want {
		t.Errorf("event trace:\n got %q\nwant %q", got, want)
	}
}
