package gen

import (
	"bytes"
	"errors"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/danmuck/wiregen/internal/resolve"
	"github.com/danmuck/wiregen/internal/schema"
)

func testProtocol() *schema.Protocol {
	return &schema.Protocol{
		Name:    "widgetry",
		Summary: "toolkit scene protocol",
		Interfaces: []schema.Interface{
			{
				Name:    "display",
				Summary: "connection root",
				Version: 1,
				Requests: []schema.Request{
					{Name: "open", Args: []schema.Arg{
						{Name: "target", Type: schema.TypeNewID},
					}},
					{Name: "quit", Destructor: true},
				},
				Events: []schema.Event{
					{Name: "ping", Args: []schema.Arg{
						{Name: "serial", Type: schema.TypeUint},
					}},
				},
			},
			{
				Name:    "widget",
				Version: 2,
				Enums: []schema.Enum{
					{Name: "axis", Entries: []schema.Entry{
						{Name: "vertical", Value: 0},
						{Name: "horizontal", Value: 1},
					}},
					{Name: "mode", Entries: []schema.Entry{
						{Name: "normal", Value: 0},
						{Name: "tilted", Value: 1},
						{Name: "default", Value: 0},
						{Name: "0", Value: 2},
					}},
				},
				Requests: []schema.Request{
					{Name: "resize", Args: []schema.Arg{
						{Name: "width", Type: schema.TypeInt},
						{Name: "height", Type: schema.TypeInt},
					}},
					{Name: "set_title", Args: []schema.Arg{
						{Name: "title", Type: schema.TypeString},
					}},
					{Name: "attach", Args: []schema.Arg{
						{Name: "pipe", Type: schema.TypeFd},
					}},
					{Name: "place", Args: []schema.Arg{
						{Name: "parent", Type: schema.TypeObject, Interface: "surface"},
					}},
					{Name: "observe", Args: []schema.Arg{
						{Name: "watched", Type: schema.TypeObject},
					}},
					{Name: "create_child", Args: []schema.Arg{
						{Name: "child", Type: schema.TypeNewID, Interface: "widget"},
					}},
					{Name: "scroll", Args: []schema.Arg{
						{Name: "axis", Type: schema.TypeUint, Enum: "axis"},
					}},
					{Name: "destroy", Destructor: true},
				},
				Events: []schema.Event{
					{Name: "resized", Args: []schema.Arg{
						{Name: "width", Type: schema.TypeInt},
						{Name: "height", Type: schema.TypeInt},
					}},
				},
			},
			{
				Name:    "surface",
				Version: 1,
				Requests: []schema.Request{
					{Name: "tilt", Args: []schema.Arg{
						{Name: "axis", Type: schema.TypeInt, Enum: "widget.axis"},
					}},
				},
				Events: []schema.Event{
					{Name: "entered"},
				},
			},
			{
				Name:    "pointer",
				Version: 1,
				Events: []schema.Event{
					{Name: "moved", Args: []schema.Arg{
						{Name: "x", Type: schema.TypeFixed},
						{Name: "y", Type: schema.TypeFixed},
					}},
				},
			},
		},
	}
}

func testBindings() resolve.Bindings {
	return resolve.Bindings{
		Package: "widgetry",
		Binds: []resolve.Binding{
			{Interface: "display", Impl: "Display", Display: true},
			{Interface: "widget", Impl: "Widget"},
			{Interface: "surface", Impl: "Surface"},
			{Interface: "pointer", Impl: "Pointer"},
		},
	}
}

func testContext(t *testing.T) *resolve.Context {
	t.Helper()
	ctx, err := resolve.Resolve([]*schema.Protocol{testProtocol()}, testBindings())
	if err != nil {
		t.Fatalf("resolve fixture: %v", err)
	}
	return ctx
}

func generate(t *testing.T) []byte {
	t.Helper()
	src, err := Generate([]*schema.Protocol{testProtocol()}, testContext(t))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return src
}

// flatten collapses all whitespace runs so assertions survive gofmt's
// column alignment.
func flatten(src []byte) string {
	return strings.Join(strings.Fields(string(src)), " ")
}

func TestGenerateParses(t *testing.T) {
	src := generate(t)
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "widgetry.gen.go", src, parser.AllErrors); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	if !bytes.Equal(generate(t), generate(t)) {
		t.Fatal("two runs over the same input differ")
	}
}

func TestGenerateConstants(t *testing.T) {
	src := flatten(generate(t))
	for _, want := range []string{
		`// Code generated by wiregen; DO NOT EDIT.`,
		`package widgetry`,
		`import ( "strconv" "github.com/danmuck/wiregen/wire" )`,
		`DisplayInterface = "display"`,
		`DisplayVersion uint32 = 1`,
		`WidgetInterface = "widget"`,
		`WidgetVersion uint32 = 2`,
		`WidgetResizeOpcode uint16 = 0`,
		`WidgetSetTitleOpcode uint16 = 1`,
		`WidgetDestroyOpcode uint16 = 7`,
		`WidgetResizedOpcode uint16 = 0`,
		`DisplayPingOpcode uint16 = 0`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestGenerateContracts(t *testing.T) {
	src := flatten(generate(t))
	for _, want := range []string{
		`type WidgetHandler interface { wire.Object`,
		`Resize(client *wire.Client, width int32, height int32) error`,
		`SetTitle(client *wire.Client, title string) error`,
		`Attach(client *wire.Client, pipe int) error`,
		`Place(client *wire.Client, parent *Surface) error`,
		`Observe(client *wire.Client, watched *wire.Lease) error`,
		`CreateChild(client *wire.Client, child wire.NewID) error`,
		`Scroll(client *wire.Client, axis uint32) error`,
		`Destroy(client *wire.Client) error`,
		`var _ WidgetHandler = (*Widget)(nil)`,
		`Tilt(client *wire.Client, axis int32) error`,
		`Open(client *wire.Client, target wire.NewID) error`,
		`var _ PointerHandler = (*Pointer)(nil)`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestGenerateEnums(t *testing.T) {
	src := flatten(generate(t))
	for _, want := range []string{
		`type WidgetAxis uint32`,
		`WidgetAxisVertical WidgetAxis = 0`,
		`WidgetAxisHorizontal WidgetAxis = 1`,
		`func NewWidgetAxis(value uint32) (WidgetAxis, error)`,
		`return 0, &wire.NoVariantError{Enum: "widget.axis", Value: value}`,
		`func (e WidgetAxis) String() string`,
		`return "vertical"`,
		`func NewWidgetMode(value uint32) (WidgetMode, error)`,
		// The type prefix keeps the numeric entry name a legal identifier.
		`WidgetMode0 WidgetMode = 2`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
	// mode aliases normal and default to 0; the switch carries each value
	// once.
	if strings.Contains(src, "case 0, 1, 0:") {
		t.Error("enum constructor repeats an aliased value")
	}
}

func TestGenerateEvents(t *testing.T) {
	src := flatten(generate(t))
	for _, want := range []string{
		`func (w *Widget) Resized(client *wire.Client, width int32, height int32) error`,
		`msg := wire.NewMessage(w.ID(), WidgetResizedOpcode)`,
		`msg.PushInt(width)`,
		`wire.Tracef("<- widget@%d.resized(%d, %d)", w.ID(), width, height)`,
		`return client.Send(msg)`,
		`func (d *Display) Ping(client *wire.Client, serial uint32) error`,
		`func (s *Surface) Entered(client *wire.Client) error`,
		`func (p *Pointer) Moved(client *wire.Client, x wire.Fixed, y wire.Fixed) error`,
		`msg.PushFixed(x)`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestGenerateDispatch(t *testing.T) {
	src := flatten(generate(t))
	for _, want := range []string{
		`func DispatchWidget(lease *wire.Lease, client *wire.Client, msg *wire.Message) error`,
		`obj, ok := lease.Object().(*Widget)`,
		`return &wire.InvalidObjectError{ID: lease.ID, Want: WidgetInterface, Got: lease.Interface}`,
		`switch msg.Opcode`,
		`case WidgetResizeOpcode: args := msg.Args()`,
		`wire.Tracef("-> widget@%d.resize(%d, %d)", lease.ID, width, height)`,
		`return obj.Resize(client, width, height)`,
		// fd arrives out of band: no cursor for an fd-only request.
		`case WidgetAttachOpcode: pipe, err := client.NextFd()`,
		`parentLease, err := client.AcquireTyped(parentID, SurfaceInterface)`,
		`child, err := args.NextNewID(WidgetInterface, WidgetVersion)`,
		`target, err := args.NextDynamicNewID()`,
		`if err := client.Register(target.ID, target.Interface, target.Version); err != nil`,
		`if err := obj.Destroy(client); err != nil { return err } client.Unregister(lease.ID) return nil`,
		`default: return &wire.InvalidOpcodeError{ObjectID: msg.Object, Opcode: msg.Opcode, Interface: WidgetInterface}`,
		`func DispatchPointer(lease *wire.Lease, client *wire.Client, msg *wire.Message) error { if _, ok := lease.Object().(*Pointer); !ok {`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestGenerateEntryPoints(t *testing.T) {
	src := flatten(generate(t))
	for _, want := range []string{
		`func Dispatch(client *wire.Client, msg *wire.Message) error { lease, err := client.Acquire(msg.Object) if err != nil { return err } defer lease.Release()`,
		`switch lease.Interface`,
		`case WidgetInterface: return DispatchWidget(lease, client, msg)`,
		`case SurfaceInterface: return DispatchSurface(lease, client, msg)`,
		`func Bootstrap(client *wire.Client, root *Display) error`,
		`if err := client.Register(wire.DisplayID, DisplayInterface, DisplayVersion); err != nil`,
		`return client.Fill(wire.DisplayID, root)`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestGenerateNameCollision(t *testing.T) {
	p := testProtocol()
	p.Interfaces[1].Requests = append(p.Interfaces[1].Requests, schema.Request{Name: "set__title"})
	ctx, err := resolve.Resolve([]*schema.Protocol{p}, testBindings())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	_, err = Generate([]*schema.Protocol{p}, ctx)
	var collision *NameCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("err = %v, want NameCollisionError", err)
	}
	if collision.Kind != "method" || collision.Name != "SetTitle" || collision.Interface != "widget" {
		t.Errorf("collision = %+v", collision)
	}
}

func TestCheckNamesKinds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *schema.Protocol, b *resolve.Bindings)
		kind   string
	}{
		{
			name: "interface",
			mutate: func(p *schema.Protocol, b *resolve.Bindings) {
				p.Interfaces = append(p.Interfaces, schema.Interface{Name: "widget_", Version: 1})
				b.Binds = append(b.Binds, resolve.Binding{Interface: "widget_", Impl: "Widget2"})
			},
			kind: "interface",
		},
		{
			name: "implementation",
			mutate: func(p *schema.Protocol, b *resolve.Bindings) {
				for i := range b.Binds {
					if b.Binds[i].Interface == "surface" {
						b.Binds[i].Impl = "Widget"
					}
				}
			},
			kind: "implementation",
		},
		{
			name: "method across kinds",
			mutate: func(p *schema.Protocol, b *resolve.Bindings) {
				p.Interfaces[1].Events = append(p.Interfaces[1].Events, schema.Event{Name: "set__title"})
			},
			kind: "method",
		},
		{
			name: "method shadowing ID",
			mutate: func(p *schema.Protocol, b *resolve.Bindings) {
				p.Interfaces[1].Requests = append(p.Interfaces[1].Requests, schema.Request{Name: "i_d"})
			},
			kind: "method",
		},
		{
			name: "parameter",
			mutate: func(p *schema.Protocol, b *resolve.Bindings) {
				p.Interfaces[1].Requests = append(p.Interfaces[1].Requests, schema.Request{
					Name: "move",
					Args: []schema.Arg{
						{Name: "a_b", Type: schema.TypeInt},
						{Name: "a__b", Type: schema.TypeInt},
					},
				})
			},
			kind: "parameter",
		},
		{
			name: "enum",
			mutate: func(p *schema.Protocol, b *resolve.Bindings) {
				p.Interfaces[1].Enums = append(p.Interfaces[1].Enums, schema.Enum{Name: "axis_"})
			},
			kind: "enum",
		},
		{
			name: "enum entry",
			mutate: func(p *schema.Protocol, b *resolve.Bindings) {
				p.Interfaces[1].Enums[0].Entries = append(p.Interfaces[1].Enums[0].Entries,
					schema.Entry{Name: "horizontal_", Value: 2})
			},
			kind: "enum entry",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := testProtocol()
			b := testBindings()
			tc.mutate(p, &b)
			ctx, err := resolve.Resolve([]*schema.Protocol{p}, b)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			err = checkNames(ctx)
			var collision *NameCollisionError
			if !errors.As(err, &collision) {
				t.Fatalf("err = %v, want NameCollisionError", err)
			}
			if collision.Kind != tc.kind {
				t.Errorf("Kind = %q, want %q", collision.Kind, tc.kind)
			}
		})
	}
}
