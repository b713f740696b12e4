package testproto

import "github.com/danmuck/wiregen/wire"

// Display is the connection root. Handlers record what they receive so the
// package tests can inspect it.
type Display struct {
	id uint32

	opened []wire.NewID
	quits  int
}

// NewDisplay builds the root object Bootstrap seats at wire.DisplayID.
func NewDisplay() *Display {
	return &Display{id: wire.DisplayID}
}

func (d *Display) ID() uint32 { return d.id }

func (d *Display) Open(client *wire.Client, target wire.NewID) error {
	d.opened = append(d.opened, target)
	return nil
}

func (d *Display) Quit(client *wire.Client) error {
	d.quits++
	return nil
}

// Widget is a scene node. A non-nil fail is returned from every handler to
// drive the error propagation tests.
type Widget struct {
	id   uint32
	fail error

	calls         int
	width, height uint32
	title         string
	parent        *Surface
	input, output int
	child         wire.NewID
	axis          uint32
	destroyed     bool
}

func NewWidget(id uint32) *Widget {
	return &Widget{id: id, input: -1, output: -1}
}

func (w *Widget) ID() uint32 { return w.id }

func (w *Widget) Resize(client *wire.Client, width uint32, height uint32) error {
	w.calls++
	w.width, w.height = width, height
	return w.fail
}

func (w *Widget) SetTitle(client *wire.Client, title string) error {
	w.calls++
	w.title = title
	return w.fail
}

func (w *Widget) Place(client *wire.Client, parent *Surface) error {
	w.calls++
	w.parent = parent
	return w.fail
}

func (w *Widget) Splice(client *wire.Client, input int, output int) error {
	w.calls++
	w.input, w.output = input, output
	return w.fail
}

func (w *Widget) CreateChild(client *wire.Client, child wire.NewID) error {
	w.calls++
	w.child = child
	return w.fail
}

func (w *Widget) Scroll(client *wire.Client, axis uint32) error {
	w.calls++
	w.axis = axis
	return w.fail
}

func (w *Widget) Destroy(client *wire.Client) error {
	w.calls++
	w.destroyed = true
	return w.fail
}

// Surface is a leaf drawing area.
type Surface struct {
	id uint32

	calls int
	angle wire.Fixed
}

func NewSurface(id uint32) *Surface {
	return &Surface{id: id}
}

func (s *Surface) ID() uint32 { return s.id }

func (s *Surface) Tilt(client *wire.Client, angle wire.Fixed) error {
	s.calls++
	s.angle = angle
	return nil
}
