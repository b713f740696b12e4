package wire

import (
	"encoding/binary"
	"io"
)

// HeaderSize is the fixed message header length in bytes.
const HeaderSize = 8

// maxMessageSize bounds one framed message; the header carries the size in
// sixteen bits.
const maxMessageSize = 1<<16 - 1

// NewID introduces a new object id, together with the interface and version
// that type it. For statically typed new-ids both are known at compile time;
// for dynamic new-ids the client transmits them.
type NewID struct {
	ID        uint32
	Interface string
	Version   uint32
}

// Message is one protocol message addressed to an object. Arguments are
// appended with the Push methods in declaration order and read back through
// a Cursor in the same order. File descriptors ride out of band and never
// enter the byte payload.
type Message struct {
	Object uint32
	Opcode uint16

	data []byte
	fds  []int
}

// NewMessage allocates an empty message for the given receiver and opcode.
func NewMessage(object uint32, opcode uint16) *Message {
	return &Message{Object: object, Opcode: opcode}
}

// PushInt appends a signed 32-bit argument.
func (m *Message) PushInt(v int32) {
	m.PushUint(uint32(v))
}

// PushUint appends an unsigned 32-bit argument.
func (m *Message) PushUint(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	m.data = append(m.data, buf[:]...)
}

// PushFixed appends a signed 24.8 fixed-point argument.
func (m *Message) PushFixed(v Fixed) {
	m.PushUint(uint32(int32(v)))
}

// PushString appends a length-prefixed string argument. The length counts
// the terminating NUL and the value is padded to 32 bits.
func (m *Message) PushString(s string) {
	m.PushUint(uint32(len(s) + 1))
	m.data = append(m.data, s...)
	m.data = append(m.data, 0)
	m.pad()
}

// PushArray appends a length-prefixed opaque byte blob, padded to 32 bits.
func (m *Message) PushArray(b []byte) {
	m.PushUint(uint32(len(b)))
	m.data = append(m.data, b...)
	m.pad()
}

// PushNewID appends a statically typed new-id argument. Only the id travels
// on the wire; interface and version are compile-time knowledge on both ends.
func (m *Message) PushNewID(n NewID) {
	m.PushUint(n.ID)
}

// PushDynamicNewID appends a dynamically typed new-id argument as interface
// name, version, and id, in that order.
func (m *Message) PushDynamicNewID(n NewID) {
	m.PushString(n.Interface)
	m.PushUint(n.Version)
	m.PushUint(n.ID)
}

// PushFd queues a file descriptor on the out-of-band list. Descriptors are
// delivered in declaration order relative to other fd arguments.
func (m *Message) PushFd(fd int) {
	m.fds = append(m.fds, fd)
}

func (m *Message) pad() {
	for len(m.data)%4 != 0 {
		m.data = append(m.data, 0)
	}
}

// Args returns a cursor over the argument payload, positioned at the first
// argument.
func (m *Message) Args() *Cursor {
	return &Cursor{data: m.data}
}

// MarshalBinary frames the message as an 8-byte header followed by the
// argument payload.
func (m *Message) MarshalBinary() ([]byte, error) {
	size := HeaderSize + len(m.data)
	if size > maxMessageSize {
		return nil, ErrMessageTooLarge
	}
	buf := make([]byte, size)
	binary.LittleEndian.PutUint32(buf[0:4], m.Object)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(size)<<16|uint32(m.Opcode))
	copy(buf[HeaderSize:], m.data)
	return buf, nil
}

// ReadMessage reads one framed message from r.
func ReadMessage(r io.Reader) (*Message, error) {
	var head [HeaderSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, ErrTruncated
	}
	word := binary.LittleEndian.Uint32(head[4:8])
	size := int(word >> 16)
	if size < HeaderSize {
		return nil, ErrInvalidLength
	}
	msg := &Message{
		Object: binary.LittleEndian.Uint32(head[0:4]),
		Opcode: uint16(word & 0xffff),
	}
	if size == HeaderSize {
		return msg, nil
	}
	msg.data = make([]byte, size-HeaderSize)
	if _, err := io.ReadFull(r, msg.data); err != nil {
		return nil, ErrTruncated
	}
	return msg, nil
}

// Cursor reads arguments from a message payload strictly in declaration
// order. Every reader fails with *ExpectedArgumentError naming the wire type
// it could not complete.
type Cursor struct {
	data []byte
	off  int
}

// NextInt reads a signed 32-bit argument.
func (c *Cursor) NextInt() (int32, error) {
	v, ok := c.word()
	if !ok {
		return 0, &ExpectedArgumentError{Type: "int"}
	}
	return int32(v), nil
}

// NextUint reads an unsigned 32-bit argument.
func (c *Cursor) NextUint() (uint32, error) {
	v, ok := c.word()
	if !ok {
		return 0, &ExpectedArgumentError{Type: "uint"}
	}
	return v, nil
}

// NextFixed reads a signed 24.8 fixed-point argument.
func (c *Cursor) NextFixed() (Fixed, error) {
	v, ok := c.word()
	if !ok {
		return 0, &ExpectedArgumentError{Type: "fixed"}
	}
	return Fixed(int32(v)), nil
}

// NextString reads a length-prefixed string argument.
func (c *Cursor) NextString() (string, error) {
	s, ok := c.str()
	if !ok {
		return "", &ExpectedArgumentError{Type: "string"}
	}
	return s, nil
}

// NextArray reads a length-prefixed opaque byte blob.
func (c *Cursor) NextArray() ([]byte, error) {
	n, ok := c.word()
	if !ok {
		return nil, &ExpectedArgumentError{Type: "array"}
	}
	b, ok := c.take(int(n))
	if !ok {
		return nil, &ExpectedArgumentError{Type: "array"}
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// NextObject reads a 32-bit object id argument.
func (c *Cursor) NextObject() (uint32, error) {
	v, ok := c.word()
	if !ok {
		return 0, &ExpectedArgumentError{Type: "object"}
	}
	return v, nil
}

// NextNewID reads a statically typed new-id argument: only the id is on the
// wire, interface and version are supplied by the caller.
func (c *Cursor) NextNewID(iface string, version uint32) (NewID, error) {
	id, ok := c.word()
	if !ok {
		return NewID{}, &ExpectedArgumentError{Type: "new_id"}
	}
	return NewID{ID: id, Interface: iface, Version: version}, nil
}

// NextDynamicNewID reads a dynamically typed new-id argument as interface
// name, version, and id, in that order.
func (c *Cursor) NextDynamicNewID() (NewID, error) {
	iface, ok := c.str()
	if !ok {
		return NewID{}, &ExpectedArgumentError{Type: "new_id"}
	}
	version, ok := c.word()
	if !ok {
		return NewID{}, &ExpectedArgumentError{Type: "new_id"}
	}
	id, ok := c.word()
	if !ok {
		return NewID{}, &ExpectedArgumentError{Type: "new_id"}
	}
	return NewID{ID: id, Interface: iface, Version: version}, nil
}

func (c *Cursor) word() (uint32, bool) {
	b, ok := c.take(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

func (c *Cursor) str() (string, bool) {
	n, ok := c.word()
	if !ok {
		return "", false
	}
	if n == 0 {
		return "", true
	}
	b, ok := c.take(int(n))
	if !ok {
		return "", false
	}
	return string(b[:n-1]), true
}

// take consumes n payload bytes plus padding to the next 32-bit boundary.
func (c *Cursor) take(n int) ([]byte, bool) {
	if n < 0 || c.off+n > len(c.data) {
		return nil, false
	}
	b := c.data[c.off : c.off+n]
	padded := n + (4-n%4)%4
	if c.off+padded > len(c.data) {
		return nil, false
	}
	c.off += padded
	return b, true
}
