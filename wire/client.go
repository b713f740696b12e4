package wire

import (
	"io"
	"sync"
)

// Client is one connection: the object table, the outbound message writer,
// the outbound fd list, and the queue of received fds awaiting consumption.
type Client struct {
	mu     sync.Mutex
	out    io.Writer
	table  *Table
	inFds  []int
	outFds []int
}

// NewClient wraps an outbound writer with a fresh object table.
func NewClient(out io.Writer) *Client {
	return &Client{out: out, table: NewTable()}
}

// Send encodes msg and appends it to the outbound stream as one write. The
// message's fds move to the outbound fd list in the same step.
func (c *Client) Send(msg *Message) error {
	buf, err := msg.MarshalBinary()
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.out.Write(buf); err != nil {
		return &TransmissionError{Err: err}
	}
	c.outFds = append(c.outFds, msg.fds...)
	return nil
}

// QueueFd appends a received file descriptor for later consumption.
func (c *Client) QueueFd(fd int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFds = append(c.inFds, fd)
}

// NextFd consumes the oldest queued file descriptor. An empty queue reads
// as *ExpectedArgumentError, the same class as byte-stream underflow.
func (c *Client) NextFd() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.inFds) == 0 {
		return -1, &ExpectedArgumentError{Type: "fd"}
	}
	fd := c.inFds[0]
	c.inFds = c.inFds[1:]
	return fd, nil
}

// TakeOutboundFds drains the fds attached to sent messages, in send order.
func (c *Client) TakeOutboundFds() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	fds := c.outFds
	c.outFds = nil
	return fds
}

// Register reserves id in the connection's object table.
func (c *Client) Register(id uint32, iface string, version uint32) error {
	return c.table.Register(id, iface, version)
}

// Fill places obj into a registered slot.
func (c *Client) Fill(id uint32, obj Object) error {
	return c.table.Fill(id, obj)
}

// Unregister removes id from the connection's object table.
func (c *Client) Unregister(id uint32) {
	c.table.Unregister(id)
}

// Acquire leases id from the connection's object table.
func (c *Client) Acquire(id uint32) (*Lease, error) {
	return c.table.Acquire(id)
}

// AcquireTyped leases id, requiring the given interface name.
func (c *Client) AcquireTyped(id uint32, iface string) (*Lease, error) {
	return c.table.AcquireTyped(id, iface)
}
