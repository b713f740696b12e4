package wire

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated       = errors.New("wire: truncated message")
	ErrInvalidLength   = errors.New("wire: invalid length")
	ErrMessageTooLarge = errors.New("wire: message exceeds size limit")
	ErrLeaseHeld       = errors.New("wire: lease already held")
	ErrObjectExists    = errors.New("wire: object id already registered")
)

// ExpectedArgumentError reports an argument stream that ended before the
// named wire type could be read.
type ExpectedArgumentError struct {
	Type string
}

func (e *ExpectedArgumentError) Error() string {
	return fmt.Sprintf("wire: expected %s argument", e.Type)
}

// InvalidObjectError reports an object argument whose live interface does
// not match the interface the message declared.
type InvalidObjectError struct {
	ID   uint32
	Want string
	Got  string
}

func (e *InvalidObjectError) Error() string {
	return fmt.Sprintf("wire: object %d is %q, expected %q", e.ID, e.Got, e.Want)
}

// InvalidOpcodeError reports a message opcode with no declared request on
// the receiver's interface.
type InvalidOpcodeError struct {
	ObjectID  uint32
	Opcode    uint16
	Interface string
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("wire: invalid opcode %d for %s@%d", e.Opcode, e.Interface, e.ObjectID)
}

// UnknownObjectError reports a message or lookup addressed to an id with no
// live object behind it.
type UnknownObjectError struct {
	ID uint32
}

func (e *UnknownObjectError) Error() string {
	return fmt.Sprintf("wire: unknown object %d", e.ID)
}

// NoVariantError reports an enum value outside the declared entry set.
type NoVariantError struct {
	Enum  string
	Value uint32
}

func (e *NoVariantError) Error() string {
	return fmt.Sprintf("wire: no %s variant with value %d", e.Enum, e.Value)
}

// TransmissionError wraps an outbound I/O failure while sending a message.
type TransmissionError struct {
	Err error
}

func (e *TransmissionError) Error() string {
	return fmt.Sprintf("wire: transmission failed: %v", e.Err)
}

func (e *TransmissionError) Unwrap() error {
	return e.Err
}
