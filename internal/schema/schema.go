package schema

// DataType tags the wire type of one argument. The set is closed.
type DataType string

const (
	TypeInt    DataType = "int"
	TypeUint   DataType = "uint"
	TypeFixed  DataType = "fixed"
	TypeString DataType = "string"
	TypeArray  DataType = "array"
	TypeFd     DataType = "fd"
	TypeObject DataType = "object"
	TypeNewID  DataType = "new_id"
)

// Known reports whether t is one of the eight declared wire types.
func (t DataType) Known() bool {
	switch t {
	case TypeInt, TypeUint, TypeFixed, TypeString, TypeArray, TypeFd, TypeObject, TypeNewID:
		return true
	}
	return false
}

// References reports whether t may carry an interface reference.
func (t DataType) References() bool {
	return t == TypeObject || t == TypeNewID
}

// Enumerable reports whether t may carry an enum reference.
func (t DataType) Enumerable() bool {
	return t == TypeInt || t == TypeUint
}

// Protocol is one schema document.
type Protocol struct {
	Name        string      `toml:"name"`
	Summary     string      `toml:"summary"`
	Description string      `toml:"description"`
	Copyright   string      `toml:"copyright"`
	Interfaces  []Interface `toml:"interface"`
}

// Interface declares one object type: its version and its requests, events,
// and enums in declaration order. Message opcodes are declaration indices.
type Interface struct {
	Name        string    `toml:"name"`
	Summary     string    `toml:"summary"`
	Description string    `toml:"description"`
	Version     uint32    `toml:"version"`
	Enums       []Enum    `toml:"enum"`
	Requests    []Request `toml:"request"`
	Events      []Event   `toml:"event"`
}

// Request is a client-to-server message declaration.
type Request struct {
	Name        string `toml:"name"`
	Summary     string `toml:"summary"`
	Description string `toml:"description"`
	Since       uint32 `toml:"since"`
	Destructor  bool   `toml:"destructor"`
	Args        []Arg  `toml:"arg"`
}

// Event is a server-to-client message declaration.
type Event struct {
	Name        string `toml:"name"`
	Summary     string `toml:"summary"`
	Description string `toml:"description"`
	Since       uint32 `toml:"since"`
	Args        []Arg  `toml:"arg"`
}

// Arg is one message parameter. Interface is set when an object or new_id
// argument is statically typed; Enum names a declared enum for int and uint
// arguments.
type Arg struct {
	Name      string   `toml:"name"`
	Type      DataType `toml:"type"`
	Interface string   `toml:"interface"`
	Enum      string   `toml:"enum"`
	Summary   string   `toml:"summary"`
}

// Enum is a named set of integer constants scoped to an interface.
type Enum struct {
	Name        string  `toml:"name"`
	Summary     string  `toml:"summary"`
	Description string  `toml:"description"`
	Since       uint32  `toml:"since"`
	Bitfield    bool    `toml:"bitfield"`
	Entries     []Entry `toml:"entry"`
}

// Entry is one enum constant. Values need not be unique; bitfield enums
// repeat them.
type Entry struct {
	Name    string `toml:"name"`
	Summary string `toml:"summary"`
	Since   uint32 `toml:"since"`
	Value   uint32 `toml:"value"`
}

// Enum returns the declared enum named name, if any.
func (i *Interface) Enum(name string) (*Enum, bool) {
	for e := range i.Enums {
		if i.Enums[e].Name == name {
			return &i.Enums[e], true
		}
	}
	return nil, false
}
