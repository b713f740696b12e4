package schema

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	ErrUnknownKey        = errors.New("schema: unknown document key")
	ErrUnsupportedFormat = errors.New("schema: unsupported document format")
)

// Load reads, parses, and validates one protocol document. The parser is
// selected by file extension: .toml or .xml.
func Load(path string) (*Protocol, error) {
	var parse func([]byte) (*Protocol, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parse = ParseTOML
	case ".xml":
		parse = ParseXML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return parse(data)
}

// LoadAll loads every path in order.
func LoadAll(paths []string) ([]*Protocol, error) {
	protocols := make([]*Protocol, 0, len(paths))
	for _, path := range paths {
		p, err := Load(path)
		if err != nil {
			return nil, err
		}
		protocols = append(protocols, p)
	}
	return protocols, nil
}

// ParseTOML parses and validates a TOML protocol document. Keys outside the
// document model are rejected, naming the first offender.
func ParseTOML(data []byte) (*Protocol, error) {
	var p Protocol
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return nil, fmt.Errorf("schema: parse toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, undecoded[0].String())
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseXML parses and validates a Wayland-style XML protocol document.
func ParseXML(data []byte) (*Protocol, error) {
	var doc xmlProtocol
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: parse xml: %w", err)
	}
	p, err := doc.model()
	if err != nil {
		return nil, err
	}
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

type xmlProtocol struct {
	Name        string         `xml:"name,attr"`
	Copyright   string         `xml:"copyright"`
	Description xmlDescription `xml:"description"`
	Interfaces  []xmlInterface `xml:"interface"`
}

type xmlDescription struct {
	Summary string `xml:"summary,attr"`
	Body    string `xml:",chardata"`
}

type xmlInterface struct {
	Name        string         `xml:"name,attr"`
	Version     uint32         `xml:"version,attr"`
	Description xmlDescription `xml:"description"`
	Requests    []xmlRequest   `xml:"request"`
	Events      []xmlEvent     `xml:"event"`
	Enums       []xmlEnum      `xml:"enum"`
}

type xmlRequest struct {
	Name        string         `xml:"name,attr"`
	Type        string         `xml:"type,attr"`
	Since       uint32         `xml:"since,attr"`
	Description xmlDescription `xml:"description"`
	Args        []xmlArg       `xml:"arg"`
}

type xmlEvent struct {
	Name        string         `xml:"name,attr"`
	Since       uint32         `xml:"since,attr"`
	Description xmlDescription `xml:"description"`
	Args        []xmlArg       `xml:"arg"`
}

type xmlArg struct {
	Name      string `xml:"name,attr"`
	Type      string `xml:"type,attr"`
	Interface string `xml:"interface,attr"`
	Enum      string `xml:"enum,attr"`
	Summary   string `xml:"summary,attr"`
}

type xmlEnum struct {
	Name        string         `xml:"name,attr"`
	Since       uint32         `xml:"since,attr"`
	Bitfield    bool           `xml:"bitfield,attr"`
	Description xmlDescription `xml:"description"`
	Entries     []xmlEntry     `xml:"entry"`
}

type xmlEntry struct {
	Name    string `xml:"name,attr"`
	Value   string `xml:"value,attr"`
	Since   uint32 `xml:"since,attr"`
	Summary string `xml:"summary,attr"`
}

func (d xmlDescription) body() string {
	return strings.TrimSpace(d.Body)
}

func (x xmlProtocol) model() (*Protocol, error) {
	p := &Protocol{
		Name:        x.Name,
		Summary:     x.Description.Summary,
		Description: x.Description.body(),
		Copyright:   strings.TrimSpace(x.Copyright),
	}
	for _, xi := range x.Interfaces {
		iface := Interface{
			Name:        xi.Name,
			Summary:     xi.Description.Summary,
			Description: xi.Description.body(),
			Version:     xi.Version,
		}
		for _, xr := range xi.Requests {
			iface.Requests = append(iface.Requests, Request{
				Name:        xr.Name,
				Summary:     xr.Description.Summary,
				Description: xr.Description.body(),
				Since:       xr.Since,
				Destructor:  xr.Type == "destructor",
				Args:        xmlArgs(xr.Args),
			})
		}
		for _, xe := range xi.Events {
			iface.Events = append(iface.Events, Event{
				Name:        xe.Name,
				Summary:     xe.Description.Summary,
				Description: xe.Description.body(),
				Since:       xe.Since,
				Args:        xmlArgs(xe.Args),
			})
		}
		for _, xe := range xi.Enums {
			enum := Enum{
				Name:        xe.Name,
				Summary:     xe.Description.Summary,
				Description: xe.Description.body(),
				Since:       xe.Since,
				Bitfield:    xe.Bitfield,
			}
			for _, entry := range xe.Entries {
				value, err := strconv.ParseUint(entry.Value, 0, 32)
				if err != nil {
					return nil, fmt.Errorf("schema: enum %s.%s: entry %q has value %q: %w",
						xi.Name, xe.Name, entry.Name, entry.Value, err)
				}
				enum.Entries = append(enum.Entries, Entry{
					Name:    entry.Name,
					Summary: entry.Summary,
					Since:   entry.Since,
					Value:   uint32(value),
				})
			}
			iface.Enums = append(iface.Enums, enum)
		}
		p.Interfaces = append(p.Interfaces, iface)
	}
	return p, nil
}

func xmlArgs(in []xmlArg) []Arg {
	args := make([]Arg, 0, len(in))
	for _, a := range in {
		args = append(args, Arg{
			Name:      a.Name,
			Type:      DataType(a.Type),
			Interface: a.Interface,
			Enum:      a.Enum,
			Summary:   a.Summary,
		})
	}
	return args
}
