package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
)

// File accumulates generated declarations and the imports they need, then
// renders one gofmt-formatted source file.
type File struct {
	pkg     string
	header  bytes.Buffer
	imports map[string]bool
	body    bytes.Buffer
}

// NewFile starts a file for the named package.
func NewFile(pkg string) *File {
	return &File{pkg: pkg, imports: make(map[string]bool)}
}

// HeaderComment appends one comment line above the package clause. An empty
// line yields a bare "//" separator.
func (f *File) HeaderComment(line string) {
	if line == "" {
		f.header.WriteString("//\n")
		return
	}
	f.header.WriteString("// ")
	f.header.WriteString(line)
	f.header.WriteByte('\n')
}

// Import records an import path for the rendered file.
func (f *File) Import(path string) {
	f.imports[path] = true
}

// Print appends body source verbatim.
func (f *File) Print(s string) {
	f.body.WriteString(s)
}

// Printf appends formatted body source.
func (f *File) Printf(format string, args ...any) {
	fmt.Fprintf(&f.body, format, args...)
}

// Render assembles the header, package clause, import block, and body, and
// returns the gofmt-formatted file.
func (f *File) Render() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(f.header.Bytes())
	buf.WriteString("\npackage ")
	buf.WriteString(f.pkg)
	buf.WriteByte('\n')

	if len(f.imports) > 0 {
		std, rest := groupImports(f.imports)
		buf.WriteString("\nimport (\n")
		for _, path := range std {
			fmt.Fprintf(&buf, "\t%q\n", path)
		}
		if len(std) > 0 && len(rest) > 0 {
			buf.WriteByte('\n')
		}
		for _, path := range rest {
			fmt.Fprintf(&buf, "\t%q\n", path)
		}
		buf.WriteString(")\n")
	}

	buf.Write(f.body.Bytes())
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format generated source: %w", err)
	}
	return out, nil
}

// groupImports splits paths into the standard library group and the rest,
// each sorted.
func groupImports(set map[string]bool) (std, rest []string) {
	for path := range set {
		first := path
		if i := strings.IndexByte(path, '/'); i >= 0 {
			first = path[:i]
		}
		if strings.ContainsRune(first, '.') {
			rest = append(rest, path)
		} else {
			std = append(std, path)
		}
	}
	sort.Strings(std)
	sort.Strings(rest)
	return std, rest
}
