package resolve

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/wiregen/internal/testutil/testlog"
)

const bindingsTOML = `
package = "testproto"

[[bind]]
interface = "display"
impl = "Display"
display = true

[[bind]]
interface = "widget"
impl = "Widget"

[[bind]]
interface = "pointer"
impl = "input.Pointer"
external = true
`

func TestLoadBindings(t *testing.T) {
	testlog.Start(t)

	path := filepath.Join(t.TempDir(), "bindings.toml")
	if err := os.WriteFile(path, []byte(bindingsTOML), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	b, err := LoadBindings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b.Package != "testproto" {
		t.Fatalf("expected package testproto, got %q", b.Package)
	}
	if len(b.Binds) != 3 {
		t.Fatalf("expected 3 bindings, got %d", len(b.Binds))
	}
	if !b.Binds[0].Display || b.Binds[0].Impl != "Display" {
		t.Fatalf("unexpected display binding: %+v", b.Binds[0])
	}
	if !b.Binds[2].External {
		t.Fatalf("expected external pointer binding")
	}
}

func TestValidateBindingsRejects(t *testing.T) {
	testlog.Start(t)

	cases := []struct {
		name   string
		mutate func(*Bindings)
		reason string
	}{
		{"missing package", func(b *Bindings) { b.Package = " " }, "missing package"},
		{"missing impl", func(b *Bindings) { b.Binds[1].Impl = "" }, "missing impl"},
		{"duplicate binding", func(b *Bindings) { b.Binds[1].Interface = "display" }, "duplicate binding"},
		{"second display", func(b *Bindings) { b.Binds[1].Display = true }, "multiple display bindings"},
		{"external display", func(b *Bindings) {
			b.Binds[0].External = true
		}, "cannot be external"},
	}

	for _, tc := range cases {
		b := widgetryBindings()
		tc.mutate(&b)
		err := ValidateBindings(b)
		if err == nil || !strings.Contains(err.Error(), tc.reason) {
			t.Fatalf("%s: expected %q error, got %v", tc.name, tc.reason, err)
		}
	}
}
