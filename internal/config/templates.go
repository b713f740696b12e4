package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "inspector":
		return inspectorTemplate, nil
	case "protocol":
		return protocolTemplate, nil
	case "bindings":
		return bindingsTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const inspectorTemplate = `name = "wirectl"
addr = ":9400"
cors_origins = ["http://localhost:3000"]
protocols = ["protocol.toml"]
bindings = "bindings.toml"
`

const protocolTemplate = `name = "sample"
summary = "starter protocol document"

[[interface]]
name = "sample_object"
summary = "describe the object here"
version = 1

[[interface.request]]
name = "set_label"
summary = "label the object"

[[interface.request.arg]]
name = "label"
type = "string"
summary = "utf-8 label text"

[[interface.request]]
name = "destroy"
summary = "drop the object"
destructor = true

[[interface.event]]
name = "labeled"
summary = "announce the label after a change"

[[interface.event.arg]]
name = "label"
type = "string"
summary = "the label now in effect"
`

const bindingsTemplate = `package = "sampleproto"

[[bind]]
interface = "sample_object"
impl = "SampleObject"
display = true
`
