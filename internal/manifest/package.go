package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/buger/jsonparser"
)

// FileName is the npm package manifest file name.
const FileName = "package.json"

// Package is a package.json document kept as compact JSON so that the
// template's field order survives a merge.
type Package struct {
	raw []byte
}

// LoadPackage parses data as a package manifest. The top-level value must be
// a JSON object.
func LoadPackage(data []byte) (*Package, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	if buf.Len() == 0 || buf.Bytes()[0] != '{' {
		return nil, fmt.Errorf("parsing %s: top-level value is not an object", FileName)
	}
	return &Package{raw: buf.Bytes()}, nil
}

// ReadPackage loads the package manifest at path inside fsys.
func ReadPackage(fsys fs.FS, path string) (*Package, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return LoadPackage(data)
}

// Name returns the package's "name" field, or "" when it is absent.
func (p *Package) Name() string {
	return p.stringField("name")
}

// NodeEngine returns the "engines.node" semver range, or "" when unset.
func (p *Package) NodeEngine() string {
	return p.stringField("engines", "node")
}

func (p *Package) stringField(keys ...string) string {
	v, err := jsonparser.GetString(p.raw, keys...)
	if err != nil {
		return ""
	}
	return v
}

// Merge returns the manifest with "name" and "description" overridden. Every
// other field is kept in its original position; fields missing from the
// template are appended. The result is indented with two spaces and ends
// with a newline.
func (p *Package) Merge(name, description string) ([]byte, error) {
	out := append([]byte(nil), p.raw...)

	for _, f := range []struct{ key, value string }{
		{"name", name},
		{"description", description},
	} {
		encoded, err := encodeString(f.value)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", f.key, err)
		}
		out, err = jsonparser.Set(out, encoded, f.key)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", f.key, err)
		}
	}

	return Indent(out)
}

// Indent pretty-prints compact JSON with two-space indentation and a
// trailing newline.
func Indent(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// MarshalIndent encodes v with two-space indentation, a trailing newline and
// without HTML escaping.
func MarshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
