package stack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// PackageManifest models a package.json document. Known fields are typed;
// anything else a template ships (engines, browserslist, ...) is preserved
// in Extra and round-tripped untouched.
type PackageManifest struct {
	Name            string
	Version         string
	Private         bool
	Scripts         map[string]string
	Dependencies    map[string]string
	DevDependencies map[string]string
	Extra           map[string]any
}

// NewPackageManifest returns an empty manifest with all maps allocated.
func NewPackageManifest(name string) *PackageManifest {
	return &PackageManifest{
		Name:            name,
		Version:         "0.1.0",
		Private:         true,
		Scripts:         map[string]string{},
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
		Extra:           map[string]any{},
	}
}

// ParsePackageManifest decodes a package.json document.
func ParsePackageManifest(data []byte) (*PackageManifest, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing package manifest: %w", err)
	}

	m := NewPackageManifest("")
	m.Private = false
	for key, val := range raw {
		switch key {
		case "name":
			m.Name, _ = val.(string)
		case "version":
			m.Version, _ = val.(string)
		case "private":
			m.Private, _ = val.(bool)
		case "scripts":
			m.Scripts = toStringMap(val)
		case "dependencies":
			m.Dependencies = toStringMap(val)
		case "devDependencies":
			m.DevDependencies = toStringMap(val)
		default:
			m.Extra[key] = val
		}
	}
	return m, nil
}

// Render serializes the manifest as indented JSON with a stable field
// order: name, version, private, scripts, dependencies, devDependencies,
// then remaining fields alphabetically. Map keys are sorted so repeated
// generations of the same stack are byte-identical.
func (m *PackageManifest) Render() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")

	first := true
	writeField := func(key string, val any) error {
		if !first {
			buf.WriteString(",\n")
		}
		first = false
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return err
		}
		valJSON, err := marshalSorted(val, "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(&buf, "  %s: %s", keyJSON, valJSON)
		return nil
	}

	if err := writeField("name", m.Name); err != nil {
		return nil, err
	}
	if err := writeField("version", m.Version); err != nil {
		return nil, err
	}
	if m.Private {
		if err := writeField("private", true); err != nil {
			return nil, err
		}
	}
	for _, f := range []struct {
		key string
		val map[string]string
	}{
		{"scripts", m.Scripts},
		{"dependencies", m.Dependencies},
		{"devDependencies", m.DevDependencies},
	} {
		if len(f.val) == 0 {
			continue
		}
		if err := writeField(f.key, f.val); err != nil {
			return nil, err
		}
	}

	extraKeys := make([]string, 0, len(m.Extra))
	for k := range m.Extra {
		extraKeys = append(extraKeys, k)
	}
	sort.Strings(extraKeys)
	for _, k := range extraKeys {
		if err := writeField(k, m.Extra[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteString("\n}\n")
	return buf.Bytes(), nil
}

// Clone returns a deep copy of the manifest's typed fields. Extra values
// are shared; merging only ever replaces them wholesale.
func (m *PackageManifest) Clone() *PackageManifest {
	out := &PackageManifest{
		Name:            m.Name,
		Version:         m.Version,
		Private:         m.Private,
		Scripts:         cloneStringMap(m.Scripts),
		Dependencies:    cloneStringMap(m.Dependencies),
		DevDependencies: cloneStringMap(m.DevDependencies),
		Extra:           make(map[string]any, len(m.Extra)),
	}
	for k, v := range m.Extra {
		out.Extra[k] = v
	}
	return out
}

func toStringMap(val any) map[string]string {
	out := map[string]string{}
	obj, ok := val.(map[string]any)
	if !ok {
		return out
	}
	for k, v := range obj {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// marshalSorted marshals val with sorted object keys at every level.
// encoding/json already sorts map[string]string and map[string]any keys,
// so indentation is the only extra work.
func marshalSorted(val any, indent string) ([]byte, error) {
	plain, err := json.Marshal(val)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, plain, indent, "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
