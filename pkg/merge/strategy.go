package merge

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

// Merged is the result of a type-specific file merge. Fallback reports
// that the strategy could not parse one side and produced a
// conflict-marker-annotated concatenation instead; Reason says why. This
// keeps the degraded path an explicit branch rather than a caught error.
type Merged struct {
	Content  string
	Fallback bool
	Reason   string
}

// Strategy combines two files that claim the same path.
//
// The set of strategies is closed: dispatch happens through strategyFor,
// and unrecognized file types never reach a strategy (the incoming file
// simply replaces the existing one).
type Strategy interface {
	Name() string
	Merge(existing, incoming string) Merged
}

// strategyFor returns the merge strategy for a path, dispatching on the
// filename first and the extension second.
func strategyFor(filePath string) (Strategy, bool) {
	base := strings.ToLower(path.Base(strings.ReplaceAll(filePath, "\\", "/")))

	switch base {
	case "package.json":
		return packageManifestStrategy{}, true
	case ".env", ".env.example", ".env.template", ".env.local":
		return envExampleStrategy{}, true
	}

	switch path.Ext(base) {
	case ".json", ".yml", ".yaml":
		return structuredConfigStrategy{}, true
	case ".md", ".markdown":
		return markdownStrategy{}, true
	}

	return nil, false
}

// conflictAnnotated wraps both sides in explicit conflict markers. Neither
// side is discarded; a human resolves the file later.
func conflictAnnotated(existing, incoming string) string {
	var b strings.Builder
	b.WriteString("<<<<<<< existing\n")
	b.WriteString(strings.TrimRight(existing, "\n"))
	b.WriteString("\n=======\n")
	b.WriteString(strings.TrimRight(incoming, "\n"))
	b.WriteString("\n>>>>>>> incoming\n")
	return b.String()
}

// packageManifestStrategy deep-unions dependency, devDependency, and
// script maps (incoming wins per key) and shallow-overrides every other
// top-level field with the incoming side.
type packageManifestStrategy struct{}

func (packageManifestStrategy) Name() string { return "package-manifest" }

func (packageManifestStrategy) Merge(existing, incoming string) Merged {
	current, err := stack.ParsePackageManifest([]byte(existing))
	if err != nil {
		return Merged{Content: conflictAnnotated(existing, incoming), Fallback: true, Reason: fmt.Sprintf("existing side unparseable: %v", err)}
	}
	next, err := stack.ParsePackageManifest([]byte(incoming))
	if err != nil {
		return Merged{Content: conflictAnnotated(existing, incoming), Fallback: true, Reason: fmt.Sprintf("incoming side unparseable: %v", err)}
	}

	merged := current.Clone()
	for k, v := range next.Scripts {
		merged.Scripts[k] = v
	}
	for k, v := range next.Dependencies {
		merged.Dependencies[k] = v
	}
	for k, v := range next.DevDependencies {
		merged.DevDependencies[k] = v
	}
	for k, v := range next.Extra {
		merged.Extra[k] = v
	}
	if next.Name != "" {
		merged.Name = next.Name
	}
	if next.Version != "" {
		merged.Version = next.Version
	}
	merged.Private = merged.Private || next.Private

	out, err := merged.Render()
	if err != nil {
		return Merged{Content: conflictAnnotated(existing, incoming), Fallback: true, Reason: fmt.Sprintf("rendering merged manifest: %v", err)}
	}
	return Merged{Content: string(out)}
}

// structuredConfigStrategy merges JSON and YAML documents key-wise and
// recursively; scalar and array collisions take the incoming value.
type structuredConfigStrategy struct{}

func (structuredConfigStrategy) Name() string { return "structured-config" }

func (structuredConfigStrategy) Merge(existing, incoming string) Merged {
	// YAML parses JSON too, but round-tripping JSON through the YAML
	// encoder would rewrite the file's syntax, so JSON keeps its own path.
	if looksLikeJSON(existing) || looksLikeJSON(incoming) {
		return mergeJSONConfig(existing, incoming)
	}
	return mergeYAMLConfig(existing, incoming)
}

func looksLikeJSON(s string) bool {
	trimmed := strings.TrimSpace(s)
	return strings.HasPrefix(trimmed, "{")
}

func mergeJSONConfig(existing, incoming string) Merged {
	var current, next map[string]any
	if err := json.Unmarshal([]byte(existing), &current); err != nil {
		return Merged{Content: conflictAnnotated(existing, incoming), Fallback: true, Reason: fmt.Sprintf("existing side unparseable: %v", err)}
	}
	if err := json.Unmarshal([]byte(incoming), &next); err != nil {
		return Merged{Content: conflictAnnotated(existing, incoming), Fallback: true, Reason: fmt.Sprintf("incoming side unparseable: %v", err)}
	}

	merged := deepMerge(current, next)
	out, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return Merged{Content: conflictAnnotated(existing, incoming), Fallback: true, Reason: fmt.Sprintf("rendering merged config: %v", err)}
	}
	return Merged{Content: string(out) + "\n"}
}

func mergeYAMLConfig(existing, incoming string) Merged {
	var current, next map[string]any
	if err := yaml.Unmarshal([]byte(existing), &current); err != nil || current == nil {
		return Merged{Content: conflictAnnotated(existing, incoming), Fallback: true, Reason: fmt.Sprintf("existing side unparseable: %v", err)}
	}
	if err := yaml.Unmarshal([]byte(incoming), &next); err != nil || next == nil {
		return Merged{Content: conflictAnnotated(existing, incoming), Fallback: true, Reason: fmt.Sprintf("incoming side unparseable: %v", err)}
	}

	merged := deepMerge(current, next)
	out, err := yaml.Marshal(merged)
	if err != nil {
		return Merged{Content: conflictAnnotated(existing, incoming), Fallback: true, Reason: fmt.Sprintf("rendering merged config: %v", err)}
	}
	return Merged{Content: string(out)}
}

// deepMerge merges next into current recursively. Nested maps merge
// key-wise; everything else (scalars, arrays) takes the incoming value.
func deepMerge(current, next map[string]any) map[string]any {
	out := make(map[string]any, len(current)+len(next))
	for k, v := range current {
		out[k] = v
	}
	for k, v := range next {
		currentChild, haveCurrent := out[k].(map[string]any)
		nextChild, haveNext := v.(map[string]any)
		if haveCurrent && haveNext {
			out[k] = deepMerge(currentChild, nextChild)
			continue
		}
		out[k] = v
	}
	return out
}

// envExampleStrategy unions dotenv-style files line-wise, keyed by the
// text before '='. Keys already present win on the existing side; all
// other incoming lines, comments included, are appended.
type envExampleStrategy struct{}

func (envExampleStrategy) Name() string { return "env-example" }

func (envExampleStrategy) Merge(existing, incoming string) Merged {
	seenKeys := map[string]bool{}
	seenLines := map[string]bool{}
	existingLines := strings.Split(strings.TrimRight(existing, "\n"), "\n")
	for _, line := range existingLines {
		if key, ok := envLineKey(line); ok {
			seenKeys[key] = true
		}
		seenLines[line] = true
	}

	out := append([]string(nil), existingLines...)
	for _, line := range strings.Split(strings.TrimRight(incoming, "\n"), "\n") {
		if key, ok := envLineKey(line); ok {
			if seenKeys[key] {
				continue
			}
			seenKeys[key] = true
		} else if seenLines[line] && strings.TrimSpace(line) != "" {
			// Duplicate comment, skip.
			continue
		}
		seenLines[line] = true
		out = append(out, line)
	}
	return Merged{Content: strings.Join(out, "\n") + "\n"}
}

// envLineKey extracts the key of a KEY=value line. Comments and blank
// lines have no key.
func envLineKey(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	eq := strings.Index(trimmed, "=")
	if eq <= 0 {
		return "", false
	}
	return strings.TrimSpace(trimmed[:eq]), true
}

// markdownStrategy concatenates documents with a visible separator. No
// semantic merge is attempted.
type markdownStrategy struct{}

func (markdownStrategy) Name() string { return "markdown" }

func (markdownStrategy) Merge(existing, incoming string) Merged {
	var b strings.Builder
	b.WriteString(strings.TrimRight(existing, "\n"))
	b.WriteString("\n\n---\n\n")
	b.WriteString(strings.TrimRight(incoming, "\n"))
	b.WriteString("\n")
	return Merged{Content: b.String()}
}
