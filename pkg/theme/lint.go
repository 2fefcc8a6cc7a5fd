package theme

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

// maxSuggestDistance is the largest edit distance for a "did you mean" hint.
const maxSuggestDistance = 3

// Lint reports keys in a theme document that do not name a theme field.
// Parse ignores such keys, so a misspelled key silently keeps its default.
// Each message names the line and, when a known key is close, suggests it.
func Lint(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	var msgs []string
	lintMapping(doc.Content[0], reflect.TypeOf(ThemeData{}), "", &msgs)
	return msgs, nil
}

func lintMapping(n *yaml.Node, t reflect.Type, path string, msgs *[]string) {
	if n.Kind != yaml.MappingNode {
		return
	}
	fields := yamlFields(t)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		ft, ok := fields[key.Value]
		if !ok {
			*msgs = append(*msgs, unknownKey(key, path, fields))
			continue
		}
		if ft.Kind() == reflect.Struct {
			lintMapping(val, ft, path+key.Value+".", msgs)
		}
	}
}

func unknownKey(key *yaml.Node, path string, fields map[string]reflect.Type) string {
	msg := fmt.Sprintf("line %d: unknown key %q", key.Line, path+key.Value)
	best, bestDist := "", maxSuggestDistance+1
	for name := range fields {
		d := levenshtein.ComputeDistance(strings.ToLower(key.Value), strings.ToLower(name))
		if d < bestDist || (d == bestDist && name < best) {
			best, bestDist = name, d
		}
	}
	if best != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", path+best)
	}
	return msg
}

// yamlFields maps the yaml keys of struct t to their field types.
func yamlFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" || !f.IsExported() {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		fields[name] = f.Type
	}
	return fields
}
