package config

import (
	"fmt"
	"sort"

	"github.com/cheddar-build/cheddar/internal/fancy"
)

// String returns a pretty-printed tree representation of the configuration
func (c Configuration) String() string {
	return Tree(c)
}

// Tree converts a Configuration into a rendered tree string
func Tree(cfg Configuration) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render("Build Environment"))

	for _, key := range sortedKeys(cfg) {
		switch val := cfg[key].(type) {
		case map[string]string:
			branch := fancy.Branch(fancy.HeaderStyle.Render(key))
			for _, k := range sortedMapKeys(val) {
				branch.Child(fmt.Sprintf("%s = %s", k, val[k]))
			}
			t.Child(branch)
		case map[string]any:
			branch := fancy.Branch(fancy.HeaderStyle.Render(key))
			for _, k := range sortedMapKeys(val) {
				branch.Child(fmt.Sprintf("%s = %v", k, val[k]))
			}
			t.Child(branch)
		case []string:
			branch := fancy.Branch(fancy.HeaderStyle.Render(key))
			for _, item := range val {
				branch.Child(item)
			}
			t.Child(branch)
		case []any:
			branch := fancy.Branch(fancy.HeaderStyle.Render(key))
			for _, item := range val {
				branch.Child(fmt.Sprintf("%v", item))
			}
			t.Child(branch)
		default:
			t.Child(fancy.TruncateString(fmt.Sprintf("%s = %v", key, val), 80))
		}
	}

	return t.String()
}

func sortedKeys(cfg Configuration) []string {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedMapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
