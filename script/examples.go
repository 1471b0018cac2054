package script

import (
	"embed"
	"path"
	"sort"
	"strings"
)

//go:embed examples/*.js
var examples embed.FS

// Example returns the source of a bundled pattern script
func Example(name string) (string, bool) {
	code, err := examples.ReadFile(path.Join("examples", name+".js"))
	if err != nil {
		return "", false
	}
	return string(code), true
}

// Examples lists the bundled pattern scripts
func Examples() []string {
	entries, _ := examples.ReadDir("examples")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".js"))
	}
	sort.Strings(names)
	return names
}
