// Package docs holds the user documentation of cmap: one markdown topic per
// file, shown by the topic command.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed *.md
var files embed.FS

// Index is the topic listing all the others.
const Index = "readme"

// All stands for every topic but the Index.
const All = "*"

// Topics returns the names of the topics, Index excluded, in alphabetical order.
func Topics() []string {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if name != Index {
			names = append(names, name)
		}
	}
	return names
}

// Read returns the named topics, one after the other.
func Read(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		if name == All {
			all, err := Read(Topics()...)
			if err != nil {
				return "", err
			}
			b.WriteString(all)
			continue
		}
		content, err := files.ReadFile(name + ".md")
		if err != nil {
			return "", fmt.Errorf("unknown topic %q, want one of %s", name, strings.Join(Topics(), ", "))
		}
		b.Write(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
