// Package complete provides filesystem path completion and inline ghost
// text for the dashboard's path and branch inputs.
package complete

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Completion holds the suggestions for a partial path plus the ghost text
// to render after the typed prefix. Suggestions are full display paths, with
// the home directory abbreviated when the input used "~" and a trailing "/"
// on directories.
type Completion struct {
	Suggestions []string
	Ghost       string
}

// Path completes a partially typed filesystem path. An empty input lists
// the current directory. Inputs ending in "/" list that directory; anything
// else is split into a parent directory and a name prefix.
func Path(partial string) Completion {
	partial = strings.TrimSpace(partial)
	if partial == "" {
		return completeInDirectory(".", "", true)
	}
	usesTilde := partial == "~" || strings.HasPrefix(partial, "~/")
	expanded := ExpandPath(partial)
	if strings.HasSuffix(expanded, "/") {
		if isDir(expanded) {
			return completeInDirectory(expanded, "", usesTilde)
		}
		return Completion{}
	}
	dir := filepath.Dir(expanded)
	prefix := filepath.Base(expanded)
	if !isDir(dir) {
		return Completion{}
	}
	return completeInDirectory(dir, prefix, usesTilde)
}

func completeInDirectory(dir, prefix string, usesTilde bool) Completion {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Completion{}
	}
	prefixLower := strings.ToLower(prefix)
	type candidate struct {
		display string
		isDir   bool
	}
	var matches []candidate
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(strings.ToLower(name), prefixLower) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		full := filepath.Join(dir, name)
		display := full
		if usesTilde {
			display = abbreviateHome(full)
		}
		dirEntry := isDir(full)
		if dirEntry {
			display += "/"
		}
		matches = append(matches, candidate{display: display, isDir: dirEntry})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isDir != matches[j].isDir {
			return matches[i].isDir
		}
		return strings.ToLower(matches[i].display) < strings.ToLower(matches[j].display)
	})
	suggestions := make([]string, len(matches))
	for i, m := range matches {
		suggestions[i] = m.display
	}
	return Completion{Suggestions: suggestions, Ghost: ghostFor(suggestions, prefix)}
}

// ghostFor derives the inline completion hint from the first suggestion:
// the part of its final path component that extends past the typed prefix.
// Directory suggestions end in "/" so their final component is empty and
// they produce no ghost.
func ghostFor(suggestions []string, prefix string) string {
	if len(suggestions) == 0 {
		return ""
	}
	first := suggestions[0]
	name := first[strings.LastIndex(first, "/")+1:]
	if strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefix)) && len(name) > len(prefix) {
		return name[len(prefix):]
	}
	return ""
}

// BranchGhost returns the remainder of the targeted branch after the typed
// input. The target is branches[selected] when selected is a valid index,
// otherwise the first branch. Pass selected < 0 when nothing is selected.
func BranchGhost(input string, branches []string, selected int) string {
	if len(branches) == 0 {
		return ""
	}
	var target string
	if selected >= 0 {
		if selected >= len(branches) {
			return ""
		}
		target = branches[selected]
	} else {
		target = branches[0]
	}
	if strings.HasPrefix(strings.ToLower(target), strings.ToLower(input)) && len(target) > len(input) {
		return target[len(input):]
	}
	return ""
}

// ExpandPath substitutes a leading "~" with the user's home directory. The
// substitution is textual so a trailing slash survives.
func ExpandPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return home + path[1:]
	}
	return path
}

func abbreviateHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+"/") {
		return "~" + path[len(home):]
	}
	return path
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}
