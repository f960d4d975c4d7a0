// Package filter parses ImGuiFileDialog filter expressions and matches
// file names against them. The engine consumes these expressions
// verbatim; this package exists so applications can validate a filter
// before opening a dialog and re-apply the same filtering to paths on
// their own side (drag-and-drop, recent files, and so on).
//
// Supported forms, combinable with commas:
//
//	.txt              one extension
//	.txt,.md,.rs      several extensions
//	.*                everything
//	Sources{.c,.h}    a labeled collection, shown as one entry
package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

var (
	// ErrEmpty marks an expression with no patterns at all.
	ErrEmpty = errors.New("empty filter expression")
	// ErrUnbalanced marks a '{' without its '}'.
	ErrUnbalanced = errors.New("unbalanced braces in filter expression")
)

// Group is one filter entry: either a bare pattern (empty Label, one
// pattern) or a labeled collection.
type Group struct {
	Label    string
	Patterns []string
}

// Spec is a parsed filter expression.
type Spec struct {
	groups []Group
	globs  []glob.Glob
}

// Parse validates expr and compiles its patterns for matching.
func Parse(expr string) (*Spec, error) {
	if strings.IndexByte(expr, 0) >= 0 {
		return nil, errors.New("filter expression contains an embedded NUL byte")
	}

	var groups []Group
	rest := expr
	for rest != "" {
		brace := strings.IndexByte(rest, '{')
		comma := strings.IndexByte(rest, ',')

		if brace >= 0 && (comma < 0 || brace < comma) {
			end := strings.IndexByte(rest, '}')
			if end < brace {
				return nil, ErrUnbalanced
			}
			label := strings.TrimSpace(rest[:brace])
			patterns := splitPatterns(rest[brace+1 : end])
			if label == "" || len(patterns) == 0 {
				return nil, fmt.Errorf("invalid collection %q", rest[:end+1])
			}
			groups = append(groups, Group{Label: label, Patterns: patterns})
			rest = strings.TrimPrefix(rest[end+1:], ",")
			continue
		}

		var token string
		if comma >= 0 {
			token, rest = rest[:comma], rest[comma+1:]
		} else {
			token, rest = rest, ""
		}
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		groups = append(groups, Group{Patterns: []string{token}})
	}
	if len(groups) == 0 {
		return nil, ErrEmpty
	}

	var globs []glob.Glob
	for _, grp := range groups {
		for _, p := range grp.Patterns {
			g, err := glob.Compile(patternGlob(p))
			if err != nil {
				return nil, fmt.Errorf("compile pattern %q: %w", p, err)
			}
			globs = append(globs, g)
		}
	}
	return &Spec{groups: groups, globs: globs}, nil
}

// MustParse is Parse that panics on error, for expressions known at
// compile time.
func MustParse(expr string) *Spec {
	s, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return s
}

func splitPatterns(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// patternGlob turns a filter pattern into a glob over file names.
// ".txt" means "any name ending in .txt"; anything already carrying
// metacharacters is used as written.
func patternGlob(p string) string {
	if p == ".*" {
		return "*"
	}
	if strings.HasPrefix(p, ".") && !strings.ContainsAny(p, "*?[") {
		return "*" + p
	}
	return p
}

// Groups returns the parsed entries in order.
func (s *Spec) Groups() []Group {
	out := make([]Group, len(s.groups))
	copy(out, s.groups)
	return out
}

// Match reports whether name matches any compiled pattern. Only the
// base name is considered, as in the dialog itself.
func (s *Spec) Match(name string) bool {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	for _, g := range s.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// String re-emits the expression in the engine's syntax.
func (s *Spec) String() string {
	parts := make([]string, 0, len(s.groups))
	for _, grp := range s.groups {
		if grp.Label == "" {
			parts = append(parts, grp.Patterns[0])
		} else {
			parts = append(parts, grp.Label+"{"+strings.Join(grp.Patterns, ",")+"}")
		}
	}
	return strings.Join(parts, ",")
}
