// Package binds parses Hyprland bind directives and groups them into
// cheat-sheet categories.
package binds

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Tiliavir/hyprkit/internal/model"
)

// DirectivePrefix starts every bind keyword shown in the cheat sheet: bind
// itself and its flag variants such as binde, bindm, bindl or bindel.
const DirectivePrefix = "bind"

// DefaultPath returns ~/.config/hypr/binds.conf.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "hypr", "binds.conf"), nil
}

// ParseLine parses a single line of the form
//
//	bind = SUPER, Q, killactive # close window
//
// It returns false for lines that are not recognised bind directives or that
// lack a '#' description, an '=' assignment or a non-empty description.
// The returned Bind has no Category; see Classify.
func ParseLine(line string) (model.Bind, bool) {
	line = strings.TrimSpace(line)
	cmdPart, description, ok := strings.Cut(line, "#")
	if !ok {
		return model.Bind{}, false
	}
	directive, args, ok := strings.Cut(cmdPart, "=")
	if !ok || !isDirective(strings.TrimSpace(directive)) {
		return model.Bind{}, false
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return model.Bind{}, false
	}

	fields := strings.Split(args, ",")
	if len(fields) > 2 {
		fields = fields[:2]
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return model.Bind{
		Keys:        strings.Join(fields, ", "),
		Description: capitalize(description),
	}, true
}

// isDirective accepts "bind" followed only by lowercase flag letters.
func isDirective(s string) bool {
	flags, ok := strings.CutPrefix(s, DirectivePrefix)
	if !ok {
		return false
	}
	for _, r := range flags {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Categorize reads bind directives from r and groups them by category.
// Groups are returned in model.CategoryOrder; every category is present,
// possibly empty. Binds within a group keep their file order.
func Categorize(r io.Reader, rules []Rule) ([]model.BindGroup, error) {
	byCategory := make(map[string][]model.Bind, len(model.CategoryOrder))

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		b, ok := ParseLine(sc.Text())
		if !ok {
			continue
		}
		b.Category = Classify(b.Description, rules)
		byCategory[b.Category] = append(byCategory[b.Category], b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading binds: %w", err)
	}

	groups := make([]model.BindGroup, 0, len(model.CategoryOrder))
	for _, c := range model.CategoryOrder {
		groups = append(groups, model.BindGroup{Category: c, Binds: byCategory[c]})
	}
	return groups, nil
}

// Load opens path and categorizes its binds with DefaultRules.
func Load(path string) ([]model.BindGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening binds file: %w", err)
	}
	defer f.Close()
	return Categorize(f, DefaultRules)
}

// NonEmpty filters out groups without binds.
func NonEmpty(groups []model.BindGroup) []model.BindGroup {
	out := make([]model.BindGroup, 0, len(groups))
	for _, g := range groups {
		if len(g.Binds) > 0 {
			out = append(out, g)
		}
	}
	return out
}
