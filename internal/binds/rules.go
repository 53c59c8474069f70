package binds

import (
	"strings"

	"github.com/Tiliavir/hyprkit/internal/model"
)

// Rule files a description under Category when Match reports true.
type Rule struct {
	Category string
	Match    func(lowerDescription string) bool
}

// Contains returns a Rule matching descriptions that contain keyword.
func Contains(keyword, category string) Rule {
	return Rule{
		Category: category,
		Match: func(desc string) bool {
			return strings.Contains(desc, keyword)
		},
	}
}

// DefaultRules is evaluated top to bottom; the first match wins.
var DefaultRules = []Rule{
	Contains("window", model.CategoryWindows),
	Contains("launch", model.CategoryApps),
	Contains("workspace", model.CategoryWorkspaces),
	Contains("scratchpad", model.CategoryScratchpad),
	Contains("hyprland", model.CategorySystem),
}

// Classify returns the category of the first rule matching the lowercased
// description, or model.CategoryOther.
func Classify(description string, rules []Rule) string {
	desc := strings.ToLower(description)
	for _, r := range rules {
		if r.Match(desc) {
			return r.Category
		}
	}
	return model.CategoryOther
}
