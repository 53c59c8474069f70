package model

// Category labels, in display order.
const (
	CategoryWorkspaces = "workspaces"
	CategoryWindows    = "window management"
	CategoryApps       = "apps"
	CategoryScratchpad = "scratchpads"
	CategorySystem     = "system"
	CategoryOther      = "other"
)

// CategoryOrder is the order categories are shown in.
var CategoryOrder = []string{
	CategoryWorkspaces,
	CategoryWindows,
	CategoryApps,
	CategoryScratchpad,
	CategorySystem,
	CategoryOther,
}

// Bind is one parsed key binding.
type Bind struct {
	Keys        string `json:"keys" yaml:"keys"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"-" yaml:"-"`
}

// BindGroup is a category together with its binds in file order.
type BindGroup struct {
	Category string `json:"category" yaml:"category"`
	Binds    []Bind `json:"binds" yaml:"binds"`
}
