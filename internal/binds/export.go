package binds

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/hyprkit/internal/model"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
	FormatMD   = "md"
)

// Write renders non-empty groups to w in the given format.
func Write(w io.Writer, groups []model.BindGroup, format string) error {
	groups = NonEmpty(groups)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(groups)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(groups); err != nil {
			return err
		}
		return enc.Close()
	case FormatCSV:
		return writeCSV(w, groups)
	case FormatMD:
		return writeMarkdown(w, groups)
	case FormatText, "":
		return writeText(w, groups)
	default:
		return fmt.Errorf("unknown format %q (want text, json, yaml, csv or md)", format)
	}
}

func writeText(w io.Writer, groups []model.BindGroup) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintln(tw, strings.ToUpper(g.Category))
		fmt.Fprintln(tw, "KEYBIND\tDESCRIPTION")
		for _, b := range g.Binds {
			fmt.Fprintf(tw, "%s\t%s\n", b.Keys, b.Description)
		}
	}
	return tw.Flush()
}

func writeCSV(w io.Writer, groups []model.BindGroup) error {
	if _, err := fmt.Fprintln(w, "category,keybind,description"); err != nil {
		return err
	}
	for _, g := range groups {
		for _, b := range g.Binds {
			if _, err := fmt.Fprintf(w, "%s,%s,%s\n",
				csvEscape(g.Category), csvEscape(b.Keys), csvEscape(b.Description)); err != nil {
				return err
			}
		}
	}
	return nil
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	// Escape internal double quotes by doubling them.
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// writeMarkdown renders one table per category.
func writeMarkdown(w io.Writer, groups []model.BindGroup) error {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", strings.ToUpper(g.Category[:1])+g.Category[1:])
		b.WriteString("| Keybind | Description |\n")
		b.WriteString("|---------|-------------|\n")
		for _, bind := range g.Binds {
			fmt.Fprintf(&b, "| `%s` | %s |\n", bind.Keys, strings.ReplaceAll(bind.Description, "|", `\|`))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
