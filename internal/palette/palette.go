// Package palette loads pywal colour schemes.
package palette

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Palette is a resolved colour scheme.
type Palette struct {
	Background string
	Foreground string
	// Colors holds color0..colorN in order.
	Colors []string
}

// Color returns colors[i], or fallback when the palette is shorter.
func (p Palette) Color(i int, fallback string) string {
	if i >= 0 && i < len(p.Colors) && p.Colors[i] != "" {
		return p.Colors[i]
	}
	return fallback
}

// Fallback is used when pywal has not generated a scheme.
func Fallback() Palette {
	return Palette{
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Colors: []string{
			"#21222c",
			"#ff5555",
			"#50fa7b",
			"#ffb86c",
			"#bd93f9",
			"#ff79c6",
			"#8be9fd",
			"#f8f8f2",
		},
	}
}

// DefaultPaths returns the pywal cache files ~/.cache/wal/colors and
// ~/.cache/wal/colors.json.
func DefaultPaths() (linesPath, jsonPath string, err error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	dir := filepath.Join(home, ".cache", "wal")
	return filepath.Join(dir, "colors"), filepath.Join(dir, "colors.json"), nil
}

// LoadLines reads the plain pywal colors file, one colour per line.
// color0 doubles as background and color7 as foreground.
func LoadLines(path string) (Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return Palette{}, err
	}
	defer f.Close()

	var p Palette
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p.Colors = append(p.Colors, line)
	}
	if err := sc.Err(); err != nil {
		return Palette{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(p.Colors) == 0 {
		return Palette{}, fmt.Errorf("%s: no colours", path)
	}
	fb := Fallback()
	p.Background = p.Color(0, fb.Background)
	p.Foreground = p.Color(7, fb.Foreground)
	return p, nil
}

type walJSON struct {
	Special struct {
		Background string `json:"background"`
		Foreground string `json:"foreground"`
	} `json:"special"`
	Colors map[string]string `json:"colors"`
}

// LoadJSON reads pywal's colors.json.
func LoadJSON(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, err
	}
	var w walJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return Palette{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if w.Special.Background == "" || w.Special.Foreground == "" {
		return Palette{}, fmt.Errorf("%s: missing special colours", path)
	}

	p := Palette{Background: w.Special.Background, Foreground: w.Special.Foreground}
	for i := 0; ; i++ {
		c, ok := w.Colors["color"+strconv.Itoa(i)]
		if !ok {
			break
		}
		p.Colors = append(p.Colors, c)
	}
	return p, nil
}

// Load tries colors.json, then the plain colors file, then Fallback.
// It never fails; the returned error reports why the fallback was used.
func Load(linesPath, jsonPath string) (Palette, error) {
	p, jsonErr := LoadJSON(jsonPath)
	if jsonErr == nil {
		return p, nil
	}
	p, linesErr := LoadLines(linesPath)
	if linesErr == nil {
		return p, nil
	}
	return Fallback(), fmt.Errorf("using fallback palette: %v; %v", jsonErr, linesErr)
}
