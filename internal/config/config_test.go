package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStripLineComments(t *testing.T) {
	in := "// header\n{\n  // note\n  \"a\": 1 // kept\n}\n"
	got := string(stripLineComments([]byte(in)))
	want := "{\n  \"a\": 1 // kept\n}\n\n"
	if got != want {
		t.Errorf("stripLineComments = %q, want %q", got, want)
	}
}

func TestTemplateParsesToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hyprkit", "config.json")

	cfg, err := LoadFile(path, true)
	if err != nil {
		t.Fatalf("LoadFile first run: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("first run config = %+v, want defaults", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("template not written: %v", err)
	}

	again, err := LoadFile(path, true)
	if err != nil {
		t.Fatalf("LoadFile template: %v", err)
	}
	def := Default()
	if again.Salaat.City != def.Salaat.City || again.Salaat.Country != def.Salaat.Country {
		t.Errorf("template location = %s/%s", again.Salaat.City, again.Salaat.Country)
	}
	if again.Salaat.MethodOrDefault() != DefaultMethod || again.Salaat.SchoolOrDefault() != DefaultSchool {
		t.Errorf("template method/school = %d/%d", again.Salaat.MethodOrDefault(), again.Salaat.SchoolOrDefault())
	}
	if again.Hadith != def.Hadith {
		t.Errorf("template hadith = %+v, want %+v", again.Hadith, def.Hadith)
	}
	if len(again.Power.Lock)+len(again.Power.Logout)+len(again.Power.Shutdown)+len(again.Power.Reboot) != 0 {
		t.Errorf("template power overrides = %+v, want none", again.Power)
	}
}

func TestLoadFileMissingNoCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if _, err := LoadFile(path, false); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file to be written, stat err = %v", err)
	}
}

func TestLoadFileTemplateWriteFailureIsWarning(t *testing.T) {
	dir := t.TempDir()
	// A dangling symlink as parent: reading reports not-exist, creating the
	// directory fails.
	parent := filepath.Join(dir, "hyprkit")
	if err := os.Symlink(filepath.Join(dir, "missing"), parent); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	path := filepath.Join(parent, "config.json")

	cfg, err := LoadFile(path, true)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("config = %+v, want defaults", cfg)
	}
	if _, err := os.Lstat(path); err == nil {
		t.Error("template should not have been written")
	}
}

func TestLoadWithoutHome(t *testing.T) {
	t.Setenv("HOME", "")
	cfg, err := Load()
	if err == nil {
		t.Fatal("Load without HOME should report the missing home directory")
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestLoadFilePartialBackfill(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `// partial
{
  "salaat": {"city": "Cape Town", "school": 1},
  "power": {"lock": ["loginctl", "lock-session"]}
}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path, false)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"city", cfg.Salaat.City, "Cape Town"},
		{"country", cfg.Salaat.Country, DefaultCountry},
		{"method", cfg.Salaat.MethodOrDefault(), DefaultMethod},
		{"school", cfg.Salaat.SchoolOrDefault(), 1},
		{"timeout", cfg.Salaat.TimeoutSeconds, DefaultTimeoutSeconds},
		{"collection", cfg.Hadith.Collection, DefaultCollection},
		{"max", cfg.Hadith.MaxNumber, DefaultMaxNumber},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if !reflect.DeepEqual(cfg.Power.Lock, []string{"loginctl", "lock-session"}) {
		t.Errorf("power.lock = %v", cfg.Power.Lock)
	}
}

func TestExplicitZeroMethodKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"salaat": {"method": 0}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path, false)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := cfg.Salaat.MethodOrDefault(); got != 0 {
		t.Errorf("method = %d, want 0", got)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path, false)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("config on error = %+v, want defaults", cfg)
	}
}
