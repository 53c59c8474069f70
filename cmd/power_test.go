package cmd

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/Tiliavir/hyprkit/internal/config"
)

type recordingRunner struct {
	calls [][]string
}

func (r *recordingRunner) Start(argv []string) error {
	r.calls = append(r.calls, argv)
	return nil
}

func TestRunPowerAction(t *testing.T) {
	actions := powerActions(config.PowerConfig{Lock: []string{"loginctl", "lock-session"}})

	tests := []struct {
		name    string
		want    []string
		wantErr bool
	}{
		{"lock", []string{"loginctl", "lock-session"}, false},
		{"Shutdown", []string{"systemctl", "poweroff"}, false},
		{"REBOOT", []string{"systemctl", "reboot"}, false},
		{"hibernate", nil, true},
	}
	for _, tt := range tests {
		r := &recordingRunner{}
		var out bytes.Buffer
		err := runPowerAction(&out, r, actions, tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("runPowerAction(%q) error = %v", tt.name, err)
			continue
		}
		if tt.wantErr {
			if len(r.calls) != 0 {
				t.Errorf("runPowerAction(%q) ran %v", tt.name, r.calls)
			}
			continue
		}
		if len(r.calls) != 1 || !reflect.DeepEqual(r.calls[0], tt.want) {
			t.Errorf("runPowerAction(%q) calls = %v, want [%v]", tt.name, r.calls, tt.want)
		}
	}
}
