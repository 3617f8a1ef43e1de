package statusled

import (
	"testing"

	"github.com/Bluscream/rgb-status-led/signals"
)

// allConnected is the quiet baseline: nothing wrong, everything connected.
var allConnected = signals.Snapshot{WifiConnected: true, APIConnected: true}

func TestResolve_PriorityOrder(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		sig  signals.Snapshot
		want Level
	}{
		{
			name: "error beats everything",
			sig: signals.Snapshot{
				HasError:   true,
				HasWarning: true,
				OTAActive:  true,
				BootActive: true,
			},
			want: LevelError,
		},
		{
			name: "warning beats ota and below",
			sig: signals.Snapshot{
				HasWarning: true,
				OTAActive:  true,
				BootActive: true,
			},
			want: LevelWarning,
		},
		{
			name: "ota beats boot",
			sig:  signals.Snapshot{OTAActive: true, BootActive: true},
			want: LevelOTA,
		},
		{
			name: "boot beats connectivity",
			sig:  signals.Snapshot{BootActive: true},
			want: LevelBoot,
		},
		{
			name: "wifi down shown alone",
			sig:  signals.Snapshot{},
			want: LevelWifiDisconnected,
		},
		{
			name: "wifi down implies api down",
			sig:  signals.Snapshot{WifiConnected: false, APIConnected: false},
			want: LevelWifiDisconnected,
		},
		{
			name: "api down with wifi up",
			sig:  signals.Snapshot{WifiConnected: true},
			want: LevelAPIDisconnected,
		},
		{
			name: "all clear resolves ok",
			sig:  allConnected,
			want: LevelOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := resolve(cfg, tt.sig, UserCommand{}, false)
			if out.Level != tt.want {
				t.Errorf("resolve() = %v, want %v", out.Level, tt.want)
			}
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	sig := signals.Snapshot{HasWarning: true, WifiConnected: true}

	first := resolve(cfg, sig, UserCommand{}, false)
	for i := 0; i < 10; i++ {
		if out := resolve(cfg, sig, UserCommand{}, false); out != first {
			t.Fatalf("resolution %d = %+v, want %+v", i, out, first)
		}
	}
}

func TestResolve_OKStateDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OKStateEnabled = false

	out := resolve(cfg, allConnected, UserCommand{}, false)
	if out.Level != LevelOff {
		t.Errorf("resolve() with ok state disabled = %v, want %v", out.Level, LevelOff)
	}

	// Disabling the OK indication must not hide real status.
	out = resolve(cfg, signals.Snapshot{HasError: true}, UserCommand{}, false)
	if out.Level != LevelError {
		t.Errorf("resolve() with error = %v, want %v", out.Level, LevelError)
	}
}

func TestResolve_UserPriorityMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PriorityMode = PriorityUser
	cmd := UserCommand{Color: Color{R: 1}, On: true, Seq: 1}

	// An active command suppresses even errors.
	out := resolve(cfg, signals.Snapshot{HasError: true}, cmd, true)
	if out.Level != LevelUser {
		t.Errorf("resolve() = %v, want %v", out.Level, LevelUser)
	}
	if out.Command != cmd {
		t.Errorf("resolve() command = %+v, want %+v", out.Command, cmd)
	}

	// Without a command, status shows normally.
	out = resolve(cfg, signals.Snapshot{HasError: true}, UserCommand{}, false)
	if out.Level != LevelError {
		t.Errorf("resolve() without command = %v, want %v", out.Level, LevelError)
	}
}

func TestResolve_StatusPriorityMode(t *testing.T) {
	cfg := DefaultConfig()
	cmd := UserCommand{Color: Color{R: 1, G: 1, B: 1}, On: true, Seq: 1}

	tests := []struct {
		name string
		sig  signals.Snapshot
		want Level
	}{
		{"error masks user command", signals.Snapshot{HasError: true}, LevelError},
		{"wifi down masks user command", signals.Snapshot{}, LevelWifiDisconnected},
		{"user command shows when all clear", allConnected, LevelUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := resolve(cfg, tt.sig, cmd, true)
			if out.Level != tt.want {
				t.Errorf("resolve() = %v, want %v", out.Level, tt.want)
			}
		})
	}

	// The user passthrough also wins over the Off transform.
	cfg.OKStateEnabled = false
	out := resolve(cfg, allConnected, cmd, true)
	if out.Level != LevelUser {
		t.Errorf("resolve() with ok disabled = %v, want %v", out.Level, LevelUser)
	}
}

// Totality: every combination of the six signals resolves to a defined
// level, with and without an active user command.
func TestResolve_Totality(t *testing.T) {
	cfg := DefaultConfig()
	cmd := UserCommand{Color: Color{B: 1}, On: true, Seq: 1}

	for mask := 0; mask < 64; mask++ {
		sig := signals.Snapshot{
			HasError:      mask&1 != 0,
			HasWarning:    mask&2 != 0,
			WifiConnected: mask&4 != 0,
			APIConnected:  mask&8 != 0,
			OTAActive:     mask&16 != 0,
			BootActive:    mask&32 != 0,
		}
		for _, active := range []bool{false, true} {
			out := resolve(cfg, sig, cmd, active)
			if out.Level.String() == "unknown" {
				t.Fatalf("resolve(%+v, active=%v) produced undefined level %d", sig, active, out.Level)
			}
		}
	}
}
