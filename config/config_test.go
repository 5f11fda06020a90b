package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/folio/input"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/vmath"
	"github.com/pixil98/go-testutil"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	testutil.AssertEqual(t, "tick", cfg.Tick(), parameter.TickInterval)
	testutil.AssertEqual(t, "hold", cfg.Hold(), parameter.KeyHoldWindow)
	testutil.AssertEqual(t, "audio", cfg.AudioEnabled(), true)
}

func TestLoad(t *testing.T) {
	tests := map[string]struct {
		content  string
		wantErr  string
		validate func(t *testing.T, cfg *Config)
	}{
		"full file": {
			content: `tick_interval: 20ms
hold_window: 300ms
start_x: -4
audio:
  enabled: false
  volume: 0.25
targets:
  - id: one
    title: First
    position: [1, 0, -2]
  - id: two
    position: [5]
`,
			validate: func(t *testing.T, cfg *Config) {
				testutil.AssertEqual(t, "tick", cfg.Tick(), 20*time.Millisecond)
				testutil.AssertEqual(t, "hold", cfg.Hold(), 300*time.Millisecond)
				testutil.AssertEqual(t, "start_x", cfg.StartX, -4.0)
				testutil.AssertEqual(t, "audio", cfg.AudioEnabled(), false)
				testutil.AssertEqual(t, "volume", cfg.AudioVolume(), 0.25)

				cat := cfg.Catalog()
				testutil.AssertEqual(t, "targets", cat.Len(), 2)
				p, _ := cat.Lookup("one")
				testutil.AssertEqual(t, "position", p.Position, vmath.Vec3F{X: 1, Y: 0, Z: -2})
				p, _ = cat.Lookup("two")
				testutil.AssertEqual(t, "short position", p.Position, vmath.Vec3F{X: 5})
			},
		},
		"empty file uses defaults": {
			content: ``,
			validate: func(t *testing.T, cfg *Config) {
				testutil.AssertEqual(t, "tick", cfg.Tick(), parameter.TickInterval)
				testutil.AssertEqual(t, "targets", len(cfg.Targets), len(Default().Targets))
				testutil.AssertEqual(t, "audio", cfg.AudioEnabled(), true)
				testutil.AssertEqual(t, "volume", cfg.AudioVolume(), parameter.AudioDefaultVolume)
			},
		},
		"explicit zero volume": {
			content: "audio:\n  volume: 0\n",
			validate: func(t *testing.T, cfg *Config) {
				testutil.AssertEqual(t, "volume", cfg.AudioVolume(), 0.0)
				testutil.AssertEqual(t, "audio", cfg.AudioEnabled(), true)
			},
		},
		"bad tick interval": {
			content: "tick_interval: soon\n",
			wantErr: "parsing tick_interval",
		},
		"tick interval too long": {
			content: "tick_interval: 5s\n",
			wantErr: "tick_interval must be between",
		},
		"start outside bounds": {
			content: "start_x: 12\n",
			wantErr: "start_x 12 outside",
		},
		"volume out of range": {
			content: "audio:\n  volume: 2\n",
			wantErr: "audio volume 2 outside",
		},
		"target without id": {
			content: "targets:\n  - title: nameless\n    position: [0]\n",
			wantErr: "id is required",
		},
		"target without position": {
			content: "targets:\n  - id: floating\n",
			wantErr: "position needs 1 to 3 components",
		},
		"duplicate target": {
			content: "targets:\n  - id: a\n    position: [0]\n  - id: a\n    position: [1]\n",
			wantErr: `duplicate id "a"`,
		},
		"key overrides": {
			content: "keys:\n  jump: [j, Enter]\n  none: [w]\n",
			validate: func(t *testing.T, cfg *Config) {
				kt, err := cfg.KeyTable()
				if err != nil {
					t.Fatalf("key table: %v", err)
				}
				testutil.AssertEqual(t, "j jumps", kt.Lookup(input.RuneCode('j')), input.CommandJump)
				testutil.AssertEqual(t, "w unbound", kt.Handles(input.RuneCode('w')), false)
				testutil.AssertEqual(t, "default left kept", kt.Lookup(input.RuneCode('a')), input.CommandMoveLeft)
			},
		},
		"unknown key command": {
			content: "keys:\n  fly: [f]\n",
			wantErr: "unknown command",
		},
		"malformed yaml": {
			content: "targets: [",
			wantErr: "parsing config",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "folio.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("writing config: %v", err)
			}

			cfg, err := Load(path)
			if tt.wantErr != "" {
				testutil.AssertErrorContains(t, err, tt.wantErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	testutil.AssertErrorContains(t, err, "reading config")
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "targets", cfg.Catalog().Len(), len(Default().Targets))
}

// TestValidateReportsAllProblems checks that every violation is aggregated
func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.TickInterval = "never"
	cfg.StartX = 99
	cfg.Targets = []TargetConfig{{}}

	err := cfg.Validate()
	testutil.AssertErrorContains(t, err, "tick_interval")
	testutil.AssertErrorContains(t, err, "start_x")
	testutil.AssertErrorContains(t, err, "id is required")
}
