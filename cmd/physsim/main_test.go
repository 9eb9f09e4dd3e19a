package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const landing = `dt: 0.5
ticks: 12
bodies:
  - {name: ground, x: 0, y: 0, w: 10, h: 10, static: true}
  - {name: crate, x: 0, y: -20, w: 10, h: 10, gravity: [0, 10]}
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagLogLevel, flagTicks, flagDt = "error", 0, 0
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeScenario(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommands(t *testing.T) {
	path := writeScenario(t, landing)

	cases := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{name: "check", args: []string{"check", path}, want: []string{"ok (2 bodies, 12 ticks, dt 0.5)"}},
		{name: "run", args: []string{"run", path, "--log-level", "error"}, want: []string{"tick 3", "crate <-> ground", "pos (0.000, -10.000)"}},
		{name: "run_fewer_ticks", args: []string{"run", path, "--ticks", "2", "--log-level", "error"}, want: []string{"(none)"}},
		{name: "bad_level", args: []string{"run", path, "--log-level", "loud"}, wantErr: true},
		{name: "missing", args: []string{"check", filepath.Join(t.TempDir(), "nope.yaml")}, wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := execute(t, c.args...)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got output %q", out)
				}
				return
			}
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			for _, w := range c.want {
				if !strings.Contains(out, w) {
					t.Fatalf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}
