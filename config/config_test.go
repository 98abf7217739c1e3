package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/familiar/terminal"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "familiar", "config.toml")
	in := Config{Face: "figure", ColorMode: "256", Chime: false}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != in {
		t.Errorf("round trip: got %+v, want %+v", out, in)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "config.toml" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("dir contents = %v, want [config.toml]", names)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("face = \"orb"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed file succeeded, want error")
	}
}

func TestParseColorMode(t *testing.T) {
	cases := []struct {
		in     string
		mode   terminal.ColorMode
		detect bool
		ok     bool
	}{
		{"auto", terminal.ColorModeTrueColor, true, true},
		{"", terminal.ColorModeTrueColor, true, true},
		{"truecolor", terminal.ColorModeTrueColor, false, true},
		{"256", terminal.ColorMode256, false, true},
		{"16", 0, false, false},
	}
	for _, tc := range cases {
		mode, detect, err := ParseColorMode(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseColorMode(%q) err = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if !tc.ok {
			continue
		}
		if mode != tc.mode || detect != tc.detect {
			t.Errorf("ParseColorMode(%q) = (%v, %v), want (%v, %v)",
				tc.in, mode, detect, tc.mode, tc.detect)
		}
	}
}
