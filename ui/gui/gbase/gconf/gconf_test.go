package gconf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Theme != "light" || c.Orientation != "white" || c.CornerRadius != 6 {
		t.Errorf("defaults = %+v", c)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	c := defaultConfig()
	c.Theme = "dark"
	c.AutoPromote = true
	c.FEN = "8/8/8/8/8/8/8/8"

	if err := c.Save(file); err != nil {
		t.Fatal(err)
	}
	got, err := Load(file)
	if err != nil {
		t.Fatal(err)
	}
	if *got != c {
		t.Errorf("roundtrip = %+v, want %+v", *got, c)
	}
}

func TestLoadCorrectsBadValues(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	if err := os.WriteFile(file, []byte(`{"theme":"pink","orientation":"up","corner_radius":500,"window_w":10,"window_h":10}`), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(file)
	if err != nil {
		t.Fatal(err)
	}
	if c.Theme != "light" || c.Orientation != "white" {
		t.Errorf("bad values kept: %+v", c)
	}
	if c.CornerRadius != 6 || c.WindowW != 1000 || c.WindowH != 760 {
		t.Errorf("bad numbers kept: %+v", c)
	}
}

func TestLoadBrokenJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	if err := os.WriteFile(file, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(file); err == nil {
		t.Error("broken config accepted")
	}
}
