package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/happyhackingspace/stoplist"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Language != "latin" {
		t.Errorf("Language = %q, want %q", cfg.Language, "latin")
	}
	if got, want := cfg.Options(), stoplist.DefaultOptions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Default().Options() = %+v, want %+v", got, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stoplist.yaml")
	content := `
language: english
basis: frequency
size: 50
sortWords: false
stem: true
include: [alpha]
exclude: [beta, gamma]
strip: ["The Latin Library"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Language != "english" {
		t.Errorf("Language = %q, want %q", cfg.Language, "english")
	}
	if cfg.Basis != "frequency" || cfg.Size != 50 || cfg.SortWords || !cfg.Stem {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Keys absent from the file keep their defaults.
	if !cfg.Lower || !cfg.RemovePunctuation || !cfg.RemoveNumbers {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Exclude, []string{"beta", "gamma"}) {
		t.Errorf("Exclude = %v", cfg.Exclude)
	}
	if !reflect.DeepEqual(cfg.Strip, []string{"The Latin Library"}) {
		t.Errorf("Strip = %v", cfg.Strip)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("size: [not an int\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestOptionsConversion(t *testing.T) {
	cfg := Default()
	cfg.Basis = "entropy"
	cfg.FoldDiacritics = true
	cfg.Include = []string{"x"}

	opts := cfg.Options()
	if opts.Basis != stoplist.BasisEntropy {
		t.Errorf("Basis = %q, want %q", opts.Basis, stoplist.BasisEntropy)
	}
	if !opts.FoldDiacritics {
		t.Error("FoldDiacritics not carried over")
	}
	if !reflect.DeepEqual(opts.Include, []string{"x"}) {
		t.Errorf("Include = %v", opts.Include)
	}
}
