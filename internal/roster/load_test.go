package roster

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeJSONCollection(t *testing.T) {
	raws, err := Decode([]byte(`[{"name":"A","roles":["Roam"]}, 5, {"name":"B","age":21}]`), FormatJSON)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(raws) != 3 {
		t.Fatalf("expected 3 raw entries, got %d", len(raws))
	}
	first, ok := raws[0].(map[string]any)
	if !ok || first["name"] != "A" {
		t.Fatalf("unexpected first entry: %#v", raws[0])
	}
	if _, ok := raws[1].(float64); !ok {
		t.Fatalf("expected scalar entry to survive decoding, got %#v", raws[1])
	}
}

func TestDecodeRejectsNonCollections(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"invalid json", `[{"name":`, FormatJSON},
		{"json object", `{"name":"A"}`, FormatJSON},
		{"empty json", ``, FormatJSON},
		{"yaml mapping", "name: A\n", FormatYAML},
		{"broken yaml", "- name: [A\n", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			if !errors.Is(err, ErrNotCollection) {
				t.Fatalf("expected ErrNotCollection, got %v", err)
			}
		})
	}
}

func TestDecodeYAMLCollection(t *testing.T) {
	data := []byte("- name: A\n  roles: [Roam, Jungle]\n- nama: B\n  date_of_join: 2020-01-01\n")
	raws, err := Decode(data, FormatYAML)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	records, stats := NormalizeAll(raws)
	if stats.Valid != 2 {
		t.Fatalf("expected two valid records, got %+v", stats)
	}
	if records[1].Name != "B" || records[1].Date != "2020-01-01" {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "roster.csv")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}
