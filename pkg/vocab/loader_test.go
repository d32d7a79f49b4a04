package vocab

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeVocabFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "species.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Writing vocabulary file: %v", err)
	}
	return path
}

func TestFromFile(t *testing.T) {
	path := writeVocabFile(t, `# common species
Blue Jay

Northern Cardinal
  Wood Thrush
`)
	v, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}

	expected := []string{"Blue Jay", "Northern Cardinal", "Wood Thrush"}
	if got := v.Names(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestFromFileSkipsOverlongLines(t *testing.T) {
	path := writeVocabFile(t, "Blue Jay\n"+strings.Repeat("x", 80)+"\n")
	v, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if v.Len() != 1 {
		t.Errorf("Expected overlong line skipped, got %d terms", v.Len())
	}
}

func TestFromFileEmpty(t *testing.T) {
	path := writeVocabFile(t, "# nothing here\n\n")
	if _, err := FromFile(path); err == nil {
		t.Error("Expected an error for a file with no terms")
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
