package vocab

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// maxNameLength caps a single species name. Longer lines are almost
// certainly not names and get skipped with a warning.
const maxNameLength = 60

// FromFile loads a Vocabulary from a plain-text file, one species name
// per line. Blank lines and '#' comments are skipped; order is kept.
func FromFile(path string) (*Vocabulary, error) {
	names, err := ReadNames(path)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no terms", path)
	}
	log.Debugf("Loaded %d terms from %s", len(names), path)
	return New(names), nil
}

// ReadNames reads raw species names from a text file without
// deduplication; New handles that so load order survives intact.
func ReadNames(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len(line) > maxNameLength {
			log.Warnf("Skipping line %d of %s: name exceeds %d characters", lineNo, path, maxNameLength)
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}
	return names, nil
}
