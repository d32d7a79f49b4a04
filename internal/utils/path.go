package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver locates config and vocabulary files relative to the
// running binary so the tool works both from a checkout and installed.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver determines the executable location and the platform
// config directory up front.
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     platformConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// platformConfigDir returns the appropriate config directory for the platform
func platformConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin", "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "birdserve")
		}
		return filepath.Join(homeDir, ".config", "birdserve")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "birdserve")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "birdserve")
	default:
		return filepath.Join(homeDir, ".birdserve")
	}
}

// GetConfigPath returns the full path for a config file, preferring the
// platform config dir and falling back to writable alternatives.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if pr.ensureWritableDir(pr.configDir) {
		return filepath.Join(pr.configDir, filename), nil
	}

	fallbackDirs := []string{
		filepath.Join(pr.homeDir, ".birdserve"),
		filepath.Join(os.TempDir(), "birdserve"),
		pr.executableDir,
	}
	for _, dir := range fallbackDirs {
		if pr.ensureWritableDir(dir) {
			path := filepath.Join(dir, filename)
			log.Warnf("Using fallback config location: %s", path)
			return path, nil
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath, nil
}

// ResolveVocabPath resolves a user-supplied vocabulary file path.
// Relative paths are tried against the working directory first, then
// the executable and config directories. Empty input stays empty and
// callers fall back to the builtin species list.
func (pr *PathResolver) ResolveVocabPath(userPath string) (string, error) {
	if userPath == "" {
		return "", nil
	}
	if filepath.IsAbs(userPath) {
		if FileExists(userPath) {
			return userPath, nil
		}
		return "", os.ErrNotExist
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userPath))
	}
	candidates = append(candidates,
		filepath.Join(pr.executableDir, userPath),
		filepath.Join(pr.configDir, userPath),
	)

	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Resolved vocabulary file: %s", path)
			return path, nil
		}
		log.Debugf("Vocabulary candidate not found: %s", path)
	}
	return "", os.ErrNotExist
}

// ensureWritableDir creates the directory if needed and tests writability.
func (pr *PathResolver) ensureWritableDir(dir string) bool {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Debugf("Cannot create directory %s: %v", dir, err)
		return false
	}
	testFile := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		log.Debugf("Directory %s is not writable: %v", dir, err)
		return false
	}
	os.Remove(testFile)
	return true
}
