package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the process-level configuration: where the databases live and
// how chatty we are. Dialog state lives in the conf store, not here.
type Config struct {
	DataDir       string
	ConfDBPath    string
	LibraryDBPath string
	Verbose       bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	dataDir := strings.TrimSpace(os.Getenv("FILMROLL_DATA_DIR"))
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		dataDir = filepath.Join(home, ".config", "filmroll")
	}
	dataDirAbs, err := filepath.Abs(dataDir)
	if err != nil {
		return Config{}, err
	}
	if err := os.MkdirAll(dataDirAbs, 0o755); err != nil {
		return Config{}, err
	}

	return Config{
		DataDir:       dataDirAbs,
		ConfDBPath:    filepath.Join(dataDirAbs, "conf.db"),
		LibraryDBPath: filepath.Join(dataDirAbs, "library.db"),
		Verbose:       envTruthy("FILMROLL_VERBOSE"),
	}, nil
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
