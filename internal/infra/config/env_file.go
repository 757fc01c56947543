package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"toolbox/internal/domain"
)

// LoadEnvFile exports the variables of a dotenv file so TOOLBOX_
// overrides and ${VAR} references can live next to the config file.
// Variables already set in the environment win. A missing file is
// reported as false with no error.
func LoadEnvFile(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err := godotenv.Load(path); err != nil {
		return false, domain.E(domain.CodeInvalidArgument, "config.env_file", "load "+path, err)
	}
	return true, nil
}
