package utils

import (
	"os"
	"path/filepath"
)

func ExecutableDir() string {
	path, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(path)
}
