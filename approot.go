package flyscene

import (
	"fmt"
	"os"
	"path/filepath"
)

const ConfigDir = "config"

// ApplicationRootDir is the working directory when it holds a config
// directory, otherwise the directory of the running executable.
func ApplicationRootDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	if hasConfig(wd) {
		return wd, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	exeDir := filepath.Dir(ex)
	if !hasConfig(exeDir) {
		log.Printf("Can't find %s folder in %s or %s, using working directory", ConfigDir, wd, exeDir)
		return wd, nil
	}
	return exeDir, nil
}

func hasConfig(dir string) bool {
	st, err := os.Stat(filepath.Join(dir, ConfigDir))
	return err == nil && st.IsDir()
}
