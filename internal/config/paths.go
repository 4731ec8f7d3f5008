// ABOUTME: Standard filesystem paths for kilo configuration
// ABOUTME: Resolves ~/.kilo-go/ for global and .kilo-go/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".kilo-go"
	projectDirName = ".kilo-go"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.kilo-go/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.kilo-go/ in projectRoot).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}
