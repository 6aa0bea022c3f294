// Package iofs prepares directories and files gnkey needs in the home
// directory of a user.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/gnkey/pkg/config"
	"github.com/gnames/gnsys"
)

//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config, cache and log directories if they do not
// exist yet.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := gnsys.MakeDir(v); err != nil {
			return CreateDirError(v, err)
		}
	}
	return nil
}

// EnsureConfigFile writes the default config.yaml unless a config file
// already exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}
