// Package where resolves application-specific filesystem paths across platforms.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/vidl-cli/vidl/constant"
	"github.com/vidl-cli/vidl/filesystem"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "VIDL_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.EnsureDir(path))
	return path
}

// Config resolves the configuration directory, honouring VIDL_CONFIG_PATH and falling back
// to the platform user config directory (XDG_CONFIG_HOME on Linux).
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// ConfigFile is the path of the toml file viper reads and writes.
func ConfigFile() string {
	return filepath.Join(Config(), constant.App+".toml")
}

// Logs resolves the directory for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}
