// Package config locates per-user insectboard files.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the directory name used under the platform config root.
const AppName = "insectboard"

// Dir returns the per-user configuration directory:
// $XDG_CONFIG_HOME/insectboard (default ~/.config) on Unix and
// %APPDATA%\insectboard on Windows.
func Dir() string {
	return filepath.Join(root(), AppName)
}

// InitFile is the Lua prelude run before every board script.
// A missing file is not an error; the loader skips it.
func InitFile() string {
	return filepath.Join(Dir(), "init.lua")
}

func root() string {
	if runtime.GOOS == "windows" {
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir
		}
		return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
	}

	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}
