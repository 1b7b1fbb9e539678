// Package configpaths resolves where pckbd reads and writes its config
// files.
package configpaths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Base names probed for config files, and used by `config init` output.
var configBases = []string{"pckbd", "config", "replay"}

// DefaultConfigDir returns the per-user configuration directory for pckbd
// (e.g. ~/.config/pckbd on unix, %AppData%\pckbd on Windows).
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "pckbd"), nil
}

// DefaultNamedConfigPath returns the default config file path for the
// given base name and format, e.g. replay.toml under the user config dir.
func DefaultNamedConfigPath(baseName, format string) (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName+"."+FormatExt(format)), nil
}

// FormatExt maps a config format name to its file extension.
func FormatExt(format string) string {
	switch format {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

// EnsureDir creates the directory a file path will be written into.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// ConfigCandidatePaths builds the candidate config files per format,
// nearest first: an explicit user path, then the working directory, the
// user config dir, and /etc/pckbd on unix. The user path is routed to the
// loader matching its extension, defaulting to JSON.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userPath)
		case ".toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			jsonPaths = append(jsonPaths, userPath)
		}
	}

	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	if runtime.GOOS != "windows" {
		dirs = append(dirs, "/etc/pckbd")
	}

	for _, dir := range dirs {
		for _, base := range configBases {
			jsonPaths = append(jsonPaths, filepath.Join(dir, base+".json"))
			yamlPaths = append(yamlPaths,
				filepath.Join(dir, base+".yaml"),
				filepath.Join(dir, base+".yml"))
			tomlPaths = append(tomlPaths, filepath.Join(dir, base+".toml"))
		}
	}
	return
}
