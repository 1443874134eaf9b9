// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AppDataDir returns an operating-system-appropriate home directory for
// an application named appName, e.g. ~/.talusd on Linux, ~/Library/
// Application Support/Talusd on macOS, or %LOCALAPPDATA%\Talusd on
// Windows. If roaming is true on Windows, %APPDATA% is used instead.
func AppDataDir(appName string, roaming bool) string {
	if appName == "" || appName == "." {
		return "."
	}

	appName = strings.TrimPrefix(appName, ".")
	appNameUpper := strings.ToUpper(appName[:1]) + appName[1:]
	appNameLower := strings.ToLower(appName)

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if roaming {
			appData = os.Getenv("APPDATA")
		}
		if appData != "" {
			return filepath.Join(appData, appNameUpper)
		}
	case "darwin":
		if home := homeDir(); home != "" {
			return filepath.Join(home, "Library", "Application Support", appNameUpper)
		}
	case "plan9":
		if home := homeDir(); home != "" {
			return filepath.Join(home, appNameLower)
		}
	default:
		if home := homeDir(); home != "" {
			return filepath.Join(home, "."+appNameLower)
		}
	}
	return "."
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return ""
}
