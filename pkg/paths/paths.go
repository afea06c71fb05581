// Package paths resolves the filesystem locations used by xcrond:
// the configuration directory and the well-known files inside it.
package paths

import (
	"os"
	"path/filepath"
)

// ConfigDirEnv is the environment variable name used to override the default
// configuration directory.
const ConfigDirEnv = "XCROND_CONFIG_DIR"

// SocketPathEnv is the environment variable name used to override the default
// control socket path.
const SocketPathEnv = "XCROND_SOCKET_PATH"

const (
	pidFileName   = "xcrond.pid"
	jobfileName   = "jobs.yaml"
	historyDBName = "history.db"
	socketName    = "xcrond.sock"
)

// TCPFallbackAddr is the loopback address the control endpoint uses on
// platforms without unix domain sockets.
const TCPFallbackAddr = "127.0.0.1:48611"

// ConfigDir is the absolute path to the xcrond configuration directory.
var ConfigDir string

func init() {
	dir := os.Getenv(ConfigDirEnv)
	if dir == "" {
		dir = defaultConfigDir()
	}
	if err := SetConfigDir(dir); err != nil {
		panic(err)
	}
}

func defaultConfigDir() string {
	cdr, err := os.UserConfigDir()
	if err != nil {
		panic(err)
	}
	return filepath.Join(cdr, "xcrond")
}

// SetConfigDir points ConfigDir at dir, creating it when missing.
// Mainly useful for tests that need an isolated directory.
func SetConfigDir(dir string) error {
	if dir == "" {
		return os.ErrInvalid
	}
	if !dirExists(dir) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	ConfigDir = dir
	return nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// PidFile returns the path of the daemon PID file.
func PidFile() string {
	return filepath.Join(ConfigDir, pidFileName)
}

// Jobfile returns the default path of the YAML jobfile.
func Jobfile() string {
	return filepath.Join(ConfigDir, jobfileName)
}

// HistoryDB returns the path of the run-history database.
func HistoryDB() string {
	return filepath.Join(ConfigDir, historyDBName)
}

// Socket returns the path of the daemon control socket, honoring the
// XCROND_SOCKET_PATH override.
func Socket() string {
	if path := os.Getenv(SocketPathEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), socketName)
}
