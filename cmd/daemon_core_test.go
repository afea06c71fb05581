package cmd

import (
	"path/filepath"
	"testing"

	"github.com/xcrond/xcrond/pkg/logger"
	"github.com/xcrond/xcrond/pkg/paths"
)

func TestInitDaemonComponents(t *testing.T) {
	setTestConfigDir(t)
	t.Setenv(paths.SocketPathEnv, filepath.Join(t.TempDir(), "xcrond.sock"))

	oldBuildArgs := currentBuildArgs
	currentBuildArgs = BuildArgs{
		Version:   "1.0.0",
		Commit:    "test",
		BuildType: "test",
	}
	defer func() { currentBuildArgs = oldBuildArgs }()

	comps, err := initDaemonComponents(logger.NewNopLogger(), false)
	if err != nil {
		t.Fatalf("initDaemonComponents: %v", err)
	}
	if comps == nil || comps.Scheduler == nil || comps.Reaper == nil || comps.Server == nil || comps.Status == nil {
		t.Fatal("initDaemonComponents returned incomplete components")
	}
	if comps.Store == nil {
		t.Fatal("expected history store to be opened")
	}

	comps.Close()
}

func TestInitDaemonComponents_NoHistory(t *testing.T) {
	setTestConfigDir(t)
	t.Setenv(paths.SocketPathEnv, filepath.Join(t.TempDir(), "xcrond.sock"))

	comps, err := initDaemonComponents(logger.NewNopLogger(), true)
	if err != nil {
		t.Fatalf("initDaemonComponents: %v", err)
	}
	if comps.Store != nil {
		t.Fatal("expected no history store")
	}

	comps.Close()
}

func TestDaemonComponents_CloseNilMembers(t *testing.T) {
	// Close must tolerate a partially initialized set.
	comps := &DaemonComponents{}
	comps.Close()
}
