package platform

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleInstanceGuard(t *testing.T) {
	name := "pomodoro-test-" + t.Name()

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)

	_, err = AcquireSingleInstance(name)
	assert.True(t, errors.Is(err, ErrAlreadyRunning))

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
}

func TestGuardAddressStable(t *testing.T) {
	assert.Equal(t, guardAddress("Pomodoro"), guardAddress("Pomodoro"))
}

func TestConfigDirLinux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout only")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config"), dir)
}
