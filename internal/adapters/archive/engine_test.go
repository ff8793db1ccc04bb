package archive_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/carry/internal/adapters/archive"
	"go.trai.ch/carry/internal/adapters/shell"
	"go.trai.ch/carry/internal/adapters/state"
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestEngine_BackendSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheState := mocks.NewMockCacheState(ctrl)
	runner := mocks.NewMockCommandRunner(ctrl)

	onPath := func(string) (string, error) { return "/usr/bin/tar", nil }
	offPath := func(string) (string, error) { return "", exec.ErrNotFound }

	tests := []struct {
		name     string
		mode     domain.ArchiverMode
		lookPath func(string) (string, error)
		want     string
	}{
		{"auto with tar", domain.ArchiverAuto, onPath, "tar"},
		{"auto without tar", domain.ArchiverAuto, offPath, "native"},
		{"forced tar", domain.ArchiverTar, offPath, "tar"},
		{"forced native", domain.ArchiverNative, onPath, "native"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := archive.NewEngine(tt.mode, cacheState, runner)
			engine.SetLookPath(tt.lookPath)
			assert.Equal(t, tt.want, engine.Backend())
		})
	}
}

func TestEngine_CapturesOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	store, err := state.NewStore(t.TempDir())
	require.NoError(t, err)
	engine := archive.NewEngine(domain.ArchiverTar, store, runner)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&domain.CommandResult{
		Stdout: "listed\n",
		Stderr: "warned\n",
	}, nil)

	_, err = engine.Unpack(context.Background(), "/state/fetch.tgz", []string{"/c"}, nil)
	require.NoError(t, err)

	stdout, err := os.ReadFile(store.LogPath("unpack", "stdout"))
	require.NoError(t, err)
	assert.Equal(t, "listed\n", string(stdout))
	stderr, err := os.ReadFile(store.LogPath("unpack", "stderr"))
	require.NoError(t, err)
	assert.Equal(t, "warned\n", string(stderr))
}

// Archives written by either backend must be readable by the other.
func TestEngine_TarInterop(t *testing.T) {
	if _, err := exec.LookPath("tar"); err != nil {
		t.Skip("tar not on PATH")
	}

	store, err := state.NewStore(t.TempDir())
	require.NoError(t, err)
	tarEngine := archive.NewEngine(domain.ArchiverTar, store, shell.NewRunner())
	nativeEngine := archive.NewEngine(domain.ArchiverNative, store, nil)

	base := t.TempDir()
	deps := filepath.Join(base, "deps")
	writeTree(t, deps, map[string]string{"pkg/index.js": "module.exports = 1"})

	target := filepath.Join(t.TempDir(), "push.tgz")
	_, err = nativeEngine.Pack(context.Background(), target, []string{deps}, nil)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(deps))

	res, err := tarEngine.Unpack(context.Background(), target, []string{deps, filepath.Join(base, "absent")}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(base, "absent")}, res.Missing)
	assert.FileExists(t, filepath.Join(deps, "pkg", "index.js"))

	target2 := filepath.Join(t.TempDir(), "push.tgz")
	_, err = tarEngine.Pack(context.Background(), target2, []string{deps}, nil)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(deps))

	_, err = nativeEngine.Unpack(context.Background(), target2, []string{deps}, nil)
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(deps, "pkg", "index.js"))
	require.NoError(t, err)
	assert.Equal(t, "module.exports = 1", string(got))
}

func TestEngine_PackCancelled(t *testing.T) {
	engine := newNativeEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := t.TempDir()
	writeTree(t, src, map[string]string{"f": "x"})
	_, err := engine.Pack(ctx, filepath.Join(t.TempDir(), "push.tgz"), []string{src}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEngine_AutoWithoutTarExplainsBzip2(t *testing.T) {
	store, err := state.NewStore(t.TempDir())
	require.NoError(t, err)
	engine := archive.NewEngine(domain.ArchiverAuto, store, nil)
	engine.SetLookPath(func(string) (string, error) { return "", exec.ErrNotFound })

	// A URL without a recognised suffix selects bzip2.
	target := store.PushArchivePath(domain.CompressionFor("https://cache.example.com/slot/cache"))
	_, err = engine.Pack(context.Background(), target, []string{t.TempDir()}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedCompression))
	assert.ErrorContains(t, err, "requires tar on PATH")
	assert.NoFileExists(t, target)
}
