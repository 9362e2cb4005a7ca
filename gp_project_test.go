package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lbzfran/gp-project/config"
	"github.com/lbzfran/gp-project/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSceneDemo(t *testing.T) {
	s, settings, err := loadScene(&options{demo: "life-of-pi", frames: 10})
	require.NoError(t, err)
	assert.Equal(t, "life-of-pi", s.Name)
	assert.Equal(t, 10, settings.Frames)
	assert.Equal(t, float32(config.DefaultDT), settings.DT)

	_, _, err = loadScene(&options{demo: "nope"})
	assert.Error(t, err)
}

func TestLoadSceneConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.toml")
	doc := "[run]\nframes = 5\n\n[[objects]]\nname = \"box\"\nmesh = \"cube\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, settings, err := loadScene(&options{configPath: path, dt: 0.5})
	require.NoError(t, err)
	assert.Equal(t, "room", s.Name)
	assert.Equal(t, 5, settings.Frames)
	assert.Equal(t, float32(0.5), settings.DT)
	assert.NotNil(t, s.Find("box"))
}

func TestCollectStates(t *testing.T) {
	s, err := viewer.Demo("life-of-pi")
	require.NoError(t, err)

	states := collectStates(s)
	var paths []string
	for _, st := range states {
		paths = append(paths, st.Path)
	}
	assert.Equal(t, []string{"boat", "boat/tiger", "floor"}, paths)
}

func TestRunExports(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cube.glb")
	require.NoError(t, run(options{demo: "cube", frames: 3, export: out}))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
