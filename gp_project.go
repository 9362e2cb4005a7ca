package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lbzfran/gp-project/config"
	"github.com/lbzfran/gp-project/r3d"
	"github.com/lbzfran/gp-project/utils"
	"github.com/lbzfran/gp-project/utils/gltfutils"
	"github.com/lbzfran/gp-project/viewer"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type options struct {
	configPath string
	demo       string
	frames     int
	dt         float64
	logEvery   int
	dump       bool
	tree       bool
	export     string
}

// nodeState is the per node summary printed by -dump.
type nodeState struct {
	Path        string
	Display     bool
	Position    mgl32.Vec3
	Orientation mgl32.Vec3
	Scale       mgl32.Vec3
	Velocity    mgl32.Vec3
}

func main() {
	var opts options
	var list, verbose bool
	flag.StringVar(&opts.configPath, "config", "", "Path to a .yaml/.yml/.toml scene file")
	flag.StringVar(&opts.demo, "scene", "cube", "Builtin demo scene, used when -config is empty")
	flag.IntVar(&opts.frames, "frames", 0, "Frames to simulate, overrides the scene file")
	flag.Float64Var(&opts.dt, "dt", 0, "Fixed frame time in seconds, overrides the scene file")
	flag.IntVar(&opts.logEvery, "logevery", 0, "Log a frame summary every N frames, overrides the scene file")
	flag.BoolVar(&opts.dump, "dump", false, "Dump the final state of every node")
	flag.BoolVar(&opts.tree, "tree", false, "Print the scene hierarchy before running")
	flag.StringVar(&opts.export, "export", "", "Write the final hierarchy to a .gltf or .glb file")
	flag.BoolVar(&list, "list", false, "List builtin demo scenes")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if list {
		for _, name := range viewer.Demos() {
			os.Stdout.WriteString(name + "\n")
		}
		return
	}

	if err := run(opts); err != nil {
		logrus.WithError(err).Fatal("scene viewer failed")
	}
}

func loadScene(opts *options) (*viewer.Scene, config.Run, error) {
	settings := config.Run{Frames: config.DefaultFrames, DT: config.DefaultDT, LogEvery: config.DefaultLogEvery}

	var s *viewer.Scene
	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return nil, settings, err
		}
		dir := filepath.Dir(opts.configPath)
		loader := func(path string) (*r3d.Object, error) {
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}
			logrus.WithField("model", path).Debug("importing model")
			return gltfutils.Load(path)
		}

		name := strings.TrimSuffix(filepath.Base(opts.configPath), filepath.Ext(opts.configPath))
		if s, err = viewer.FromConfig(name, cfg, loader); err != nil {
			return nil, settings, errors.Wrapf(err, "building scene %q", opts.configPath)
		}
		settings = cfg.Run
	} else {
		var err error
		if s, err = viewer.Demo(opts.demo); err != nil {
			return nil, settings, err
		}
	}

	if opts.frames > 0 {
		settings.Frames = opts.frames
	}
	if opts.dt > 0 {
		settings.DT = float32(opts.dt)
	}
	if opts.logEvery > 0 {
		settings.LogEvery = opts.logEvery
	}
	return s, settings, nil
}

func run(opts options) error {
	s, settings, err := loadScene(&opts)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"scene":     s.Name,
		"objects":   len(s.Objects),
		"animators": len(s.Animators),
		"frames":    settings.Frames,
		"dt":        settings.DT,
	}).Info("scene loaded")

	if opts.tree {
		if err := s.Root().DumpTree(os.Stdout); err != nil {
			return errors.Wrap(err, "printing tree")
		}
	}

	rec := r3d.NewRecorder()
	s.Start()
	for frame := 1; frame <= settings.Frames; frame++ {
		s.Frame(viewer.Input{}, settings.DT)

		rec.Reset()
		s.Render(rec)

		if frame%settings.LogEvery == 0 || frame == settings.Frames {
			running := 0
			for _, a := range s.Animators {
				if a.Running() {
					running++
				}
			}
			logrus.WithFields(logrus.Fields{
				"frame":    frame,
				"elapsed":  s.Elapsed(),
				"draws":    len(rec.Calls),
				"uniforms": rec.Uniforms(),
				"running":  running,
			}).Info("frame")
		}
	}

	for _, obj := range s.Objects {
		logrus.WithFields(logrus.Fields{
			"object":      obj.Name(),
			"position":    obj.Position(),
			"orientation": obj.Orientation(),
			"velocity":    obj.Velocity(),
		}).Info("final state")
	}

	if opts.dump {
		utils.Fdump(os.Stdout, collectStates(s))
	}

	if opts.export != "" {
		if err := export(opts.export, s); err != nil {
			return err
		}
		logrus.WithField("path", opts.export).Info("exported hierarchy")
	}
	return nil
}

func collectStates(s *viewer.Scene) []nodeState {
	var states []nodeState
	var path []string
	s.Root().Walk(func(obj *r3d.Object, depth int) bool {
		if depth == 0 {
			return true
		}
		path = append(path[:depth-1], obj.Name())
		states = append(states, nodeState{
			Path:        strings.Join(path, "/"),
			Display:     obj.Display(),
			Position:    obj.Position(),
			Orientation: obj.Orientation(),
			Scale:       obj.Scale(),
			Velocity:    obj.Velocity(),
		})
		return true
	})
	return states
}

func export(path string, s *viewer.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %q", path)
	}
	defer f.Close()

	binary := strings.EqualFold(filepath.Ext(path), ".glb")
	if err := gltfutils.Export(f, s.Root(), binary); err != nil {
		return errors.Wrapf(err, "exporting %q", path)
	}
	return nil
}
