package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spaghettifunk/anima-bridge/engine/core"
	"github.com/spaghettifunk/anima-bridge/engine/editor"
	"github.com/spaghettifunk/anima-bridge/engine/exporter"
	"github.com/spaghettifunk/anima-bridge/engine/math"
	"github.com/spaghettifunk/anima-bridge/engine/populator"
	"github.com/spaghettifunk/anima-bridge/engine/store"
	"github.com/spaghettifunk/anima-bridge/engine/viewer"
	"github.com/spaghettifunk/anima-bridge/testbed"
	"github.com/urfave/cli/v3"
)

type app struct {
	cfg    core.Config
	out    io.Writer
	logOut io.Writer
}

// newApp builds the command line. Command output goes to out, log lines to
// logOut.
func newApp(out, logOut io.Writer) *cli.Command {
	a := &app{out: out, logOut: logOut}
	return &cli.Command{
		Name:   "bridge",
		Usage:  "move object transforms from Maya into a UE4 level",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: core.DefaultConfigFile, Usage: "TOML configuration file"},
			&cli.StringFlag{Name: "data", Usage: "shared transform data file"},
			&cli.StringFlag{Name: "viewer", Usage: "command used to open the data file"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
		Before: a.before,
		Commands: []*cli.Command{
			{
				Name:  "export",
				Usage: "record the transforms of the selected scene objects",
				Flags: []cli.Flag{
					sceneFlag(),
					selectFlag(),
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "asset name as spelled in the UE4 content browser"},
					&cli.BoolFlag{Name: "from-ue4", Usage: "the assets were exported out of UE4 into Maya"},
				},
				Action: a.export,
			},
			{
				Name:   "load-name",
				Usage:  "print the name of the single selected scene object",
				Flags:  []cli.Flag{sceneFlag(), selectFlag()},
				Action: a.loadName,
			},
			{
				Name:   "clear",
				Usage:  "remove every record from the data file",
				Action: a.clear,
			},
			{
				Name:   "open",
				Usage:  "open the data file in the configured viewer",
				Action: a.open,
			},
			{
				Name:   "list",
				Usage:  "list the records of the data file",
				Action: a.list,
			},
			{
				Name:  "populate",
				Usage: "spawn an actor for every record naming a selected asset",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "asset", Aliases: []string{"a"}, Usage: "selected content browser asset", Required: true},
					&cli.StringFlag{Name: "level", Aliases: []string{"l"}, Usage: "level file", Required: true},
					&cli.BoolFlag{Name: "watch", Aliases: []string{"w"}, Usage: "populate again every time the data file changes"},
				},
				Action: a.populate,
			},
			{
				Name:  "convert",
				Usage: "convert a Maya rotation in degrees to a UE4 rotator",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "rx"},
					&cli.FloatFlag{Name: "ry"},
					&cli.FloatFlag{Name: "rz"},
				},
				Action: a.convert,
			},
		},
	}
}

func sceneFlag() cli.Flag {
	return &cli.StringFlag{Name: "scene", Aliases: []string{"s"}, Usage: "scene file", Required: true}
}

func selectFlag() cli.Flag {
	return &cli.StringSliceFlag{Name: "select", Usage: "override the selection stored in the scene file"}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := core.LoadConfig(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	err = cfg.Resolve(core.Overrides{
		DataFile: cmd.String("data"),
		Viewer:   cmd.String("viewer"),
		LogLevel: cmd.String("log-level"),
	})
	if err != nil {
		return ctx, err
	}
	core.SetLogOutput(a.logOut)
	if err := core.SetLogLevel(cfg.Log.Level); err != nil {
		return ctx, fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
	}
	a.cfg = cfg
	return ctx, nil
}

func (a *app) store() store.RecordStore {
	return store.NewRecordStore(a.cfg.Data.File)
}

func (a *app) exporter(scene editor.Scene) *exporter.Exporter {
	return exporter.New(a.store(), scene, viewer.New(a.cfg.Viewer.Command))
}

func loadScene(cmd *cli.Command) (*testbed.Scene, error) {
	s, err := testbed.LoadScene(cmd.String("scene"))
	if err != nil {
		return nil, err
	}
	if sel := cmd.StringSlice("select"); len(sel) > 0 {
		s.Select(sel...)
	}
	return s, nil
}

func (a *app) export(ctx context.Context, cmd *cli.Command) error {
	scene, err := loadScene(cmd)
	if err != nil {
		return err
	}
	e := a.exporter(scene)
	e.Form = exporter.Form{
		SourceName:   cmd.String("name"),
		AssetFromUE4: cmd.Bool("from-ue4"),
	}
	_, err = e.AddMeshData()
	return err
}

func (a *app) loadName(ctx context.Context, cmd *cli.Command) error {
	scene, err := loadScene(cmd)
	if err != nil {
		return err
	}
	name, err := a.exporter(scene).LoadMeshName()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, name)
	return nil
}

func (a *app) clear(ctx context.Context, cmd *cli.Command) error {
	return a.exporter(nil).ClearMeshData()
}

func (a *app) open(ctx context.Context, cmd *cli.Command) error {
	a.exporter(nil).OpenDataFile()
	return nil
}

func (a *app) list(ctx context.Context, cmd *cli.Command) error {
	sn, err := a.store().Load()
	if err != nil {
		return err
	}
	for _, r := range sn.Records {
		fmt.Fprintf(a.out, "%s\t%s\tassetFromUE4=%t\n", r.Key, r.MeshSourceName, r.AssetFromUE4)
	}
	for _, inv := range sn.Invalid {
		fmt.Fprintf(a.out, "%s\tinvalid: %s\n", inv.Key, inv.Err)
	}
	return nil
}

func (a *app) populate(ctx context.Context, cmd *cli.Command) error {
	level, err := testbed.LoadLevel(cmd.String("level"))
	if err != nil {
		return err
	}
	p := populator.New(a.store(), testbed.NewContentBrowser(cmd.StringSlice("asset")...), level)

	if cmd.Bool("watch") {
		return p.Watch(ctx, func(report populator.Report, err error) {
			if err != nil {
				return
			}
			if err := level.Save(); err != nil {
				core.LogError(err.Error())
			}
		})
	}

	report, err := p.Populate()
	if err != nil {
		return err
	}
	if err := level.Save(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "spawned %d actor(s), skipped %d invalid record(s)\n", report.Spawned, report.Skipped)
	return nil
}

func (a *app) convert(ctx context.Context, cmd *cli.Command) error {
	r := math.RotatorFromMaya(float32(cmd.Float("rx")), float32(cmd.Float("ry")), float32(cmd.Float("rz")))
	fmt.Fprintf(a.out, "Pitch=%.4f Yaw=%.4f Roll=%.4f\n", r.Pitch, r.Yaw, r.Roll)
	return nil
}
