// numsc generates packages of fixed-arity vector and matrix types from a
// catalog.
//
//	numsc generate --catalog catalog.yaml --target ./nums
//	numsc catalog > catalog.yaml
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/urfave/cli/v3"

	"github.com/syssam/nums/compiler"
	"github.com/syssam/nums/compiler/gen"
	"github.com/syssam/nums/compiler/load"
	"github.com/syssam/nums/compiler/watch"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "numsc: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "numsc",
		Usage: "generate fixed-arity vector and matrix types",
		Commands: []*cli.Command{
			generateCommand(),
			catalogCommand(),
		},
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "generate the package of a catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "catalog file (.yaml, .yml or .json); empty for the default catalog",
			},
			&cli.StringFlag{
				Name:    "target",
				Aliases: []string{"o"},
				Value:   "./" + load.DefaultPackage,
				Usage:   "output directory",
			},
			&cli.StringFlag{
				Name:  "package",
				Usage: "package name; defaults to the catalog's",
			},
			&cli.StringFlag{
				Name:  "header",
				Usage: "header comment of generated files",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "files rendered concurrently; 0 for GOMAXPROCS",
			},
			&cli.BoolFlag{
				Name:  "regions",
				Usage: "wrap member groups in region marker comments",
			},
			&cli.StringSliceFlag{
				Name:  "feature",
				Usage: "enable a feature by name",
			},
			&cli.StringSliceFlag{
				Name:  "disable",
				Usage: "disable a feature by name",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "regenerate whenever the catalog file changes",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output",
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	level := slog.LevelInfo
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []gen.Option{
		gen.WithTarget(cmd.String("target")),
		gen.WithWorkers(int(cmd.Int("workers"))),
		gen.WithLogger(logger),
		gen.WithFeatureNames(cmd.StringSlice("feature")...),
		gen.WithoutFeatures(cmd.StringSlice("disable")...),
	}
	if pkg := cmd.String("package"); pkg != "" {
		opts = append(opts, gen.WithPackage(pkg))
	}
	if header := cmd.String("header"); header != "" {
		opts = append(opts, gen.WithHeader(header))
	}
	if cmd.Bool("regions") {
		opts = append(opts, gen.WithFeatures(gen.FeatureRegions))
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}

	path := cmd.String("catalog")
	generate := func(ctx context.Context) error {
		return compiler.Generate(ctx, path, cfg)
	}
	if !cmd.Bool("watch") {
		return generate(ctx)
	}
	if path == "" {
		return fmt.Errorf("--watch requires --catalog")
	}
	return watch.Run(ctx, path, generate, watch.WithLogger(logger))
}

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "print the default catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Value: string(load.YAML),
				Usage: "output format: yaml or json",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			buf, err := load.Default().Marshal(load.Format(cmd.String("format")))
			if err != nil {
				return err
			}
			_, err = cmd.Root().Writer.Write(buf)
			return err
		},
	}
}
