package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-theft-craft/decorator/internal/assets"
	"github.com/go-theft-craft/decorator/internal/config"
	"github.com/go-theft-craft/decorator/internal/decor"
	"github.com/go-theft-craft/decorator/internal/editor"
	"github.com/go-theft-craft/decorator/internal/gdmc"
	"github.com/go-theft-craft/decorator/pkg/noise"
)

func main() {
	cfg := config.DefaultConfig()
	timeout := cfg.Timeout.Std()

	configPath := flag.String("config", "", "path to a YAML config file")
	list := flag.Bool("list", false, "list available biome decorators and exit")
	flag.StringVar(&cfg.Host, "host", cfg.Host, "GDMC HTTP interface address")
	flag.StringVar(&cfg.Dimension, "dimension", cfg.Dimension, "dimension to decorate (overworld, the_nether, the_end)")
	flag.StringVar(&cfg.Biome, "biome", cfg.Biome, "biome decorator to run")
	flag.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "root directory of the asset pack")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for palette sampling and noise")
	flag.BoolVar(&cfg.Buffering, "buffering", cfg.Buffering, "buffer block placements")
	flag.IntVar(&cfg.BufferLimit, "buffer-limit", cfg.BufferLimit, "placement buffer flush threshold")
	flag.IntVar(&cfg.CacheLimit, "cache-limit", cfg.CacheLimit, "block cache capacity")
	flag.IntVar(&cfg.Retries, "retries", cfg.Retries, "connection retries")
	flag.DurationVar(&timeout, "timeout", timeout, "per-request timeout")
	flag.Parse()
	cfg.Timeout = config.Duration(timeout)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *list {
		fmt.Println(strings.Join(decor.Registered(), "\n"))
		return
	}

	if *configPath != "" {
		explicit := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("decoration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	client := gdmc.New(cfg.Host, gdmc.Options{
		Dimension: cfg.Dimension,
		Retries:   cfg.Retries,
		Timeout:   cfg.Timeout.Std(),
		Logger:    log,
	})
	ed := editor.New(client, editor.Options{
		Buffering:   cfg.Buffering,
		BufferLimit: cfg.BufferLimit,
		CacheLimit:  cfg.CacheLimit,
		Place:       gdmc.DefaultPlaceOptions(),
		Seed:        cfg.Seed,
		Logger:      log,
	})

	if err := ed.CheckConnection(ctx); err != nil {
		if errors.Is(err, gdmc.ErrConnection) {
			return fmt.Errorf("could not connect to the GDMC HTTP interface at %s; "+
				"run Minecraft with the GDMC HTTP mod installed: %w", client.Host(), err)
		}
		return err
	}

	buildArea, err := ed.BuildArea(ctx)
	if err != nil {
		if errors.Is(err, gdmc.ErrBuildAreaNotSet) {
			return fmt.Errorf("no build area set; run /setbuildarea in-game, "+
				"for example: /setbuildarea ~0 0 ~0 ~64 200 ~64: %w", err)
		}
		return err
	}
	log.Info("using build area", "offset", buildArea.Offset, "size", buildArea.Size)

	start := time.Now()
	if err := ed.LoadWorldSlice(ctx, buildArea); err != nil {
		return err
	}
	log.Info("world slice loaded", "took", time.Since(start))

	site := &decor.Site{
		Editor: ed,
		Rect:   buildArea.ToRect(),
		Noise:  noise.New(cfg.Seed),
		Log:    log,
	}
	if cfg.AssetDir != "" {
		reg, err := assets.LoadDir(cfg.AssetDir, log)
		if err != nil {
			return err
		}
		site.Assets = reg
		log.Info("assets loaded", "templates", len(reg.TemplateNames()))
	}

	d, err := decor.Load(cfg.Biome)
	if err != nil {
		return fmt.Errorf("%w; use -list to see the available decorators", err)
	}

	log.Info("decorating", "biome", d.Name())
	if err := d.Decorate(ctx, site); err != nil {
		return err
	}
	if err := ed.FlushBuffer(ctx); err != nil {
		return err
	}
	log.Info("done", "took", time.Since(start))
	return nil
}
