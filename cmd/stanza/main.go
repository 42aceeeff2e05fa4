package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"stanza/internal/build"
	"stanza/internal/domain/config"
	"stanza/internal/serve"
	"syscall"
)

const indexPath = ".stanza/index.db"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "build":
		runBuild(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: stanza <build|serve> [flags]")
}

func loadConfig(path string) config.Config {
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	return cfg
}

func runBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	cfgPath := fs.String("config", "./site.yaml", "site configuration file")
	unpublished := fs.Bool("unpublished", false, "include unpublished posts")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	if *unpublished {
		cfg.Build.IncludeUnpublished = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := &build.Builder{Cfg: cfg, IndexPath: indexPath}
	if _, err := b.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "build error:", err.Error())
		os.Exit(1)
	}
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "./site.yaml", "site configuration file")
	addr := fs.String("addr", ":8080", "listen address")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	// previews show everything, drafts included
	cfg.Build.IncludeUnpublished = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := serve.New(cfg, indexPath)
	defer s.Close()

	if err := s.ListenAndServe(ctx, *addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintln(os.Stderr, "serve error:", err.Error())
		os.Exit(1)
	}
}
