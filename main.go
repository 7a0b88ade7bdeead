package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"httpcore/internal/bootstrap"
	"httpcore/internal/config"
	"httpcore/internal/logging"
	"httpcore/internal/version"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	dump := flag.Bool("dump", false, "treat inputs as raw HTTP/1.x message heads")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: httplint [-dump] [file ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetVersion())
		return 0
	}

	conf, err := config.MustLoad()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return 2
	}

	logger, err := logging.New(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	app, err := bootstrap.New(conf, logger, os.Stdout)
	if err != nil {
		logger.Error("failed to initialize", zap.Error(err))
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := app.Run(ctx, flag.Args(), *dump)
	if err != nil {
		logger.Error("httplint failed", zap.Error(err))
		return 2
	}
	if report.HasErrors() {
		return 1
	}
	return 0
}
