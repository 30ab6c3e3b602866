package main

import (
	"context"
	"fmt"
	"os"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"

	"github.com/openebs/mayastor-go/nodeclient"
	grpcclient "github.com/openebs/mayastor-go/nodeclient/grpc"
)

func setupLogger() kitlog.Logger {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))

	if !opts.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	return logger
}

func main() {
	p := flags.NewParser(&opts, flags.Default)

	if _, err := p.Parse(); err != nil {
		if err.(*flags.Error).Type != flags.ErrHelp {
			fmt.Println("cli error:", err)
		}

		os.Exit(2)
	}

	logger := setupLogger()

	ctx, cancel := context.WithTimeout(
		context.Background(), time.Duration(opts.Timeout)*time.Second)
	defer cancel()

	handle, err := nodeclient.Connect(
		ctx, opts.Addr, grpcclient.NewDialer(), nodeclient.WithLogger(logger))
	if err != nil {
		level.Error(logger).Log("msg", "failed to connect", "addr", opts.Addr, "err", err)
		os.Exit(1)
	}

	defer func() {
		if err := handle.Close(); err != nil {
			level.Error(logger).Log("msg", "failed to close connection", "err", err)
		}
	}()

	if err := runCommand(ctx, handle, opts.Args.Command); err != nil {
		level.Error(logger).Log("msg", "command failed", "err", err)
		os.Exit(1)
	}
}
