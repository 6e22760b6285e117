package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pseudomuto/sqlpretty/pkg/cmd"
	"github.com/pseudomuto/sqlpretty/pkg/config"
	"github.com/spf13/afero"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fx.New(
		fx.NopLogger,
		fx.Supply(
			os.Args,
			&cmd.Version{
				Version:   version,
				Commit:    commit,
				Timestamp: date,
			},
		),
		fx.Provide(
			func() context.Context { return ctx },
			afero.NewOsFs,
		),
		config.Module,
		cmd.Module,
	).Run()
}
