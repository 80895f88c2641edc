package launcher

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/issuance-audit/chainrpc"
	"github.com/rony4d/issuance-audit/flags"
	"github.com/rony4d/issuance-audit/issuance"
)

func newApp() *cli.App {
	app := flags.NewApp()
	app.Flags = append(app.Flags, flags.AllFlags()...)
	app.Action = audit
	return app
}

// Launch parses args and audits the configured node from genesis to its
// current tip. A broken invariant is returned as an error.
func Launch(args []string) error {
	return newApp().Run(args)
}

func audit(ctx *cli.Context) error {
	cfg, err := MakeConfig(ctx)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	log := logger.WithField("node", cfg.URL)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := chainrpc.Dial(runCtx, cfg.URL)
	if err != nil {
		return err
	}
	defer client.Close()

	v := issuance.NewVerifier(client, log)
	if _, err := v.Run(runCtx); err != nil {
		log.WithError(err).WithField("block", v.NextHeight()).Error("Issuance audit failed")
		return err
	}
	return nil
}
