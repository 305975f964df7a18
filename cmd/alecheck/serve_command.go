package main

import (
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"alecheck/internal/logging"
	"alecheck/internal/preflight"
	"alecheck/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bindFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			sess, err := ctx.openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			logger := sess.logger
			for _, r := range preflight.Failed(preflight.RunAll(sess.cfg, preflight.Target{CSV: true, XML: true})) {
				logging.WarnWithContext(logger, "preflight check failed", "preflight_failed",
					logging.String("check", r.Name),
					logging.String("detail", r.Detail),
					logging.String(logging.FieldErrorHint, "fix the directory before requesting exports"),
					logging.String(logging.FieldImpact, "export requests will fail"),
				)
			}

			var history server.HistoryReader
			if sess.store != nil {
				history = sess.store
			}
			bind := sess.cfg.Server.Bind
			if strings.TrimSpace(bindFlag) != "" {
				bind = strings.TrimSpace(bindFlag)
			}
			return server.New(sess.cfg, sess.svc, history, logger).Serve(signalCtx, bind)
		},
	}

	cmd.Flags().StringVar(&bindFlag, "bind", "", "Listen address (overrides server.bind)")
	return cmd
}
