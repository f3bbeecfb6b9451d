package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/teaser/internal/config"
	"github.com/iwvelando/teaser/internal/detail"
	"github.com/iwvelando/teaser/internal/lead"
	"github.com/iwvelando/teaser/internal/mailer"
	"github.com/iwvelando/teaser/internal/project"
	"github.com/iwvelando/teaser/internal/server"
	"github.com/iwvelando/teaser/pkg/constants"
)

func newServeCmd(a *app) *cobra.Command {
	var serverConfigPath, address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the project API and the investment request endpoint",
		Example: `  teaser serve
  teaser serve --server-config server-config.yaml --address 127.0.0.1:9000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srvCfg, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			if address != "" {
				srvCfg.Address = address
			}

			logger := a.logger
			if override := mergeLogging(a.conf.Logging, srvCfg.Logging); override != a.conf.Logging {
				if logger, err = initializeLogger(override, a.logLevel); err != nil {
					return eris.Wrap(err, "initialize server logger")
				}
				defer func() { _ = logger.Sync() }()
			}

			a.logger = logger
			a.warnConfiguration("main.serve")

			p, err := project.Load(a.conf.Fixture.Path)
			if err != nil {
				return err
			}

			timeout := time.Duration(a.conf.Mailer.TimeoutSeconds) * time.Second
			if timeout <= 0 {
				timeout = constants.DefaultMailerTimeoutSeconds * time.Second
			}
			client := mailer.NewClient(a.conf.Mailer.APIKey,
				mailer.WithBaseURL(a.conf.Mailer.BaseURL),
				mailer.WithTimeout(timeout),
			)
			leads := lead.NewService(client, lead.Settings{
				From:    a.conf.Mailer.From,
				To:      a.conf.Mailer.To,
				Bcc:     a.conf.Mailer.Bcc,
				Subject: a.conf.Mailer.Subject,
			}, p.MasterProject.FaceValuePerUnit, logger)

			handler := server.NewHandler(logger, server.Dependencies{
				Project: p,
				Builder: detail.NewBuilder(logger, a.conf.Site.Domain),
				Leads:   leads,
			}, srvCfg, version)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("serving project",
				zap.String("op", "main.serve"),
				zap.String("project", p.MasterProject.ProjectName),
				zap.Int64("maxBodySize", srvCfg.BodySizeBytes()),
				zap.Int("leadsPerMinute", srvCfg.LeadRateLimit.PerMinute),
			)
			return server.Serve(ctx, logger, srvCfg.Address, handler)
		},
	}

	f := cmd.Flags()
	f.StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	f.StringVar(&address, "address", "", "listen address override")
	return cmd
}

// mergeLogging overlays the non-empty server logging settings on base.
func mergeLogging(base, override config.LoggingConfig) config.LoggingConfig {
	if override.Level != "" {
		base.Level = override.Level
	}
	if override.Format != "" {
		base.Format = override.Format
	}
	if override.OutputFile != "" {
		base.OutputFile = override.OutputFile
	}
	return base
}
