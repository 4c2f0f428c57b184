package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/hemanth0525/contribuzz/pkg/cli/config"
	controller "github.com/hemanth0525/contribuzz/pkg/controller/http"
	"github.com/hemanth0525/contribuzz/pkg/domain/interfaces"
	"github.com/hemanth0525/contribuzz/pkg/infra/firestore"
	"github.com/hemanth0525/contribuzz/pkg/infra/slack"
	"github.com/hemanth0525/contribuzz/pkg/infra/smtp"
	"github.com/hemanth0525/contribuzz/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		githubCfg    config.GitHub
		artifactCfg  config.Artifact
		firestoreCfg config.Firestore
		smtpCfg      config.SMTP
		slackCfg     config.Slack
		sentryCfg    config.Sentry
	)

	flags := append(serverCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, artifactCfg.Flags()...)
	flags = append(flags, firestoreCfg.Flags()...)
	flags = append(flags, smtpCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting contribuzz server",
				slog.String("addr", serverCfg.Addr),
				slog.String("artifact_store", artifactCfg.Store),
			)

			if err := sentryCfg.Configure(); err != nil {
				return err
			}
			defer sentry.Flush(2 * time.Second)

			wallUC, contributorUC, err := buildWallStack(ctx, &githubCfg, &artifactCfg)
			if err != nil {
				return err
			}

			var subscriberStore interfaces.SubscriberStore
			if firestoreCfg.ProjectID != "" {
				store, err := firestore.New(ctx, firestoreCfg.ProjectID, firestoreCfg.CredentialsFile)
				if err != nil {
					return err
				}
				defer store.Close()
				subscriberStore = store
			}
			subscriberUC := usecase.NewSubscriber(subscriberStore)

			var mailer interfaces.MailSender
			if smtpCfg.Host != "" {
				mailer, err = smtp.New(smtp.Config{
					Host:   smtpCfg.Host,
					Port:   smtpCfg.Port,
					Secure: smtpCfg.Secure,
					User:   smtpCfg.User,
					Pass:   smtpCfg.Pass,
					To:     smtpCfg.To,
				})
				if err != nil {
					return err
				}
			}
			var notifier interfaces.Notifier
			if slackCfg.WebhookURL != "" {
				notifier = slack.New(slackCfg.WebhookURL)
			}
			feedbackUC := usecase.NewFeedback(mailer, notifier)

			server, err := controller.NewServer(
				ctx,
				contributorUC,
				wallUC,
				subscriberUC,
				feedbackUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithBaseURL(serverCfg.BaseURL),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
