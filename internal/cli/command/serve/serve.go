package serve

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tomas-vilte/MateRelay/internal/cli/completion_helper"
	"github.com/Tomas-vilte/MateRelay/internal/config"
	"github.com/Tomas-vilte/MateRelay/internal/i18n"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateRelay/internal/logger"
	"github.com/Tomas-vilte/MateRelay/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 10 * time.Second

// ContainerBuilder arma el contenedor de dependencias para una configuración ya resuelta.
type ContainerBuilder func(cfg *config.Config) (*di.Container, error)

type ServeCommandFactory struct {
	newContainer    ContainerBuilder
	shutdownTimeout time.Duration
}

func NewServeCommandFactory(newContainer ContainerBuilder) *ServeCommandFactory {
	return &ServeCommandFactory{
		newContainer:    newContainer,
		shutdownTimeout: defaultShutdownTimeout,
	}
}

func (f *ServeCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "serve",
		Aliases:       []string{"s"},
		Usage:         t.GetMessage("serve_command_usage", 0, nil),
		Flags:         f.createFlags(t),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return f.run(ctx, cmd, t, cfg)
		},
	}
}

func (f *ServeCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "env-file",
			Aliases: []string{"e"},
			Usage:   t.GetMessage("serve_flag_env_file", 0, nil),
		},
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   t.GetMessage("serve_flag_port", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: t.GetMessage("serve_flag_debug", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   t.GetMessage("serve_flag_verbose", 0, nil),
		},
		&cli.StringFlag{
			Name:  "log-format",
			Value: string(logger.FormatPretty),
			Usage: t.GetMessage("serve_flag_log_format", 0, nil),
		},
	}
}

func (f *ServeCommandFactory) run(ctx context.Context, cmd *cli.Command, t *i18n.Translations, cfg *config.Config) error {
	cfg, err := resolveConfig(cfg, cmd.String("env-file"), cmd.String("port"))
	if err != nil {
		return err
	}

	log := logger.Initialize(logger.Options{
		Debug:   cmd.Bool("debug"),
		Verbose: cmd.Bool("verbose"),
		Level:   cfg.LogLevel,
		Format:  logger.Format(cmd.String("log-format")),
		Output:  cmd.Root().ErrWriter,
	})
	ctx = logger.WithLogger(ctx, log)

	warnMissingCredentials(ctx, t, cfg)

	container, err := f.newContainer(cfg)
	if err != nil {
		return err
	}
	relay, err := container.GetRelayService(ctx)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(cfg.ListenAddr(), server.NewRouter(relay, log), log)

	ln, err := net.Listen("tcp", srv.Addr())
	if err != nil {
		return err
	}
	log.Info(t.GetMessage("serve_listening", 0, map[string]interface{}{"Addr": ln.Addr().String()}),
		"provider", cfg.AIConfig.ActiveAI,
		"model", cfg.ActiveProvider().Model)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = runServer(ctx, srv, ln, f.shutdownTimeout)
	log.Info(t.GetMessage("serve_shutting_down", 0, nil))
	return err
}

// resolveConfig aplica --env-file y --port sobre la configuración cargada al arrancar.
func resolveConfig(cfg *config.Config, envFile, port string) (*config.Config, error) {
	var err error
	if envFile != "" {
		if cfg, err = config.LoadConfig(envFile); err != nil {
			return nil, err
		}
	}
	if port != "" {
		if cfg, err = cfg.WithPort(port); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// warnMissingCredentials avisa al arrancar; el servidor igual levanta y cada pedido falla con 500.
func warnMissingCredentials(ctx context.Context, t *i18n.Translations, cfg *config.Config) {
	if !cfg.JiraConfig.IsConfigured() {
		logger.Warn(ctx, t.GetMessage("serve_jira_not_configured", 0, nil))
	}
	if cfg.ActiveProvider().APIKey == "" {
		logger.Warn(ctx, t.GetMessage("serve_ai_not_configured", 0, map[string]interface{}{
			"Provider": cfg.AIConfig.ActiveAI,
		}))
	}
}

// runServer atiende ln hasta que ctx se cancela y luego apaga el servidor
// esperando hasta shutdownTimeout a que terminen los pedidos en curso.
func runServer(ctx context.Context, srv *server.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Serve(ln)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
