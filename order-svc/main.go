package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"food-ordering/config"
	"food-ordering/internal/logging"
	"food-ordering/internal/service"
	"food-ordering/internal/storage"
	"food-ordering/order-svc/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	host string
	port int
)

var rootCmd = &cobra.Command{
	Use:   "order-svc [port]",
	Short: "Accept orders over TCP and store them in the ledger",
	Long: `Listens for orders sent with the ORDER ... END_ORDER line protocol and
stores each one in the ledger in a single transaction.

Examples:
  order-svc                     # listen on ORDER_SERVER_HOST:ORDER_SERVER_PORT
  order-svc 7000                # listen on port 7000
  order-svc --host 0.0.0.0 -p 7000`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		addr, err := listenAddr(cfg.OrderServer, host, port, args)
		if err != nil {
			return err
		}
		return run(cfg, addr)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&host, "host", "", "Interface to listen on (default ORDER_SERVER_HOST)")
	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default ORDER_SERVER_PORT)")
}

// listenAddr resolves the listen address. A positional port wins over the
// flag, which wins over the configuration.
func listenAddr(cfg config.OrderServerConfig, hostFlag string, portFlag int, args []string) (string, error) {
	if hostFlag != "" {
		cfg.Host = hostFlag
	}
	if portFlag != 0 {
		cfg.Port = portFlag
	}
	if len(args) == 1 {
		p, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("invalid port %q", args[0])
		}
		cfg.Port = p
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return "", fmt.Errorf("port %d out of range", cfg.Port)
	}
	return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)), nil
}

func run(cfg *config.Config, addr string) error {
	baseLogger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer baseLogger.Sync()
	logger := logging.Service(baseLogger, "order-svc")

	db := config.MustInitPostgres(cfg.DB)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		return err
	}

	var publisher service.EventPublisher
	if writer := config.NewKafkaWriter(cfg.Kafka); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		logger.Info("publishing order events", zap.String("topic", cfg.Kafka.OrdersTopic))
	}

	recorder := service.NewOrderRecorder(repo, publisher, logger)
	srv := server.New(addr, recorder, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("order service stopped", zap.Error(err))
		return err
	}
	logger.Info("order service stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
