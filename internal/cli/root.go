package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Domenick1991/airbooking-console/config"
	"github.com/Domenick1991/airbooking-console/internal/console"
	"github.com/Domenick1991/airbooking-console/internal/kafka"
	"github.com/Domenick1991/airbooking-console/internal/repository"
	"github.com/Domenick1991/airbooking-console/internal/service/booking"
	"github.com/Domenick1991/airbooking-console/internal/service/flights"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	host       string
}

// NewRootCmd builds the `airbooking` command.
func NewRootCmd() *cobra.Command {
	// .env may set CONFIG_PATH as well as the password.
	_ = godotenv.Load()

	opts := options{configPath: os.Getenv("CONFIG_PATH")}
	if opts.configPath == "" {
		opts.configPath = "config.yaml"
	}

	root := &cobra.Command{
		Use:   "airbooking <dbname> <port> <user>",
		Short: "Interactive console for the airline booking database",
		Long: `airbooking connects to the booking schema in PostgreSQL and offers a menu to add
passengers, book and review flights, maintain routes and run the standard reports.

The database password is read from AIRBOOKING_DB_PASSWORD or PGPASSWORD (a .env file
in the working directory is honoured).`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := run(cmd.Context(), opts, args, cmd.InOrStdin(), cmd.OutOrStdout())
			// Connection failures are already reported on the console.
			var connErr *repository.ConnectionError
			if errors.As(err, &connErr) {
				cmd.SilenceErrors = true
			}
			return err
		},
	}
	root.Flags().StringVar(&opts.configPath, "config", opts.configPath, "path to the YAML config file")
	root.Flags().StringVar(&opts.host, "host", "", "database host (overrides config)")
	return root
}

func run(ctx context.Context, opts options, args []string, in io.Reader, out io.Writer) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := applyArgs(&cfg.Database, opts, args); err != nil {
		return err
	}

	fmt.Fprint(out, "Connecting to database...")
	fmt.Fprintf(out, "Connection URL: %s\n\n", cfg.Database.Redacted())
	session, err := repository.Connect(ctx, cfg.Database)
	if err != nil {
		cause := err
		var connErr *repository.ConnectionError
		if errors.As(err, &connErr) {
			cause = connErr.Err
		}
		fmt.Fprintf(out, "Error - Unable to Connect to Database: %v\n", cause)
		fmt.Fprintln(out, "Make sure you started postgres on this machine")
		return err
	}
	fmt.Fprintln(out, "Done")
	defer func() {
		fmt.Fprint(out, "Disconnecting from database...")
		session.Close()
		fmt.Fprintln(out, "Done\n\nBye !")
	}()

	var bookingOpts []booking.BookingServiceOption
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		bookingOpts = append(bookingOpts, booking.WithEvents(producer, cfg.Kafka.EventsTopic))
	}

	bookingService := booking.NewBookingService(
		repository.NewPassengerRepository(session),
		repository.NewFlightRepository(session),
		repository.NewBookingRepository(session),
		repository.NewRatingRepository(session),
		bookingOpts...,
	)
	flightService := flights.NewFlightService(
		repository.NewFlightRepository(session),
		repository.NewReportRepository(session),
	)

	return console.New(in, out, bookingService, flightService).Run(ctx)
}

// applyArgs overrides the configured database name, port and user with the positional
// arguments, in that order.
func applyArgs(db *config.DatabaseConfig, opts options, args []string) error {
	port, err := strconv.Atoi(args[1])
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port %q", args[1])
	}
	db.Name = args[0]
	db.Port = port
	db.User = args[2]
	if opts.host != "" {
		db.Host = opts.host
	}
	return nil
}
