// Package cli implements todoctl, the command line client for a todo-store
// service. Every store command goes through the ACL StoreClient over the
// instrumented httpclient.
package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-store/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/todo-store/internal/platform/config"
	"github.com/jsamuelsen11/todo-store/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-store/internal/platform/logging"
	"github.com/jsamuelsen11/todo-store/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// ClientFactory builds the store client for one command invocation.
type ClientFactory func(opts *RootOptions, stderr io.Writer) (ports.StoreClient, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	BaseURL string
	Token   string
	Caller  string
	Format  string
	Timeout time.Duration
	Verbose bool

	newClient ClientFactory
	// flush exports client metrics collected under --verbose. Nil otherwise.
	flush func(context.Context) error
}

// NewRootCommand creates the root command for todoctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{newClient: newStoreClient})
}

// Execute runs todoctl with the process arguments and flushes client metrics
// afterwards, whether or not the command failed.
func Execute(ctx context.Context) error {
	opts := &RootOptions{newClient: newStoreClient}
	err := newRootCommand(opts).ExecuteContext(ctx)
	if ferr := opts.flushMetrics(context.WithoutCancel(ctx)); ferr != nil && err == nil {
		err = WrapExitError(ExitFailure, "flushing client metrics", ferr)
	}
	return err
}

func (o *RootOptions) flushMetrics(ctx context.Context) error {
	if o.flush == nil {
		return nil
	}
	return o.flush(ctx)
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todoctl",
		Short: "Command line client for a todo-store service",
		Long: `todoctl manages the record list of a todo-store service.

The caller identity is sent as a bearer token (--token) or, for servers in
header auth mode, as the caller header (--caller). Settings not given as
flags come from APP_ environment variables, e.g. APP_CLIENT_BASE_URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitUsage, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			// One correlation ID ties together every request of this invocation.
			cmd.SetContext(httpclient.WithCorrelationID(cmd.Context(), uuid.NewString()))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", "", "store service URL (default from APP_CLIENT_BASE_URL)")
	cmd.PersistentFlags().StringVar(&opts.Token, "token", "", "bearer token identifying the caller")
	cmd.PersistentFlags().StringVar(&opts.Caller, "caller", "", "caller identity sent in the caller header")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (json|text)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 0, "per-request timeout (default from APP_CLIENT_TIMEOUT)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log client activity to stderr")

	cmd.AddCommand(
		newInitCommand(opts),
		newAddCommand(opts),
		newUpdateCommand(opts),
		newRemoveCommand(opts),
		newResetCommand(opts),
		newListCommand(opts),
		newHealthCommand(opts),
		newTokenCommand(opts),
	)

	return cmd
}

// client builds the store client for cmd.
func (o *RootOptions) client(cmd *cobra.Command) (ports.StoreClient, error) {
	c, err := o.newClient(o, cmd.ErrOrStderr())
	if err != nil {
		return nil, WrapExitError(ExitUsage, "configuring client", err)
	}
	return c, nil
}

// newStoreClient is the production ClientFactory: defaults and APP_ env
// vars, overridden by flags.
func newStoreClient(opts *RootOptions, stderr io.Writer) (ports.StoreClient, error) {
	cfg, err := config.LoadDefaults()
	if err != nil {
		return nil, err
	}
	if opts.BaseURL != "" {
		cfg.Client.BaseURL = opts.BaseURL
	}
	if opts.Timeout > 0 {
		cfg.Client.Timeout = opts.Timeout
	}

	level := "warn"
	if opts.Verbose {
		level = "debug"
	}
	logger := logging.New(level, "text", stderr)

	token := opts.Token
	if token == "" {
		token = cfg.Client.Token
	}

	var metrics *telemetry.Metrics
	if opts.Verbose {
		metrics, err = verboseMetrics(opts, stderr)
		if err != nil {
			return nil, err
		}
	}

	client := httpclient.New(&cfg.Client, "store-api", metrics, logger,
		httpclient.WithBearerToken(token),
		httpclient.WithHeader(cfg.Auth.Header, opts.Caller),
	)
	return acl.NewStoreClient(client, logger), nil
}

// verboseMetrics records client request metrics and writes them to stderr
// when the command finishes.
func verboseMetrics(opts *RootOptions, stderr io.Writer) (*telemetry.Metrics, error) {
	mp, err := telemetry.NewWriterMeterProvider("todoctl", stderr)
	if err != nil {
		return nil, err
	}
	metrics, err := telemetry.NewMetrics(mp, "todoctl")
	if err != nil {
		_ = mp.Shutdown(context.Background())
		return nil, err
	}
	opts.flush = mp.Shutdown
	return metrics, nil
}
