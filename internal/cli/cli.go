// Package cli exposes the restful command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Adda-Baaj/restful/internal/app"
	"github.com/Adda-Baaj/restful/internal/config"
	"github.com/Adda-Baaj/restful/internal/domain"
	"github.com/Adda-Baaj/restful/internal/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

type flags struct {
	data     string
	output   string
	baseURL  string
	timeout  time.Duration
	noColor  bool
	logLevel string
}

// NewRootCmd builds the root command writing program output to stdout.
func NewRootCmd(stdout io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "restful <get|post> <endpoint>",
		Short: "Simple REST client for the JSONPlaceholder API",
		Long: `restful sends one GET or POST request to a fixed API base URL and
prints the JSON response, or saves it as .json or .csv.

The base URL defaults to ` + config.DefaultBaseURL + ` and can be
changed with RESTFUL_BASE_URL or --base-url.`,
		Example: `  restful get /posts/1
  restful get /users -o users.csv
  restful post /posts -d '{"title": "foo", "body": "bar", "userId": 1}' -o created.json`,
		Version:       version,
		Args:          positionalArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f, stdout)
		},
	}

	cmd.Flags().StringVarP(&f.data, "data", "d", "", "data to send with a POST request (JSON format)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (.json or .csv)")
	cmd.Flags().StringVar(&f.baseURL, "base-url", "", "override the configured API base URL")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "request timeout (0 waits indefinitely)")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level written to stderr (debug, info, warn, error)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return domain.Wrap(domain.KindUsage, "parse flags", err)
	})
	cmd.SetOut(stdout)

	return cmd
}

func positionalArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return domain.Errorf(domain.KindUsage, "parse arguments",
			"expected 2 arguments (method and endpoint), got %d", len(args))
	}
	return nil
}

func run(cmd *cobra.Command, args []string, f flags, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return domain.Wrap(domain.KindConfig, "load config", err)
	}
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = f.baseURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if f.noColor {
		cfg.NoColor = true
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	client, err := app.NewClient(cfg, log, app.WithOutput(stdout))
	if err != nil {
		return err
	}

	return client.Run(cmd.Context(), app.Invocation{
		Method:   args[0],
		Endpoint: args[1],
		Data:     f.data,
		HasData:  cmd.Flags().Changed("data"),
		Output:   f.output,
	})
}

// Execute runs the CLI with args and returns the process exit code. Errors
// are reported on stderr, except HTTP errors whose body was already printed.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(stdout)
	cmd.SetArgs(args)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	prefix := errorPrefix(cmd)
	switch domain.KindOf(err) {
	case domain.KindHTTP:
	case domain.KindUsage:
		fmt.Fprintf(stderr, "%s %v\n\n", prefix, err)
		fmt.Fprint(stderr, cmd.UsageString())
	default:
		fmt.Fprintf(stderr, "%s %v\n", prefix, err)
	}
	return ExitCode(err)
}

func errorPrefix(cmd *cobra.Command) string {
	c := color.New(color.FgRed)
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		c.DisableColor()
	}
	return c.Sprint("Error:")
}
