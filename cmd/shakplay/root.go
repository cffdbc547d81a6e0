package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	pkgzerolog "github.com/duynhne/pkg/logger/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/duynhne/shakplay/config"
	"github.com/duynhne/shakplay/internal/app"
)

// opener builds the client for one command run.
type opener func(ctx context.Context, cfg *config.Config) (*app.App, error)

func openApp(ctx context.Context, cfg *config.Config) (*app.App, error) {
	return app.Open(ctx, cfg)
}

// cli carries state shared by every subcommand of one invocation.
type cli struct {
	open    opener
	cfg     *config.Config
	app     *app.App
	verbose bool
	timeout time.Duration
	store   string
}

// newRootCmd builds the command tree. open is swapped in tests. The returned
// function releases the client after Execute.
func newRootCmd(open opener) (*cobra.Command, func()) {
	c := &cli{open: open}

	rootCmd := &cobra.Command{
		Use:   "shakplay",
		Short: "ShakPlay client from the command line",
		Long: `Sign in to a ShakPlay workspace and work with matches and clubs.

Without XANO_WORKSPACE_URL the client runs against built-in demo data.
Sign in with demo@shakplay.com / demo123 to try it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "Operation timeout")
	rootCmd.PersistentFlags().StringVar(&c.store, "token-store", "", "Token store: file, memory, redis or postgres (default from TOKEN_STORE)")

	rootCmd.AddCommand(c.loginCmd())
	rootCmd.AddCommand(c.registerCmd())
	rootCmd.AddCommand(c.logoutCmd())
	rootCmd.AddCommand(c.whoamiCmd())
	rootCmd.AddCommand(c.statusCmd())
	rootCmd.AddCommand(c.matchesCmd())
	rootCmd.AddCommand(c.clubsCmd())

	return rootCmd, func() {
		if c.app != nil {
			c.app.Close()
		}
	}
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg := config.Load()
	if c.store != "" {
		cfg.Session.Store = c.store
	}
	if c.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	pkgzerolog.Setup(cfg.Logging.Level)
	c.cfg = cfg

	ctx := log.Logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	a, err := c.open(ctx, cfg)
	if err != nil {
		return err
	}
	c.app = a
	return nil
}

// restore brings back the stored session. An invalid token is not an error
// for commands that work signed out.
func (c *cli) restore(ctx context.Context) {
	if err := c.app.Session.Init(ctx); err != nil {
		logger := pkgzerolog.FromContext(ctx)
		logger.Debug().Err(err).Msg("Stored session not restored")
	}
}

func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), c.timeout)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
