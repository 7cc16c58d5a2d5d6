// Command fwl is the FWL hub operator CLI.
//
// Usage:
//
//	fwl leagues
//	fwl leagues --category divisional
//	fwl identity
//	fwl dashboard 1180365427496943616
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fwl-league/fwl-hub/internal/config"
	"github.com/fwl-league/fwl-hub/internal/dashboard"
	"github.com/fwl-league/fwl-hub/internal/identity"
	"github.com/fwl-league/fwl-hub/internal/registry"
	"github.com/fwl-league/fwl-hub/internal/sleeper"
)

// Logs go to stderr so command output stays machine-readable.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "fwl",
		Short: "FWL hub operator CLI",
	}

	root.AddCommand(leaguesCmd())
	root.AddCommand(identityCmd())
	root.AddCommand(dashboardCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// leagues command
// --------------------------------------------------------------------------

func leaguesCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "leagues",
		Short: "List the registered leagues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			leagues := registry.Leagues()
			if category != "" {
				c, err := registry.ParseCategory(category)
				if err != nil {
					return err
				}
				leagues = registry.ByCategory(c)
			}
			return printLeagues(cmd.OutOrStdout(), leagues)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Filter by category (championship, divisional)")
	return cmd
}

func printLeagues(out io.Writer, leagues []registry.Descriptor) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tNAME")
	for _, l := range leagues {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", l.ID, l.Category, l.Name)
	}
	return tw.Flush()
}

// --------------------------------------------------------------------------
// identity command
// --------------------------------------------------------------------------

func identityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identity",
		Short: "Resolve the hub's identity avatars once and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, client *sleeper.Client) error {
				start := time.Now()
				loader := identity.NewLoader(client, identity.DefaultSources(), logger, nil)
				avatars := loader.Load(ctx)
				logger.Info("Identity resolved", "duration", time.Since(start).Round(time.Millisecond))
				return printJSON(cmd.OutOrStdout(), avatars)
			})
		},
	}
}

// --------------------------------------------------------------------------
// dashboard command
// --------------------------------------------------------------------------

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard <league-id>",
		Short: "Fetch a league from Sleeper and print its dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leagueID := args[0]
			if _, ok := registry.Lookup(leagueID); !ok {
				logger.Warn("League is not registered", "league_id", leagueID)
			}
			return runWithClient(func(ctx context.Context, client *sleeper.Client) error {
				data, err := client.FetchLeagueData(ctx, leagueID)
				if err != nil {
					return fmt.Errorf("fetch league %s: %w", leagueID, err)
				}
				return printJSON(cmd.OutOrStdout(), dashboard.Build(data))
			})
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runWithClient handles config loading, client setup and context cancellation.
func runWithClient(fn func(ctx context.Context, client *sleeper.Client) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client := sleeper.NewClient(cfg.SleeperBaseURL, cfg.SleeperRequestsPerMinute, logger)
	return fn(ctx, client)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
