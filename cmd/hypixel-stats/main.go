// Command hypixel-stats fetches a Hypixel player by name and prints a
// curated stats report for one game mode.
//
// Usage:
//
//	hypixel-stats stats <username> --game bedwars
//	hypixel-stats stats <username> --game skywars
//	hypixel-stats raw <username> <game>
//
// The API key is read from HYPIXEL_API_KEY (or a local .env file).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/hollowellis/hypixel-data/internal/cache"
	"github.com/hollowellis/hypixel-data/internal/config"
	"github.com/hollowellis/hypixel-data/internal/hypixel"
	"github.com/hollowellis/hypixel-data/internal/record"
	"github.com/hollowellis/hypixel-data/internal/render"
	"github.com/hollowellis/hypixel-data/internal/stats"
)

var logLevel = new(slog.LevelVar)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	var debug bool

	root := &cobra.Command{
		Use:   "hypixel-stats",
		Short: "Hypixel player stats extraction CLI",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logLevel.Set(slog.LevelDebug)
			}
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(statsCmd())
	root.AddCommand(rawCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// stats command
// --------------------------------------------------------------------------

func statsCmd() *cobra.Command {
	var game string
	cmd := &cobra.Command{
		Use:   "stats <username>",
		Short: "Print a curated stats report for one game mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(args[0], func(ctx context.Context, rec record.Record) error {
				var rep *stats.Report
				var title string
				switch strings.ToLower(game) {
				case "bedwars":
					rep = stats.NewExtractor(stats.BedwarsCatalog(), logger).ExtractBedwars(rec)
					title = "Important Bedwars Stats"
				case "skywars":
					rep = stats.NewExtractor(stats.SkywarsCatalog(), logger).ExtractSkywars(rec)
					title = "Important Skywars Stats"
				default:
					return fmt.Errorf("unknown game %q: curated stats exist for bedwars and skywars (use the raw command for others)", game)
				}
				fmt.Println("If you don't have any data in a specific gamemode or stat, it won't be shown.")
				return render.WriteReport(os.Stdout, title, rep)
			})
		},
	}
	cmd.Flags().StringVar(&game, "game", "bedwars", "Game mode (bedwars, skywars)")
	return cmd
}

// --------------------------------------------------------------------------
// raw command
// --------------------------------------------------------------------------

func rawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw <username> <game>",
		Short: "Dump the raw stats subtree for any game mode",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			game := args[1]
			return runFetch(args[0], func(ctx context.Context, rec record.Record) error {
				res := gjson.Get(rec.Raw(), "stats."+game)
				if !res.Exists() {
					return fmt.Errorf("no data found for game mode %q (check the spelling, e.g. Bedwars, SkyWars, Arcade)", game)
				}
				fmt.Printf("--- Raw Data for Game Mode: %s ---\n", game)
				os.Stdout.Write(pretty.Pretty([]byte(res.Raw)))
				fmt.Println("---------------------------------------")
				return nil
			})
		},
	}
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runFetch handles config loading, client construction, the player fetch,
// and context cancellation.
func runFetch(username string, fn func(ctx context.Context, rec record.Record) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Debug {
		logLevel.Set(slog.LevelDebug)
	}

	client := hypixel.NewClient(cfg.APIKey, hypixel.Options{
		BaseURL:           cfg.BaseURL,
		RequestsPerMinute: cfg.RequestsPerMinute,
		Timeout:           cfg.HTTPTimeout,
		Cache:             cache.New(cfg.CacheEnabled),
		CacheTTL:          cfg.CacheTTL,
	}, logger)

	rec, err := client.ResolveAndFetch(ctx, username)
	if err != nil {
		if hypixel.IsNotFound(err) {
			return fmt.Errorf("player %q not found: check if the username is correct or if the player exists", username)
		}
		return fmt.Errorf("fetch player data: %w", err)
	}
	logger.Debug("player data received", "player", username)

	return fn(ctx, rec)
}
