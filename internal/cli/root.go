package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"horizonbot/internal/config"
	"horizonbot/internal/logger"
	"horizonbot/internal/repository"
	"horizonbot/internal/service"

	"github.com/spf13/cobra"
)

// Build information, set by main
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type options struct {
	seedFile   string
	dsn        string
	seedRandom int64
	logLevel   string
	raw        bool
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the horizonbot command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "horizonbot",
		Short: "HorizonBot - rule-based property assistant",
		Long: `HorizonBot answers real-estate questions from a property catalog.

It classifies each message with fixed keyword rules, extracts the
configuration, location, budget and area it mentions, and replies with
matching listings or a canned answer.

The catalog is read from a YAML snapshot (--seed) or PostgreSQL (--dsn).`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.seedFile, "seed", "", "YAML catalog snapshot for the in-memory catalog")
	rootCmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "PostgreSQL connection string")
	rootCmd.PersistentFlags().Int64Var(&opts.seedRandom, "seed-random", 0, "seed for canned reply selection (0 = time based)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&opts.raw, "raw", false, "print replies with their HTML markup")

	rootCmd.AddCommand(newAskCommand(opts))
	rootCmd.AddCommand(newChatCommand(opts))
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "horizonbot %s (commit %s, built %s)\n", Version, GitCommit, BuildTime)
		},
	}
}

// newChatService opens the catalog selected by the flags
func (o *options) newChatService(stderr io.Writer) (*service.ChatService, func() error, error) {
	cfg := &config.Config{}
	switch {
	case o.dsn != "":
		cfg.Catalog.Backend = config.BackendPostgres
		cfg.PostgreSQL.DSN = o.dsn
		cfg.PostgreSQL.MaxConnections = 2
		cfg.PostgreSQL.MaxIdleConnections = 1
	case o.seedFile != "":
		cfg.Catalog.Backend = config.BackendMemory
		cfg.Catalog.SeedFile = o.seedFile
	default:
		return nil, nil, errors.New("either --seed or --dsn is required")
	}

	store, closeStore, err := repository.Open(cfg)
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.Options{Writer: stderr, Level: o.logLevel, Format: "text", Color: true})
	seed := o.seedRandom
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	chat := service.NewChatService(store, service.NewExtractor(store, log), log,
		service.WithRandom(rand.New(rand.NewSource(seed))))
	return chat, closeStore, nil
}

var (
	lineBreaks = regexp.MustCompile(`(?i)<br\s*/?>`)
	anchors    = regexp.MustCompile(`(?i)<a\s+href="([^"]*)"[^>]*>([^<]*)</a>`)
	blankRuns  = regexp.MustCompile(`\n{3,}`)
)

// plainText turns a reply's HTML markup into terminal text
func plainText(reply string) string {
	text := anchors.ReplaceAllString(reply, "$2: $1")
	text = lineBreaks.ReplaceAllString(text, "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func (o *options) render(reply string) string {
	if o.raw {
		return reply
	}
	return plainText(reply)
}
