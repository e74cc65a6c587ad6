package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/CTAG07/markov/pkg/corpus"
	"github.com/CTAG07/markov/pkg/markov"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:          "markov",
	Short:        "Train a word-level Markov chain and sample sentences from it",
	Version:      fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "./config.json", "Path to the JSON configuration file")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the command's logger. Logs go to stderr so stdout only
// carries generated text.
func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// setup loads the configuration named by the --config flag and builds a logger from it.
func setup(cmd *cobra.Command) (*Config, *slog.Logger, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}
	config, err := LoadConfig(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return config, newLogger(config.LogLevel), nil
}

// train builds a TextChain and feeds it every configured corpus source.
func train(ctx context.Context, config *Config, logger *slog.Logger) (*markov.TextChain, error) {
	gen := config.Generation
	tokOpts := []markov.TokenizerOption{
		markov.WithSeparator(gen.Separator),
		markov.WithTerminator(gen.Terminator),
	}
	if gen.SplitRegex != "" {
		tokOpts = append(tokOpts, markov.WithSplitRegex(gen.SplitRegex))
	}
	chainOpts := []markov.Option{markov.WithLogger(logger)}
	if gen.Seed != 0 {
		chainOpts = append(chainOpts, markov.WithSeed(gen.Seed))
	}
	tc := markov.NewTextChain(markov.NewDefaultTokenizer(tokOpts...), chainOpts...)

	src := config.Corpus
	if src.FilePath == "" && src.DatabasePath == "" {
		return nil, fmt.Errorf("no corpus configured: set corpus_config.file_path or corpus_config.database_path")
	}

	if src.FilePath != "" {
		if err := tc.FeedFile(src.FilePath); err != nil {
			return nil, fmt.Errorf("failed to train from file: %w", err)
		}
		logger.InfoContext(ctx, "Trained from file", slog.String("path", src.FilePath))
	}

	if src.DatabasePath != "" {
		if err := trainFromDB(ctx, tc, src); err != nil {
			return nil, fmt.Errorf("failed to train from database: %w", err)
		}
		logger.InfoContext(ctx, "Trained from database", slog.String("path", src.DatabasePath))
	}

	stats := tc.Stats()
	logger.InfoContext(ctx, "Training completed",
		slog.Int("sentences_processed", stats.Sequences),
		slog.Int("vocab_size", stats.Tokens),
		slog.Int("transitions", stats.Transitions),
	)
	return tc, nil
}

func trainFromDB(ctx context.Context, tc *markov.TextChain, src *CorpusConfig) error {
	db, err := openCorpusDB(src.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := corpus.NewSQL(ctx, db, src.Query)
	if err != nil {
		return err
	}
	defer func() {
		_ = rows.Close()
	}()

	return tc.FeedLines(rows)
}
