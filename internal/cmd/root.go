package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Dallionking/milestone/internal/checklist"
	"github.com/Dallionking/milestone/internal/config"
	"github.com/Dallionking/milestone/internal/storage"
	"github.com/Dallionking/milestone/internal/tui/models"
	"github.com/Dallionking/milestone/internal/tui/views"
)

// skipSetup marks commands that never touch the data directory. They run
// with a no-op logger and skip config validation.
const skipSetup = "milestone/skip-setup"

var (
	cfgFile   string
	dataDir   string
	verbose   bool
	noColor   bool
	ephemeral bool

	cfg       *config.Config
	configErr error
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "milestone",
	Short: "Track 1000 sales on a terminal checklist board",
	Long: `OneManDB Milestone: 1000 sales at $37 each.

Launches a full-screen board of 1000 cells. Toggle sales with the mouse or
keyboard; progress, revenue and the dark-mode flag are saved after every
change. Every hundredth sale gets a celebration.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		if cmd.Annotations[skipSetup] == "true" {
			logger = zap.NewNop()
			return nil
		}

		if errs := config.Validate(cfg); len(errs) > 0 {
			joined := make([]error, len(errs))
			for i, e := range errs {
				joined[i] = e
			}
			return fmt.Errorf("invalid config: %w", errors.Join(joined...))
		}
		if err := config.EnsureDirectories(cfg); err != nil {
			return fmt.Errorf("preparing data directory: %w", err)
		}

		l, err := buildLogger(cfg, verbose)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}

		logger.Info("board started",
			zap.Int("completed", store.Metrics().Completed),
			zap.Bool("dark", store.DarkMode()),
			zap.Bool("ephemeral", ephemeral),
		)

		return views.RunBoard(store, models.BoardOptions{
			Columns:     cfg.Grid.Columns,
			Celebration: cfg.CelebrationDuration(),
			Logger:      logger,
		})
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.json)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the stored board")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep the board in memory only")

	_ = viper.BindPFlag("dataDir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("json")
		for _, p := range config.SearchPaths() {
			viper.AddConfigPath(p)
		}
	}
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(config.EnvKeyReplacer())
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())
	configErr = viper.ReadInConfig()
}

// loadConfig decodes the global viper state. An explicit --config that
// cannot be read is an error, as is a malformed config.json; a missing
// default config is not.
func loadConfig() (*config.Config, error) {
	var notFound viper.ConfigFileNotFoundError
	if configErr != nil && (cfgFile != "" || !errors.As(configErr, &notFound)) {
		return nil, fmt.Errorf("reading config: %w", configErr)
	}
	c, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return c, nil
}

// buildLogger writes JSON logs to the configured file. The TUI owns the
// terminal, so nothing is logged to stderr.
func buildLogger(c *config.Config, debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{c.Log.File}
	zc.ErrorOutputPaths = []string{c.Log.File}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if debug {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	l, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return l.Named("milestone"), nil
}

// openStore loads the board from the data directory, or from memory with
// --ephemeral. The returned DiskKV is nil for an in-memory board.
func openStore() (*checklist.Store, *storage.DiskKV, error) {
	var (
		kv   storage.KV
		disk *storage.DiskKV
	)
	if ephemeral {
		kv = storage.NewMemory()
	} else {
		d, err := storage.OpenDisk(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening data directory: %w", err)
		}
		kv, disk = d, d
	}

	bridge := storage.NewBridge(kv, logger)
	return bridge.OpenStore(cfg.DarkByDefault()), disk, nil
}
