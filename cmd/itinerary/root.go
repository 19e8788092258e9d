package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/itinerary/internal/logging"
	"github.com/mesh-intelligence/itinerary/internal/paths"
	"github.com/mesh-intelligence/itinerary/internal/repo"
	"github.com/mesh-intelligence/itinerary/internal/state"
	"github.com/mesh-intelligence/itinerary/internal/storage"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
	logLevel  string
	jsonMode  bool
}

// app is the state shared by one command invocation.
type app struct {
	flags   rootFlags
	cfg     *viper.Viper
	log     *logging.Log
	store   types.Store
	repo    *repo.Repository
	dataDir string
}

// run executes one command line and releases the store and log file
// whether or not the command failed.
func run(args []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if cerr := a.close(); err == nil && cerr != nil {
		err = sysErr(cerr)
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "itinerary",
		Short:         "Plan trips day by day",
		Long:          "itinerary keeps trips, their days and activities in a local store,\nand lets you reorder them from the command line or an interactive board.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: per-user config dir)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: per-user data dir)")
	pf.StringVar(&a.flags.backend, "backend", "", "storage backend: sqlite, files or memory")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(a),
		newSeedCmd(a),
		newTripCmd(a),
		newDayCmd(a),
		newActivityCmd(a),
		newBoardCmd(a),
		newExportCmd(a),
		newImportCmd(a),
	)
	return root
}

// setup loads configuration and builds the logger. Storage is opened lazily
// by the commands that need it.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysErr(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysErr(err)
	}
	if a.flags.backend != "" {
		cfg.Set(cfgKeyBackend, a.flags.backend)
	}
	if a.flags.logLevel != "" {
		cfg.Set(cfgKeyLogLevel, a.flags.logLevel)
	}
	a.cfg = cfg

	a.dataDir, err = paths.ResolveDataDir(a.flags.dataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return sysErr(fmt.Errorf("resolve data dir: %w", err))
	}

	level, err := logging.ParseLevel(cfg.GetString(cfgKeyLogLevel))
	if err != nil {
		return userErr(err)
	}
	build := logging.New().FromWriter(cmd.ErrOrStderr()).Level(level).Console(true)
	if path := a.logPath(cmd.Name()); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return sysErr(fmt.Errorf("create log dir: %w", err))
		}
		build.FromPath(path)
	}
	a.log, err = build.Make()
	if err != nil {
		return sysErr(err)
	}
	return nil
}

// logPath returns the file logs go to, or "" for stderr. The board always
// logs to a file.
func (a *app) logPath(cmdName string) string {
	if p := a.cfg.GetString(cfgKeyLogFile); p != "" {
		return p
	}
	if cmdName == "board" {
		return filepath.Join(a.dataDir, boardLogFile)
	}
	return ""
}

// storeConfig is the backend selection for this invocation.
func (a *app) storeConfig() types.Config {
	return types.Config{Backend: a.cfg.GetString(cfgKeyBackend), DataDir: a.dataDir}
}

// openRepo attaches the configured backend and returns the repository over
// it. Seeds the sample trip when seed_sample is set.
func (a *app) openRepo() (*repo.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	s, err := storage.Open(a.storeConfig())
	if err != nil {
		if errors.Is(err, types.ErrBackendUnknown) || errors.Is(err, types.ErrBackendEmpty) {
			return nil, userErr(err)
		}
		return nil, sysErr(err)
	}
	a.store = s
	a.repo = repo.NewRepository(s, a.log.Logger)
	a.log.Logger.Debug().Str("backend", a.cfg.GetString(cfgKeyBackend)).Str("data_dir", a.dataDir).Msg("store attached")

	if a.cfg.GetBool(cfgKeySeedSample) {
		if _, err := a.repo.SeedSample(); err != nil {
			return nil, sysErr(err)
		}
	}
	return a.repo, nil
}

// openState returns a trip state store over the repository with
// notifications going to the log.
func (a *app) openState() (*state.Store, error) {
	r, err := a.openRepo()
	if err != nil {
		return nil, err
	}
	st := state.New(r, state.LogNotifier{Log: a.log.Logger}, a.log.Logger)
	if err := st.Load(); err != nil {
		return nil, sysErr(err)
	}
	return st, nil
}

func (a *app) close() error {
	var err error
	if a.store != nil {
		err = a.store.Detach()
		a.store, a.repo = nil, nil
	}
	if a.log != nil {
		if cerr := a.log.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
