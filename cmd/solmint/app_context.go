package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/solmint/solmint/internal/config"
	"github.com/solmint/solmint/internal/ideas"
	"github.com/solmint/solmint/internal/logger"
	"github.com/solmint/solmint/internal/solana"
	"github.com/solmint/solmint/internal/wallet"
)

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"network.cluster":     "cluster",
	"network.rpc_url":     "rpc",
	"wallet.keypair_path": "keypair",
	"ideas.endpoint":      "ideas-endpoint",
}

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Log    *logger.Logger
	Wallet *wallet.Provider
	RPC    *solana.HTTPClient
	Ideas  *ideas.Client
}

// loadConfig layers the config file, environment and flags of cmd.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	bound := make(map[string]*pflag.Flag, len(flagKeys))
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			bound[key] = f
		}
	}
	return config.Load(config.LoadOptions{
		Path:  flags.configPath,
		Flags: bound,
	})
}

// newLogger builds the command logger. When toFile is set output goes to the
// configured log file, since the TUI owns the terminal.
func newLogger(cfg *config.Config, flags *rootFlags, toFile bool, stderr io.Writer) (*logger.Logger, error) {
	opts := logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        stderr,
	}
	if flags.verbose {
		opts.Level = "debug"
	}
	if toFile {
		opts.File = cfg.Log.File
	}
	return logger.New(opts)
}

// newAppContext loads configuration and wires the wallet, RPC and idea
// clients. The caller closes the returned context's logger.
func newAppContext(cmd *cobra.Command, flags *rootFlags, logToFile bool) (*AppContext, error) {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg, flags, logToFile, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	provider, err := wallet.NewProvider(wallet.ProviderOptions{
		Cluster:     solana.Cluster(cfg.Network.Cluster),
		Endpoint:    cfg.Network.RPCURL,
		Adapter:     cfg.Wallet.Adapter,
		AutoConnect: cfg.Wallet.AutoConnect,
		Log:         log,
	}, walletAdapters(cfg)...)
	if err != nil {
		_ = log.Close()
		return nil, err
	}

	ideasClient := ideas.NewClient(cfg.Ideas.Endpoint, ideas.WithLogger(log))

	log.WithFields(map[string]any{
		"cluster":        cfg.Network.Cluster,
		"endpoint":       provider.Endpoint(),
		"adapter":        provider.Selected(),
		"ideas_endpoint": ideasClient.Endpoint(),
	}).Debug("configuration loaded")

	return &AppContext{
		Config: cfg,
		Log:    log,
		Wallet: provider,
		RPC:    solana.NewHTTPClient(provider.Endpoint()),
		Ideas:  ideasClient,
	}, nil
}

// walletAdapters registers every adapter the config can back.
func walletAdapters(cfg *config.Config) []wallet.Adapter {
	var adapters []wallet.Adapter
	if cfg.Wallet.KeypairPath != "" {
		adapters = append(adapters, wallet.KeypairAdapter{Path: cfg.Wallet.KeypairPath})
	}
	if cfg.Wallet.Address != "" {
		adapters = append(adapters, wallet.AddressAdapter{Address: cfg.Wallet.Address})
	}
	return adapters
}

// Close releases the logger.
func (a *AppContext) Close() error {
	if a == nil {
		return nil
	}
	return a.Log.Close()
}
