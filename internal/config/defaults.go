package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/solmint/solmint/internal/ideas"
	"github.com/solmint/solmint/internal/solana"
	"github.com/solmint/solmint/internal/wallet"
)

// AppName names the config and state directories.
const AppName = "solmint"

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Network: NetworkConfig{
			Cluster: string(solana.Devnet),
		},
		Wallet: WalletConfig{
			Adapter:     wallet.AdapterKeypair,
			KeypairPath: "~/.config/solana/id.json",
			AutoConnect: true,
		},
		Ideas: IdeasConfig{
			Endpoint: ideas.DefaultEndpoint,
		},
		Log: LogConfig{
			Level:         "info",
			File:          defaultLogFile(),
			HumanReadable: true,
		},
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, AppName, "config.yaml"), nil
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, AppName+".log")
}

// WriteDefault writes the default configuration as YAML. An existing file is
// left alone unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	header := []byte("# SolMint configuration. Environment variables SOLMINT_<SECTION>_<KEY> override these values.\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
