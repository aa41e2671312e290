package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	solerrors "github.com/solmint/solmint/pkg/errors"
)

// EnvPrefix prefixes environment overrides, e.g. SOLMINT_NETWORK_CLUSTER.
const EnvPrefix = "SOLMINT"

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "SOLMINT_CONFIG"

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path is an explicit config file. When empty, SOLMINT_CONFIG and then the
	// default location are tried, and a missing file is not an error.
	Path string
	// Flags maps config keys to command-line flags that override them when set.
	Flags map[string]*pflag.Flag
}

// Load layers defaults, the YAML config file, SOLMINT_* environment variables
// and flags, then validates the result.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType("yaml")
	path := opts.Path
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range opts.Flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, solerrors.NewConfigError(path, fmt.Errorf("bind flag %s: %w", flag.Name, err))
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if explicit || !isNotExist(err) {
				return nil, solerrors.NewConfigError(path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, solerrors.NewConfigError(path, fmt.Errorf("unmarshal config: %w", err))
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("network.cluster", d.Network.Cluster)
	v.SetDefault("network.rpc_url", d.Network.RPCURL)
	v.SetDefault("wallet.adapter", d.Wallet.Adapter)
	v.SetDefault("wallet.keypair_path", d.Wallet.KeypairPath)
	v.SetDefault("wallet.address", d.Wallet.Address)
	v.SetDefault("wallet.auto_connect", d.Wallet.AutoConnect)
	v.SetDefault("ideas.endpoint", d.Ideas.Endpoint)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.human_readable", d.Log.HumanReadable)
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, os.ErrNotExist)
}
