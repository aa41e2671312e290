package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	solerrors "github.com/solmint/solmint/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, "devnet", cfg.Network.Cluster)
	require.Equal(t, "keypair", cfg.Wallet.Adapter)
	require.True(t, cfg.Wallet.AutoConnect)
	require.Equal(t, "http://127.0.0.1:8080/api/generate-ideas", cfg.Ideas.Endpoint)
}

func TestLoadReadsYAMLFile(t *testing.T) {
	path := writeConfig(t, `
network:
  cluster: mainnet-beta
  rpc_url: https://rpc.example.com
wallet:
  adapter: address
  address: 4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T
  auto_connect: false
ideas:
  endpoint: https://ideas.example.com/api/generate-ideas
log:
  level: debug
`)

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	require.Equal(t, "mainnet-beta", cfg.Network.Cluster)
	require.Equal(t, "https://rpc.example.com", cfg.Network.RPCURL)
	require.Equal(t, "address", cfg.Wallet.Adapter)
	require.False(t, cfg.Wallet.AutoConnect)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "network:\n  cluster: testnet\n")
	t.Setenv("SOLMINT_NETWORK_CLUSTER", "localnet")
	t.Setenv("SOLMINT_IDEAS_ENDPOINT", "http://localhost:9000/api/generate-ideas")

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	require.Equal(t, "localnet", cfg.Network.Cluster)
	require.Equal(t, "http://localhost:9000/api/generate-ideas", cfg.Ideas.Endpoint)
}

func TestLoadFlagsOverrideEverything(t *testing.T) {
	path := writeConfig(t, "network:\n  cluster: testnet\n")
	t.Setenv("SOLMINT_NETWORK_CLUSTER", "localnet")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("cluster", "", "")
	require.NoError(t, fs.Parse([]string{"--cluster", "mainnet-beta"}))

	cfg, err := Load(LoadOptions{Path: path, Flags: map[string]*pflag.Flag{"network.cluster": fs.Lookup("cluster")}})
	require.NoError(t, err)
	require.Equal(t, "mainnet-beta", cfg.Network.Cluster)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "nope.yaml")})
	var cfgErr *solerrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "network: [unclosed\n")
	_, err := Load(LoadOptions{Path: path})
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]struct {
		body  string
		field string
	}{
		"unknown cluster": {"network:\n  cluster: moonnet\n", "network.cluster"},
		"bad rpc url":     {"network:\n  rpc_url: ftp://x\n", "network.rpc_url"},
		"bad adapter":     {"wallet:\n  adapter: ledger\n", "wallet.adapter"},
		"missing address": {"wallet:\n  adapter: address\n", "wallet.address"},
		"bad address":     {"wallet:\n  adapter: address\n  address: nope\n", "wallet.address"},
		"bad endpoint":    {"ideas:\n  endpoint: not a url\n", "ideas.endpoint"},
		"bad log level":   {"log:\n  level: loud\n", "log.level"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(LoadOptions{Path: writeConfig(t, tc.body)})
			var validationErr *solerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestValidateDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(&cfg))
	require.Error(t, Validate(nil))
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solmint", "config.yaml")
	require.NoError(t, WriteDefault(path, false))
	require.Error(t, WriteDefault(path, false), "existing file is kept")
	require.NoError(t, WriteDefault(path, true))

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	want := Default()
	require.Equal(t, want.Network, cfg.Network)
	require.Equal(t, want.Wallet, cfg.Wallet)
	require.Equal(t, want.Ideas, cfg.Ideas)
}
