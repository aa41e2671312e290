package config

// Config is the full SolMint configuration.
type Config struct {
	Network NetworkConfig `mapstructure:"network" yaml:"network"`
	Wallet  WalletConfig  `mapstructure:"wallet" yaml:"wallet"`
	Ideas   IdeasConfig   `mapstructure:"ideas" yaml:"ideas"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// NetworkConfig selects the Solana cluster and, optionally, a custom RPC URL.
type NetworkConfig struct {
	Cluster string `mapstructure:"cluster" yaml:"cluster" validate:"required,cluster"`
	RPCURL  string `mapstructure:"rpc_url" yaml:"rpc_url,omitempty" validate:"omitempty,rpc_url"`
}

// WalletConfig chooses the wallet adapter used on connect.
type WalletConfig struct {
	Adapter     string `mapstructure:"adapter" yaml:"adapter" validate:"required,oneof=keypair address"`
	KeypairPath string `mapstructure:"keypair_path" yaml:"keypair_path,omitempty" validate:"required_if=Adapter keypair"`
	Address     string `mapstructure:"address" yaml:"address,omitempty" validate:"required_if=Adapter address,omitempty,pubkey"`
	AutoConnect bool   `mapstructure:"auto_connect" yaml:"auto_connect"`
}

// IdeasConfig locates the idea generator service.
type IdeasConfig struct {
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" validate:"required,http_url"`
}

// LogConfig controls logging. File is used while the TUI owns the terminal.
type LogConfig struct {
	Level         string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	File          string `mapstructure:"file" yaml:"file,omitempty"`
	HumanReadable bool   `mapstructure:"human_readable" yaml:"human_readable"`
}
