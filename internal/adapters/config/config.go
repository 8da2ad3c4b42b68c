package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"

	// EnvPrefix scopes environment overrides, e.g. REGNAME_WALLET_RPC_URL.
	EnvPrefix = "REGNAME"

	ConfigDir      = ".regname"
	configFileName = "config.toml"
	secretsDirName = "secrets"

	configFileMode = 0o600
	configDirMode  = 0o700
)

// Config is everything the CLI needs to reach the trails service and the
// chain. The wallet key itself never lives here; it comes from the secret
// store.
type Config struct {
	TrailsBaseURL string
	TrailID       string
	VersionID     string
	PricingNodeID string
	ExpiryNodeID  string
	RPCURL        string
	SecretsDir    string
}

// Load reads ~/.regname/config.toml, applies defaults, and lets
// REGNAME_-prefixed environment variables override individual keys. A
// missing config file is fine; missing required keys are not.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, ConfigDir))
	cfg.SetEnvPrefix(EnvPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault("trails.base_url", "https://api.trailkit.io")
	cfg.SetDefault("trails.trail", "")
	cfg.SetDefault("trails.version", "")
	cfg.SetDefault("trails.pricing_node", "")
	cfg.SetDefault("trails.expiry_node", "")
	cfg.SetDefault("wallet.rpc_url", "https://ethereum-rpc.publicnode.com")
	cfg.SetDefault("wallet.secrets_dir", filepath.Join(homeDir, ConfigDir, secretsDirName))

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		TrailsBaseURL: cfg.GetString("trails.base_url"),
		TrailID:       cfg.GetString("trails.trail"),
		VersionID:     cfg.GetString("trails.version"),
		PricingNodeID: cfg.GetString("trails.pricing_node"),
		ExpiryNodeID:  cfg.GetString("trails.expiry_node"),
		RPCURL:        cfg.GetString("wallet.rpc_url"),
		SecretsDir:    cfg.GetString("wallet.secrets_dir"),
	}

	if err := loaded.validate(); err != nil {
		return Config{}, err
	}

	return loaded, nil
}

func (c Config) validate() error {
	missing := make([]string, 0, 4)
	if strings.TrimSpace(c.TrailID) == "" {
		missing = append(missing, "trails.trail")
	}
	if strings.TrimSpace(c.VersionID) == "" {
		missing = append(missing, "trails.version")
	}
	if strings.TrimSpace(c.PricingNodeID) == "" {
		missing = append(missing, "trails.pricing_node")
	}
	if strings.TrimSpace(c.ExpiryNodeID) == "" {
		missing = append(missing, "trails.expiry_node")
	}

	if len(missing) > 0 {
		return fmt.Errorf("config keys missing: %s (run `regname config init` and edit %s)",
			strings.Join(missing, ", "), filepath.Join("~", ConfigDir, configFileName))
	}

	return nil
}

type fileSchema struct {
	Trails trailsSchema `toml:"trails"`
	Wallet walletSchema `toml:"wallet"`
}

type trailsSchema struct {
	BaseURL     string `toml:"base_url"`
	Trail       string `toml:"trail"`
	Version     string `toml:"version"`
	PricingNode string `toml:"pricing_node"`
	ExpiryNode  string `toml:"expiry_node"`
}

type walletSchema struct {
	RPCURL     string `toml:"rpc_url"`
	SecretsDir string `toml:"secrets_dir"`
}

// WriteDefault writes a commented-out-of-the-box config file for `config
// init`. It refuses to clobber an existing file.
func WriteDefault() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ConfigDir)
	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file %s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(dir, configDirMode); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	defaults := fileSchema{
		Trails: trailsSchema{
			BaseURL: "https://api.trailkit.io",
		},
		Wallet: walletSchema{
			RPCURL:     "https://ethereum-rpc.publicnode.com",
			SecretsDir: filepath.Join(homeDir, ConfigDir, secretsDirName),
		},
	}

	encoded, err := toml.Marshal(defaults)
	if err != nil {
		return "", fmt.Errorf("encode default config: %w", err)
	}

	if err := os.WriteFile(path, encoded, configFileMode); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}

	return path, nil
}
