package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ErrCredentialsMissing is returned by Load when no credentials file
// exists yet; the user must run the setup command first.
var ErrCredentialsMissing = errors.New("no credentials found, run the setup command first")

const (
	appDirName     = "email-routing-cli"
	configFileName = "config.yaml"
)

// Credentials holds the API credentials for the provider. They are
// opaque to the rest of the program and passed through to the API client
// unexamined.
type Credentials struct {
	Email    string `mapstructure:"email"`
	APIToken string `mapstructure:"api_token"`
	APIKey   string `mapstructure:"api_key"`
}

// Validate checks that all credential fields are set.
func (c *Credentials) Validate() error {
	if c.Email == "" {
		return fmt.Errorf("email is required")
	}
	if c.APIToken == "" {
		return fmt.Errorf("api token is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("api key is required")
	}
	return nil
}

// Path returns the platform-appropriate credentials file location,
// e.g. ~/.config/email-routing-cli/config.yaml on Linux.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// Load reads the credentials file. It returns ErrCredentialsMissing when
// the file does not exist.
func Load() (*Credentials, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads credentials from an explicit file path.
func LoadFrom(path string) (*Credentials, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCredentialsMissing
		}
		return nil, fmt.Errorf("failed to stat config at %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config at %s: %w", path, err)
	}

	var creds Credentials
	if err := v.Unmarshal(&creds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config at %s: %w", path, err)
	}

	return &creds, nil
}

// Save writes the credentials file, creating the config directory if
// needed. The file is plain text; callers should warn the user about
// that at setup time.
func Save(creds *Credentials) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, SaveTo(path, creds)
}

// SaveTo writes credentials to an explicit file path.
func SaveTo(path string, creds *Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.Set("email", creds.Email)
	v.Set("api_token", creds.APIToken)
	v.Set("api_key", creds.APIKey)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config at %s: %w", path, err)
	}

	return nil
}
