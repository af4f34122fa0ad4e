// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"strings"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	Environement  string `mapstructure:"GO_ENV"`
	Locale        string `mapstructure:"LOCALE"`
	Currency      string `mapstructure:"CURRENCY"`
	// AnswerKeyFile is a yaml answer key; the built-in exercise is used when empty.
	AnswerKeyFile string `mapstructure:"ANSWER_KEY_FILE"`
	// CreditTotalExcludes is a comma separated list of accounts left out of the abono total.
	CreditTotalExcludes string `mapstructure:"CREDIT_TOTAL_EXCLUDES"`
}

// ExcludedFromCreditTotal splits CreditTotalExcludes into account keys.
func (c Config) ExcludedFromCreditTotal() []string {
	var keys []string

	for _, k := range strings.Split(c.CreditTotalExcludes, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}

	return keys
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("LOCALE", "es-MX")
	v.SetDefault("CURRENCY", "MXN")
	v.SetDefault("ANSWER_KEY_FILE", "")
	v.SetDefault("CREDIT_TOTAL_EXCLUDES", "")

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
