package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/rental"
	"github.com/spf13/viper"
)

// Config holds the application settings.
type Config struct {
	Currency string
	Clear    bool // clear the console between steps of a session
	Verbose  bool
	Seeds    rental.Seeds
	File     string // configuration file in use, if any
}

// LoadConfig reads the configuration from defaults, the file and the RROI_*
// environment variables, the latter taking precedence.
// An empty file means the default location, which may not exist.
func LoadConfig(file string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("RROI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	seeds := rental.DefaultSeeds()
	v.SetDefault("currency", "USD")
	v.SetDefault("clear", true)
	v.SetDefault("verbose", false)
	v.SetDefault("seeds.income", seeds.Income)
	v.SetDefault("seeds.expenses", seeds.Expenses)
	v.SetDefault("seeds.investments", seeds.Investments)

	if file == "" {
		file = defaultConfigFile()
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading configuration %q: %w", file, err)
		}
	}

	return &Config{
		Currency: strings.ToUpper(strings.TrimSpace(v.GetString("currency"))),
		Clear:    v.GetBool("clear"),
		Verbose:  v.GetBool("verbose"),
		Seeds: rental.Seeds{
			Income:      names(v, "seeds.income"),
			Expenses:    names(v, "seeds.expenses"),
			Investments: names(v, "seeds.investments"),
		},
		File: file,
	}, nil
}

// defaultConfigFile returns the user configuration file if it exists.
func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	file := filepath.Join(dir, "rroi", "config.toml")
	if _, err := os.Stat(file); err != nil {
		return ""
	}
	return file
}

// names reads a list of item names. The environment gives it as a comma
// separated string, since names may contain spaces.
func names(v *viper.Viper, key string) []string {
	if s, ok := v.Get(key).(string); ok {
		if strings.TrimSpace(s) == "" {
			return []string{}
		}
		return normalize(strings.Split(s, ","))
	}
	return normalize(v.GetStringSlice(key))
}

// normalize lower cases names like the session does with user input.
func normalize(list []string) []string {
	res := make([]string, 0, len(list))
	for _, n := range list {
		res = append(res, strings.ToLower(strings.TrimSpace(n)))
	}
	return res
}

// Validate checks the settings that cannot be checked while loading.
func (c *Config) Validate() error {
	if !rental.ValidCurrency(c.Currency) {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	for _, k := range rental.Kinds {
		for _, name := range c.Seeds.Of(k) {
			if name == "" {
				return fmt.Errorf("%s seeds: %w", k, rental.ErrEmptyName)
			}
		}
	}
	return nil
}

