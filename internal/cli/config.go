package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/STBoyden/gobag"
	e "github.com/STBoyden/gobag/error"
	"github.com/STBoyden/gobag/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = "bagdemo"
	configFileType = "yaml"
	envPrefix      = "BAGS"

	cfgKeyVariant          = "variant"
	cfgKeyInitialCapacity  = "initial_capacity"
	cfgKeyMaxCapacity      = "max_capacity"
	cfgKeyDebug            = "debug"
	cfgKeyCodectrlEnabled  = "codectrl.enabled"
	cfgKeyCodectrlHost     = "codectrl.host"
	cfgKeyCodectrlPort     = "codectrl.port"
	cfgKeyCodectrlSurround = "codectrl.surround"

	variantArray = "array"
	variantChain = "chain"
)

// flagKeys maps persistent flag names to the config keys they override.
var flagKeys = map[string]string{
	"variant":       cfgKeyVariant,
	"capacity":      cfgKeyInitialCapacity,
	"max-capacity":  cfgKeyMaxCapacity,
	"debug":         cfgKeyDebug,
	"codectrl":      cfgKeyCodectrlEnabled,
	"codectrl-host": cfgKeyCodectrlHost,
	"codectrl-port": cfgKeyCodectrlPort,
}

// settings is the validated view of the configuration.
type settings struct {
	variant         string
	initialCapacity int
	maxCapacity     int
	debug           bool
	codectrl        bool
	reporter        report.Params
}

// loadConfig layers flags over BAGS_* environment variables over the config
// file over defaults. A missing config file is not an error unless it was
// named explicitly.
func loadConfig(cmd *cobra.Command, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyVariant, variantArray)
	v.SetDefault(cfgKeyMaxCapacity, gobag.DefaultMaxCapacity)
	v.SetDefault(cfgKeyDebug, false)
	v.SetDefault(cfgKeyCodectrlEnabled, false)
	v.SetDefault(cfgKeyCodectrlHost, report.DefaultHost)
	v.SetDefault(cfgKeyCodectrlPort, report.DefaultPort)
	v.SetDefault(cfgKeyCodectrlSurround, report.DefaultSurround)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	flags := cmd.Root().PersistentFlags()
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if dir, err := defaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// defaultConfigDir returns $XDG_CONFIG_HOME/gobag, falling back to
// ~/.config/gobag.
func defaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gobag"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "gobag"), nil
}

func readSettings(v *viper.Viper) (settings, error) {
	s := settings{
		variant:         strings.ToLower(v.GetString(cfgKeyVariant)),
		initialCapacity: v.GetInt(cfgKeyInitialCapacity),
		maxCapacity:     v.GetInt(cfgKeyMaxCapacity),
		debug:           v.GetBool(cfgKeyDebug),
		codectrl:        v.GetBool(cfgKeyCodectrlEnabled),
		reporter: report.Params{
			Host:     v.GetString(cfgKeyCodectrlHost),
			Port:     v.GetString(cfgKeyCodectrlPort),
			Surround: v.GetUint32(cfgKeyCodectrlSurround),
		},
	}

	// Without an explicit initial capacity the default must still fit
	// under a smaller maximum.
	if !v.IsSet(cfgKeyInitialCapacity) {
		s.initialCapacity = min(gobag.DefaultCapacity, max(s.maxCapacity, 0))
	}

	if s.variant != variantArray && s.variant != variantChain {
		return settings{}, e.New(e.ConfigError, fmt.Sprintf("unknown variant %q (want %s or %s)", s.variant, variantArray, variantChain))
	}

	return s, nil
}

// newBag creates an empty bag of the configured kind.
func newBag[T comparable](s settings) (gobag.Bag[T], error) {
	if s.variant == variantChain {
		return gobag.NewChainBag[T](), nil
	}

	bag, err := gobag.NewArrayBagWithCapacity[T](s.initialCapacity, gobag.WithMaxCapacity(s.maxCapacity))
	if err != nil {
		return nil, err
	}

	return bag, nil
}

// bagOf creates a bag of the configured kind holding items.
func bagOf[T comparable](s settings, items ...T) (gobag.Bag[T], error) {
	bag, err := newBag[T](s)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := bag.Add(item); err != nil {
			return nil, err
		}
	}

	return bag, nil
}
