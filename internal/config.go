package internal

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/wal-g/tracelog"

	"github.com/sitegz/sitegz/internal/compression"
	"github.com/sitegz/sitegz/internal/compression/gzip"
	"github.com/sitegz/sitegz/utility"
)

const (
	ExtensionsSetting        = "gzip.extensions"
	CompressionMethodSetting = "gzip.method"
	ConcurrencySetting       = "gzip.concurrency"
	LogLevelSetting          = "log_level"

	envPrefix = "SITEGZ"
)

var defaultConfigValues = map[string]string{
	CompressionMethodSetting: gzip.AlgorithmName,
	ConcurrencySetting:       "1",
}

// InitDefaults registers setting defaults and environment overrides.
// gzip.extensions deliberately has no viper default: absence is resolved
// against DefaultExtensions at filter-construction time.
func InitDefaults() {
	for setting, value := range defaultConfigValues {
		viper.SetDefault(setting, value)
	}
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// ReadConfigFromFile loads the site configuration file, if one was given.
// A missing --config flag is a normal case, not a failure.
func ReadConfigFromFile(configFile string) error {
	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	err := viper.ReadInConfig()
	return errors.Wrapf(err, "failed to read config file %s", configFile)
}

func ConfigureLogging() error {
	if viper.IsSet(LogLevelSetting) {
		return tracelog.UpdateLogLevel(viper.GetString(LogLevelSetting))
	}
	return nil
}

// ConfigureCompressor resolves gzip.method against the algorithm registry.
func ConfigureCompressor() (compression.Compressor, error) {
	method := viper.GetString(CompressionMethodSetting)
	compressor, ok := compression.Compressors[method]
	if !ok {
		return nil, compression.NewUnknownCompressionMethodError(method)
	}
	return compressor, nil
}

// ResolveExtensions reads the configured allow-list, falling back to
// DefaultExtensions when the setting is absent or empty.
func ResolveExtensions() ExtensionSet {
	configured := viper.GetStringSlice(ExtensionsSetting)
	if len(configured) == 0 {
		return NewExtensionSet(DefaultExtensions...)
	}
	return NewExtensionSet(configured...)
}

// ResolveConcurrency returns the number of files compressed in parallel,
// 1 meaning the fully sequential baseline.
func ResolveConcurrency() int {
	return utility.Max(1, viper.GetInt(ConcurrencySetting))
}
