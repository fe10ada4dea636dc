package internal_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitegz/sitegz/internal"
	"github.com/sitegz/sitegz/internal/compression/gzip"
	"github.com/sitegz/sitegz/internal/compression/zstd"
)

func resetConfig(t *testing.T) {
	viper.Reset()
	internal.InitDefaults()
	t.Cleanup(viper.Reset)
}

func TestResolveExtensions_DefaultsWhenUnset(t *testing.T) {
	resetConfig(t)

	set := internal.ResolveExtensions()
	assert.ElementsMatch(t, internal.DefaultExtensions, set.Slice())
}

func TestResolveExtensions_DefaultsWhenEmpty(t *testing.T) {
	resetConfig(t)
	viper.Set(internal.ExtensionsSetting, []string{})

	set := internal.ResolveExtensions()
	assert.ElementsMatch(t, internal.DefaultExtensions, set.Slice())
}

func TestResolveExtensions_Configured(t *testing.T) {
	resetConfig(t)
	viper.Set(internal.ExtensionsSetting, []string{".css", ".svg"})

	set := internal.ResolveExtensions()
	assert.Equal(t, []string{".css", ".svg"}, set.Slice())
	assert.False(t, set.Contains(".html"))
}

func TestConfigureCompressor_DefaultIsGzip(t *testing.T) {
	resetConfig(t)

	compressor, err := internal.ConfigureCompressor()
	require.NoError(t, err)
	assert.Equal(t, gzip.FileExtension, compressor.FileExtension())
}

func TestConfigureCompressor_ConfiguredMethod(t *testing.T) {
	resetConfig(t)
	viper.Set(internal.CompressionMethodSetting, zstd.AlgorithmName)

	compressor, err := internal.ConfigureCompressor()
	require.NoError(t, err)
	assert.Equal(t, zstd.FileExtension, compressor.FileExtension())
}

func TestConfigureCompressor_UnknownMethod(t *testing.T) {
	resetConfig(t)
	viper.Set(internal.CompressionMethodSetting, "deflate64")

	_, err := internal.ConfigureCompressor()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deflate64")
}

func TestConfigureLogging_WhenLogLevelSettingIsNotSet(t *testing.T) {
	resetConfig(t)

	assert.NoError(t, internal.ConfigureLogging())
}

func TestConfigureLogging_WhenLogLevelSettingIsIncorrect(t *testing.T) {
	resetConfig(t)
	viper.Set(internal.LogLevelSetting, "incorrect")

	assert.Error(t, internal.ConfigureLogging())
}

func TestResolveConcurrency(t *testing.T) {
	resetConfig(t)
	assert.Equal(t, 1, internal.ResolveConcurrency())

	viper.Set(internal.ConcurrencySetting, 8)
	assert.Equal(t, 8, internal.ResolveConcurrency())

	viper.Set(internal.ConcurrencySetting, -3)
	assert.Equal(t, 1, internal.ResolveConcurrency())
}
