package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/config"
)

// Each test uses its own struct type: Load caches per type, so sharing one
// across tests would couple them through the cache.

func TestLoad(t *testing.T) {
	type loadCfg struct {
		Name  string `env:"LOADER_TEST_NAME" envDefault:"fallback"`
		Debug bool   `env:"LOADER_TEST_DEBUG" envDefault:"false"`
	}
	t.Setenv("LOADER_TEST_NAME", "from-env")
	t.Setenv("LOADER_TEST_DEBUG", "true")

	var c loadCfg
	require.NoError(t, config.Load(&c))
	assert.Equal(t, "from-env", c.Name)
	assert.True(t, c.Debug)
}

func TestLoadDefaults(t *testing.T) {
	type defaultsCfg struct {
		Name string `env:"LOADER_TEST_UNSET_NAME" envDefault:"fallback"`
	}
	var c defaultsCfg
	require.NoError(t, config.Load(&c))
	assert.Equal(t, "fallback", c.Name)
}

func TestLoadCachesPerType(t *testing.T) {
	type cachedCfg struct {
		Name string `env:"LOADER_TEST_CACHED_NAME"`
	}
	t.Setenv("LOADER_TEST_CACHED_NAME", "first")

	var first cachedCfg
	require.NoError(t, config.Load(&first))
	require.Equal(t, "first", first.Name)

	// Later env changes do not affect an already-parsed type.
	t.Setenv("LOADER_TEST_CACHED_NAME", "second")
	var second cachedCfg
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)
}

func TestLoadNilPointer(t *testing.T) {
	type nilCfg struct {
		Name string `env:"LOADER_TEST_NAME"`
	}
	var c *nilCfg
	require.ErrorIs(t, config.Load(c), config.ErrNilPointer)
}

func TestLoadMissingRequired(t *testing.T) {
	type requiredCfg struct {
		Token string `env:"LOADER_TEST_TOKEN,required"`
	}
	var c requiredCfg
	require.ErrorIs(t, config.Load(&c), config.ErrParsingConfig)
}

func TestMustLoadPanics(t *testing.T) {
	type panicCfg struct {
		Token string `env:"LOADER_TEST_PANIC_TOKEN,required"`
	}
	assert.Panics(t, func() {
		var c panicCfg
		config.MustLoad(&c)
	})
}
