package nexus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstreamConfig struct {
	BaseURL string        `env:"NEXUS_TEST_BASE_URL" env-default:"https://restcountries.com/v3.1" validate:"required,url"`
	Timeout time.Duration `env:"NEXUS_TEST_TIMEOUT" env-default:"10s"`
}

type testConfig struct {
	Port         string `env:"NEXUS_TEST_PORT" env-default:"8080" yaml:"port"`
	SymmetricKey string `env:"NEXUS_TEST_KEY" yaml:"symmetric_key"`
	Upstream     upstreamConfig
}

func TestLoader_Defaults(t *testing.T) {
	var cfg testConfig
	err := NewLoader(WithOnlyEnvironment()).Load(&cfg)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://restcountries.com/v3.1", cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
}

func TestLoader_EnvOverridesDefault(t *testing.T) {
	t.Setenv("NEXUS_TEST_PORT", "9090")
	t.Setenv("NEXUS_TEST_TIMEOUT", "2s")

	var cfg testConfig
	require.NoError(t, NewLoader(WithOnlyEnvironment()).Load(&cfg))

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.Upstream.Timeout)
}

func TestLoader_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(file, []byte("port: \"7070\"\nsymmetric_key: from-file\n"), 0o600))

	t.Run("file fills values", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, NewLoader(WithFileName(file)).Load(&cfg))
		assert.Equal(t, "7070", cfg.Port)
		assert.Equal(t, "from-file", cfg.SymmetricKey)
	})

	t.Run("env wins over file", func(t *testing.T) {
		t.Setenv("NEXUS_TEST_PORT", "6060")
		var cfg testConfig
		require.NoError(t, NewLoader(WithFileName(file)).Load(&cfg))
		assert.Equal(t, "6060", cfg.Port)
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, NewLoader(WithFileName(filepath.Join(dir, "nope.yml"))).Load(&cfg))
		assert.Equal(t, "8080", cfg.Port)
	})
}

func TestLoader_RejectsNonPointer(t *testing.T) {
	err := NewLoader(WithOnlyEnvironment()).Load(testConfig{})

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeInvalidType, cfgErr.Code)
}

func TestLoader_ValidationFailure(t *testing.T) {
	t.Setenv("NEXUS_TEST_BASE_URL", "not a url")

	var cfg testConfig
	err := NewLoader(WithOnlyEnvironment()).Load(&cfg)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeValidation, cfgErr.Code)
}

func TestLoader_SecurityCheckRecurses(t *testing.T) {
	type nested struct {
		Password string `env:"NEXUS_TEST_NESTED_PASSWORD"`
	}
	type cfgWithNested struct {
		Redis nested
	}
	t.Setenv("NEXUS_TEST_NESTED_PASSWORD", "password123")

	var cfg cfgWithNested
	err := NewLoader(WithOnlyEnvironment()).Load(&cfg)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeSecurityCheck, cfgErr.Code)
	assert.Contains(t, cfgErr.Cause.Error(), "Redis.Password")
}

type staticSource struct {
	name     string
	priority int
	port     string
	calls    *[]string
}

func (s staticSource) Load(_ context.Context, target any) error {
	*s.calls = append(*s.calls, s.name)
	target.(*testConfig).Port = s.port
	return nil
}

func (s staticSource) Name() string { return s.name }
func (s staticSource) Priority() int { return s.priority }

func TestLoader_CustomSourcesByPriority(t *testing.T) {
	var calls []string
	low := staticSource{name: "low", priority: 1, port: "1111", calls: &calls}
	high := staticSource{name: "high", priority: 10, port: "2222", calls: &calls}

	var cfg testConfig
	require.NoError(t, NewLoader(WithOnlyEnvironment(), WithSources(low, high)).Load(&cfg))

	assert.Equal(t, []string{"high", "low"}, calls)
	assert.Equal(t, "1111", cfg.Port)
}
