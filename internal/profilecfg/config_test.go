package profilecfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "profile.toml", `
[run]
rounds = 2
entities = 500

[profile]
mode = "allocs"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Run.Rounds)
	require.Equal(t, 500, cfg.Run.Entities)
	require.Equal(t, 10000, cfg.Run.Iters, "unset keys keep their defaults")
	require.Equal(t, "allocs", cfg.Profile.Mode)
	require.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "profile.yaml", `
run:
  iters: 3
profile:
  mode: mem
  path: out
logging:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Run.Iters)
	require.Equal(t, 50, cfg.Run.Rounds)
	require.Equal(t, ProfileConfig{Mode: "mem", Path: "out"}, cfg.Profile)
	require.Equal(t, LoggingConfig{Level: "debug", Format: "json"}, cfg.Logging)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "bad.toml", "run = ["))
	require.ErrorContains(t, err, "parse config")

	_, err = Load(writeFile(t, "bad.yml", "run:\n  rounds: 0\nprofile:\n  mode: trace\n"))
	require.ErrorContains(t, err, "run.rounds")
	require.ErrorContains(t, err, "profile.mode")
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	logger, err = NewLogger(LoggingConfig{Level: "nonsense", Format: "console"})
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestStartNone(t *testing.T) {
	p := Start(ProfileConfig{Mode: "none"})
	require.NotNil(t, p)
	p.Stop()
}
