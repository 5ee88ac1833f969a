package config

import (
	"os"
	"testing"

	"fivecarddraw-server/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("FCD_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("FCD_LOG_LEVEL", "warn")()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":9090", cfg.TCP.Addr)
	a.Equal("127.0.0.1:5001", cfg.HTTP.Addr)
	a.True(cfg.HTTP.DisableAccessLogs)
	a.Equal(int64(42), cfg.Deck.Seed)
	a.Equal("warn", cfg.Log.Level)

	// ensure that it's only loaded once
	_ = os.Setenv("FCD_LOG_LEVEL", "error")
	// ensure we aren't using a pointer
	cfg.Log.Level = "bad"
	cfg = Instance()
	a.Equal("warn", cfg.Log.Level)
}

func TestDefaults(t *testing.T) {
	defer util.SetEnv("FCD_CONFIG_FILE", "testdata/missing.yaml")()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, ":8080", cfg.TCP.Addr)
	assert.Equal(t, ":5000", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.HTTP.DisableAccessLogs)
	assert.Equal(t, int64(0), cfg.Deck.Seed)
}

func TestEnvOverrides(t *testing.T) {
	defer util.SetEnv("FCD_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("FCD_TCP_ADDR", ":7000")()
	defer util.SetEnv("FCD_HTTP_DISABLE_ACCESS_LOGS", "true")()
	defer util.SetEnv("FCD_DECK_SEED", "7")()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal(":7000", cfg.TCP.Addr)
	a.True(cfg.HTTP.DisableAccessLogs)
	a.Equal(int64(7), cfg.Deck.Seed)
}

func TestLoadFile(t *testing.T) {
	a := assert.New(t)

	a.NoError(LoadFile("testdata/config.yaml"))
	a.Equal(":9090", Instance().TCP.Addr)

	a.Error(LoadFile("testdata/missing.yaml"))
	a.Error(LoadFile("testdata/invalid.yaml"))

	defer util.SetEnv("FCD_DECK_SEED", "seven")()
	a.Error(LoadFile("testdata/config.yaml"))
}
