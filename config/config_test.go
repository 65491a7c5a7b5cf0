package config

import (
	"testing"
	"time"

	"github.com/jsphweid/midimml/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := ProvideConfig()
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("./out", cfg.OutDir)
	assert.Equal(":8080", cfg.Addr)
	assert.Equal([]string{"*"}, cfg.AllowedOrigins)
	assert.Equal("", cfg.DynamoDBEndpoint)
	assert.Equal("midimml-songs", cfg.DynamoDBTable)
	assert.Equal(500*time.Millisecond, cfg.WatchInterval)
	assert.Equal(model.DefaultSongOptions(), cfg.SongOptions())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("MIDIMML_OUT_DIR", "/tmp/mml")
	t.Setenv("MIDIMML_AUTO_BOOT_VELOCITY", "false")
	t.Setenv("MIDIMML_VELOCITY_MIN", "8")
	t.Setenv("MIDIMML_DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("MIDIMML_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := ProvideConfig()
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("/tmp/mml", cfg.OutDir)
	assert.Equal("http://localhost:8000", cfg.DynamoDBEndpoint)
	assert.Equal([]string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(model.SongOptions{AutoBootVelocity: false, VelocityMin: 8, VelocityMax: 15}, cfg.SongOptions())
}

func TestBadValue(t *testing.T) {
	t.Setenv("MIDIMML_VELOCITY_MAX", "loud")
	_, err := ProvideConfig()
	assert.Error(t, err)
}
