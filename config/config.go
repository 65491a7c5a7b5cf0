package config

import (
	"time"

	"github.com/jsphweid/midimml/model"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is read from MIDIMML_* environment variables.
type Config struct {
	OutDir   string `split_words:"true" default:"./out"`
	Addr     string `default:":8080"`
	LogLevel string `split_words:"true" default:"info"`

	AllowedOrigins []string `split_words:"true" default:"*"`

	// An empty endpoint keeps stored conversions in memory.
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`
	DynamoDBRegion   string `envconfig:"DYNAMODB_REGION" default:"localhost"`
	DynamoDBTable    string `envconfig:"DYNAMODB_TABLE" default:"midimml-songs"`

	WatchInterval time.Duration `split_words:"true" default:"500ms"`
	Debounce      time.Duration `default:"300ms"`

	AutoBootVelocity bool  `split_words:"true" default:"true"`
	VelocityMin      uint8 `split_words:"true" default:"0"`
	VelocityMax      uint8 `split_words:"true" default:"15"`
}

func ProvideConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("midimml", &cfg); err != nil {
		return cfg, errors.Wrap(err, "reading environment")
	}
	return cfg, nil
}

// SongOptions returns the conversion options the environment asks for.
func (c Config) SongOptions() model.SongOptions {
	return model.SongOptions{
		AutoBootVelocity: c.AutoBootVelocity,
		VelocityMin:      c.VelocityMin,
		VelocityMax:      c.VelocityMax,
	}
}
