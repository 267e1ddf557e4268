package logger

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

type Config struct {
	Level       string `envconfig:"LOGGER_LEVEL" default:"info"`
	Format      string `envconfig:"LOGGER_FORMAT" default:"json"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"looksrare-integration"`
	WithSource  bool   `envconfig:"LOGGER_WITH_SOURCE" default:"false"`
}

func (c *Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, c,
		validation.Field(&c.Level, validation.By(func(value interface{}) error {
			level, _ := value.(string)
			return validation.Validate(strings.ToLower(level), validation.In(levelNames()...))
		})),
		validation.Field(&c.Format, validation.By(func(value interface{}) error {
			format, _ := value.(string)
			return validation.Validate(strings.ToLower(format), validation.In(FormatJSON, FormatText))
		})),
		validation.Field(&c.ServiceName, validation.Required),
	)
}
