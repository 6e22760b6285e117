package config

import (
	"github.com/pseudomuto/sqlpretty/pkg/format"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	Load,
	func(c *Config) *format.Formatter {
		return c.GetFormatter()
	},
))
