// Package cmd defines the pckbd command line surface.
package cmd

// LogConfig holds the shared logging flags.
type LogConfig struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"PCKBD_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console" env:"PCKBD_LOG_FILE"`
	RawFile string `help:"Write a raw scancode trace to this file" env:"PCKBD_LOG_RAW_FILE"`
}

// CLI is the root command structure parsed by kong.
type CLI struct {
	Log    LogConfig `embed:"" prefix:"log."`
	Config string    `help:"Path to a config file (JSON, YAML or TOML)" env:"PCKBD_CONFIG"`

	Replay  Replay        `cmd:"" help:"Decode a stream of scancodes or raw frame words"`
	Layouts Layouts       `cmd:"" help:"List the built-in keyboard layouts"`
	Cfg     ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
