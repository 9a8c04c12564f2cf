// Package cmd holds the keywire command line surface. Each command is a
// Kong struct; configuration files, environment variables and flags all
// resolve into the same fields.
package cmd

// LogConfig is shared logging configuration, embedded under the log.
// prefix.
type LogConfig struct {
	Level   string `help:"Log level (trace|debug|info|warn|error)" default:"info" env:"KEYWIRE_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console" env:"KEYWIRE_LOG_FILE"`
	RawFile string `help:"Capture raw scan code bytes to this file" env:"KEYWIRE_LOG_RAW_FILE"`
}

// CLI is the root command structure parsed by Kong.
type CLI struct {
	Log LogConfig `embed:"" prefix:"log."`

	Config string `help:"Path to config file (json/yaml/toml)" env:"KEYWIRE_CONFIG"`

	Decode  Decode        `cmd:"" help:"Decode scan code bytes or serial words into key events and text"`
	Keys    Keys          `cmd:"" help:"List key codes, optionally with the glyphs a layout assigns"`
	Layouts Layouts       `cmd:"" help:"List built-in keyboard layouts"`
	Conf    ConfigCommand `cmd:"" name:"config" help:"Configuration file utilities"`
}
