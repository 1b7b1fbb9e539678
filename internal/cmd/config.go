package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"pckbd/internal/configpaths"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file for a specific command. The
// template is built by reflecting over the command struct, so new flags
// show up without touching this code.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"replay"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output  string `help:"Destination file path (defaults to the user config dir)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

func (c *ConfigInit) Run() error {
	var root map[string]any
	switch c.Command {
	case "replay":
		root = templateFromStruct(reflect.TypeOf(Replay{}))
	default:
		return errors.New("unknown command; expected 'replay'")
	}

	// Default into the user config dir, where startup config discovery
	// will find the file again.
	dest := c.Output
	if dest == "" {
		var err error
		if dest, err = configpaths.DefaultNamedConfigPath(c.Command, c.Format); err != nil {
			dest = c.Command + "." + configpaths.FormatExt(c.Format)
		}
	}

	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("%s exists; use --force to overwrite", dest)
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	var data []byte
	var err error
	switch configpaths.FormatExt(c.Format) {
	case "yaml":
		data, err = yaml.Marshal(root)
	case "toml":
		data, err = toml.Marshal(root)
	default:
		data, err = json.MarshalIndent(root, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

// templateFromStruct walks a kong command struct and collects its flags
// with their default values. Positional arguments are skipped; embedded
// flag groups become nested maps keyed by their prefix.
func templateFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if _, ok := f.Tag.Lookup("arg"); ok {
			continue
		}

		if _, ok := f.Tag.Lookup("embed"); ok {
			sub := templateFromStruct(f.Type)
			if name := strings.TrimSuffix(f.Tag.Get("prefix"), "."); name != "" {
				out[name] = sub
			} else {
				for k, v := range sub {
					out[k] = v
				}
			}
			continue
		}

		if val := fieldDefault(f.Type, f.Tag.Get("default")); val != nil {
			out[flagName(f.Name)] = val
		}
	}
	return out
}

// fieldDefault renders a flag's default for the field kinds this CLI
// actually uses: strings, bools and ints.
func fieldDefault(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return def // may be empty
	case reflect.Bool:
		b, err := strconv.ParseBool(def)
		if err != nil {
			return false
		}
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(def, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case reflect.Struct:
		return templateFromStruct(t)
	default:
		return nil
	}
}

// flagName lowercases the first rune, matching kong's default flag naming
// for single-word fields.
func flagName(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'A' && r[0] <= 'Z' {
		r[0] += 'a' - 'A'
	}
	return string(r)
}
