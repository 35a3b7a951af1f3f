package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/alecthomas/kong"

	"github.com/Alia5/padclick/internal/configpaths"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file holding the dispatch defaults.
type ConfigInit struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output string `help:"Destination file path (defaults to padclick.<format> in the user config directory)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// configTemplate mirrors the flags a configuration file may preset.
type configTemplate struct {
	Log          LogConfig `embed:"" prefix:"log-"`
	InputOptions `embed:""`
}

// Run generates a configuration template dynamically via reflection of the command structs and tags.
func (c *ConfigInit) Run(kctx *kong.Context) error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	root := buildMapFromStruct(reflect.TypeOf(configTemplate{}), Vars())
	if format == "json" {
		// kong.JSON only descends into objects on "." in a flag name.
		root = flattenKeys(root, "", "_")
	}

	dest := c.Output
	if dest == "" {
		var err error
		if dest, err = configpaths.DefaultConfigPath(format); err != nil {
			dest = "padclick." + configpaths.Ext(format)
		}
	}

	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	data, err := marshalTemplate(format, root)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(kctx.Stdout, "wrote %s\n", dest)
	return nil
}

func marshalTemplate(format string, root map[string]any) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(root)
	case "toml":
		return toml.Marshal(root)
	default:
		return json.MarshalIndent(root, "", "  ")
	}
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// flagName returns the name kong derives for a struct field: the name tag,
// or the field name split into lower-case words joined by hyphens.
func flagName(f reflect.StructField) string {
	if name := f.Tag.Get("name"); name != "" {
		return name
	}
	var b strings.Builder
	r := []rune(f.Name)
	for i, c := range r {
		if i > 0 && unicode.IsUpper(c) && (unicode.IsLower(r[i-1]) || i+1 < len(r) && unicode.IsLower(r[i+1])) {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(c))
	}
	return b.String()
}

// flattenKeys joins nested sections into single keys, spelling hyphens as
// sep.
func flattenKeys(m map[string]any, prefix, sep string) map[string]any {
	out := map[string]any{}
	for k, v := range m {
		key := strings.ReplaceAll(prefix+k, "-", sep)
		if sub, ok := v.(map[string]any); ok {
			for sk, sv := range flattenKeys(sub, prefix+k+"-", sep) {
				out[sk] = sv
			}
			continue
		}
		out[key] = v
	}
	return out
}

// buildMapFromStruct renders the kong flags of t, with their defaults, as
// the nested map a configuration file would contain. Keys are kong flag
// names; an embed prefix becomes a section.
func buildMapFromStruct(t reflect.Type, vars kong.Vars) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("kong") == "-" {
			continue
		}

		if _, ok := f.Tag.Lookup("embed"); ok {
			prefix := f.Tag.Get("prefix")
			name := strings.TrimRight(prefix, ".-")
			sub := buildMapFromStruct(f.Type, vars)
			if name != "" {
				out[name] = sub
			} else {
				for k, v := range sub {
					out[k] = v
				}
			}
			continue
		}

		key := flagName(f)
		def := interpolate(f.Tag.Get("default"), vars)
		val := defaultValueForField(f.Type, def, vars)
		if val != nil {
			out[key] = val
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string, vars kong.Vars) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == reflect.TypeOf(time.Duration(0)) {
		if def == "" {
			return "0s"
		}
		return def
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	case reflect.Struct:
		return buildMapFromStruct(t, vars)
	default:
		return nil
	}
}

// interpolate resolves ${name} references the way kong does for defaults.
func interpolate(s string, vars kong.Vars) string {
	for k, v := range vars {
		s = strings.ReplaceAll(s, "${"+k+"}", v)
	}
	return s
}
