// Package config loads apacite settings from a yaml file, APACITE_*
// environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iw2rmb/apacite/citation"
	"github.com/iw2rmb/apacite/clipboard"
)

const (
	name      = "apacite"
	envPrefix = "APACITE"
)

var (
	ErrInvalidPrint = errors.New("invalid print mode")
	ErrInvalidMIME  = errors.New("invalid clipboard mime type")
)

// Print selects what is echoed to stdout after the form closes.
type Print string

const (
	PrintNone Print = "none"
	PrintText Print = "text"
	PrintYAML Print = "yaml"
)

func ParsePrint(s string) (Print, error) {
	switch p := Print(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PrintNone, nil
	case PrintNone, PrintText, PrintYAML:
		return p, nil
	default:
		return PrintNone, fmt.Errorf("%w: %q", ErrInvalidPrint, s)
	}
}

type Clipboard struct {
	Enabled bool
	MIME    string
}

type UI struct {
	AltScreen bool
	NoColor   bool
	Mouse     bool
}

// Config is the resolved application configuration.
type Config struct {
	Lang      citation.Lang
	Type      citation.Type
	Print     Print
	Clipboard Clipboard
	UI        UI

	Debug    bool
	DebugLog string

	// File is the config file that was read, or "" when none was found.
	File string
}

// flagKeys maps flag names to config keys. Only flags present in the set and
// changed by the user override lower layers.
var flagKeys = map[string]string{
	"lang":       "lang",
	"type":       "type",
	"print":      "print",
	"alt-screen": "ui.alt_screen",
	"no-color":   "ui.no_color",
	"debug":      "debug",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("lang", citation.English.Code())
	v.SetDefault("type", "")
	v.SetDefault("print", string(PrintNone))
	v.SetDefault("clipboard.enabled", true)
	v.SetDefault("clipboard.mime", clipboard.MIMEHTML)
	v.SetDefault("ui.alt_screen", false)
	v.SetDefault("ui.no_color", false)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("debug", false)
	v.SetDefault("debug_log", "debug.log")
}

// Load resolves the configuration. An explicit file must exist; otherwise
// apacite.yaml is looked up in the working directory and in
// ~/.config/apacite, and a missing file is not an error. flags may be nil.
func Load(file string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", name))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return Config{}, err
		}
	}
	return decode(v)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		f := flags.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	if f := flags.Lookup("no-clipboard"); f != nil && f.Changed {
		off, err := flags.GetBool("no-clipboard")
		if err != nil {
			return fmt.Errorf("read flag no-clipboard: %w", err)
		}
		if off {
			v.Set("clipboard.enabled", false)
		}
	}
	return nil
}

func decode(v *viper.Viper) (Config, error) {
	lang, err := citation.ParseLang(v.GetString("lang"))
	if err != nil {
		return Config{}, err
	}
	typ, err := citation.ParseType(v.GetString("type"))
	if err != nil {
		return Config{}, err
	}
	pm, err := ParsePrint(v.GetString("print"))
	if err != nil {
		return Config{}, err
	}
	mime := strings.TrimSpace(v.GetString("clipboard.mime"))
	if mime != clipboard.MIMEHTML && mime != clipboard.MIMEPlain {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidMIME, mime)
	}

	return Config{
		Lang:  lang,
		Type:  typ,
		Print: pm,
		Clipboard: Clipboard{
			Enabled: v.GetBool("clipboard.enabled"),
			MIME:    mime,
		},
		UI: UI{
			AltScreen: v.GetBool("ui.alt_screen"),
			NoColor:   v.GetBool("ui.no_color"),
			Mouse:     v.GetBool("ui.mouse"),
		},
		Debug:    v.GetBool("debug"),
		DebugLog: v.GetString("debug_log"),
		File:     v.ConfigFileUsed(),
	}, nil
}
