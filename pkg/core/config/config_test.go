package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/encodingx"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.Level() != mdwlog.LevelWarn {
		t.Errorf("Default().Level() = %v; want %v", cfg.Level(), mdwlog.LevelWarn)
	}
	if cfg.LetterCase() != encodingx.Upper {
		t.Errorf("Default().LetterCase() = %v; want %v", cfg.LetterCase(), encodingx.Upper)
	}
	if cfg.Join.Delimiter != stringx.DefaultDelimiter {
		t.Errorf("Default().Join.Delimiter = %q; want %q", cfg.Join.Delimiter, stringx.DefaultDelimiter)
	}
	if cfg.Truncate.Symbol != stringx.EllipsisASCII {
		t.Errorf("Default().Truncate.Symbol = %q; want %q", cfg.Truncate.Symbol, stringx.EllipsisASCII)
	}
	if cfg.Base64URL.Padding {
		t.Error("Default().Base64URL.Padding = true; want false")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "TOML",
			file: "textkit.toml",
			content: `
[general]
log_level = "debug"

[hex]
case = "lower"

[base64url]
padding = true

[join]
end_delimiter = " and "

[placeholders]
prefix = "{{"
suffix = "}}"
`,
		},
		{
			name: "YAML",
			file: "textkit.yaml",
			content: `
general:
  log_level: debug
hex:
  case: lower
base64url:
  padding: true
join:
  end_delimiter: " and "
placeholders:
  prefix: "{{"
  suffix: "}}"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if cfg.Level() != mdwlog.LevelDebug {
				t.Errorf("Level() = %v; want %v", cfg.Level(), mdwlog.LevelDebug)
			}
			if cfg.LetterCase() != encodingx.Lower {
				t.Errorf("LetterCase() = %v; want %v", cfg.LetterCase(), encodingx.Lower)
			}
			if !cfg.Base64URL.Padding {
				t.Error("Base64URL.Padding = false; want true")
			}
			if cfg.Placeholders.Prefix != "{{" || cfg.Placeholders.Suffix != "}}" {
				t.Errorf("Placeholders = %+v; want {{ and }}", cfg.Placeholders)
			}
			// unset keys keep their defaults
			if cfg.General.LogFormat != "console" {
				t.Errorf("General.LogFormat = %q; want console", cfg.General.LogFormat)
			}
			if got := stringx.JoinSlice([]string{"a", "b", "c"}, cfg.JoinOptions()...); got != "a, b and c" {
				t.Errorf("JoinSlice with JoinOptions() = %q; want %q", got, "a, b and c")
			}
		})
	}
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    mdwerror.Code
	}{
		{"unknown key", "bad.toml", "[hex]\nletters = \"upper\"\n", mdwerror.CodeInvalidConfig},
		{"bad hex case", "bad.toml", "[hex]\ncase = \"title\"\n", mdwerror.CodeInvalidConfig},
		{"bad log level", "bad.yaml", "general:\n  log_level: loud\n", mdwerror.CodeInvalidConfig},
		{"bad log format", "bad.yaml", "general:\n  log_format: xml\n", mdwerror.CodeInvalidConfig},
		{"empty markers", "bad.toml", "[placeholders]\nprefix = \"\"\nsuffix = \" \"\n", mdwerror.CodeInvalidConfig},
		{"syntax", "bad.toml", "[general\n", mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Load() error = %v; want %s", err, tt.code)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Load() error = %v; want %s", err, mdwerror.CodeNotFound)
		}
		if got := mdwerror.GetCode(err).ExitCode(); got != 66 {
			t.Errorf("ExitCode() = %d; want 66", got)
		}
	})
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, "textkit.toml", "[hex]\ncase = \"lower\"\n")
	t.Setenv("TEXTKIT_HEX_CASE", "upper")
	t.Setenv("TEXTKIT_LOG_FORMAT", "json")
	t.Setenv("TEXTKIT_BASE64URL_PADDING", "true")
	t.Setenv("TEXTKIT_TRUNCATE_SYMBOL", stringx.EllipsisUnicode)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LetterCase() != encodingx.Upper {
		t.Errorf("LetterCase() = %v; want %v", cfg.LetterCase(), encodingx.Upper)
	}
	if cfg.General.LogFormat != "json" {
		t.Errorf("General.LogFormat = %q; want json", cfg.General.LogFormat)
	}
	if !cfg.Base64URL.Padding {
		t.Error("Base64URL.Padding = false; want true")
	}
	if cfg.Truncate.Symbol != stringx.EllipsisUnicode {
		t.Errorf("Truncate.Symbol = %q; want %q", cfg.Truncate.Symbol, stringx.EllipsisUnicode)
	}
}

func TestEnvOverrideInvalidBool(t *testing.T) {
	t.Setenv("TEXTKIT_BASE64URL_PADDING", "sometimes")

	_, err := Load(writeConfig(t, "textkit.toml", ""))
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("Load() error = %v; want %s", err, mdwerror.CodeInvalidConfig)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		path := writeConfig(t, "custom.yml", "hex:\n  case: lower\n")
		t.Setenv(EnvConfig, path)

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.LetterCase() != encodingx.Lower {
			t.Errorf("LetterCase() = %v; want %v", cfg.LetterCase(), encodingx.Lower)
		}
	})

	t.Run("discovered file", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "textkit.toml"), []byte("[general]\nlog_level = \"error\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv(EnvConfig, "")
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Chdir(dir)

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.Level() != mdwlog.LevelError {
			t.Errorf("Level() = %v; want %v", cfg.Level(), mdwlog.LevelError)
		}
	})

	t.Run("defaults without file", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Chdir(t.TempDir())

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if !reflect.DeepEqual(cfg, Default()) {
			t.Errorf("LoadFromEnv() = %+v; want defaults", cfg)
		}
	})
}

func TestLoadValues(t *testing.T) {
	path := writeConfig(t, "values.toml", "name = \"textkit\"\nversion = 2\n")

	values, err := LoadValues(path)
	if err != nil {
		t.Fatalf("LoadValues() error = %v", err)
	}
	if got := values.Keys(); !reflect.DeepEqual(got, []string{"name", "version"}) {
		t.Errorf("LoadValues() keys = %v; want [name version]", got)
	}

	got, err := stringx.SubstitutePlaceholders("${name} v${version}", values, "${", "}")
	if err != nil {
		t.Fatalf("SubstitutePlaceholders() error = %v", err)
	}
	if got != "textkit v2" {
		t.Errorf("SubstitutePlaceholders() = %q; want %q", got, "textkit v2")
	}
}
