package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/helloworld/web-app/internal/validators"
)

const (
	// EnvPrefix is prepended to every settings key.
	EnvPrefix = "HELLO_"
	// DefaultEnvFile is read from the working directory when present.
	DefaultEnvFile = ".env"

	defaultHost         = "127.0.0.1"
	defaultPort         = 8000
	defaultDebug        = true
	defaultAppName      = "Hello World Web App"
	defaultAppVersion   = "0.1.0"
	defaultTemplatesDir = "templates"
)

const (
	keyHost         = "HOST"
	keyPort         = "PORT"
	keyDebug        = "DEBUG"
	keyAppName      = "APP_NAME"
	keyAppVersion   = "APP_VERSION"
	keyTemplatesDir = "TEMPLATES_DIR"
)

// Settings holds the application configuration.
type Settings struct {
	Host         string `json:"host"`
	Port         int    `json:"port" validate:"min=1,max=65535"`
	Debug        bool   `json:"debug"`
	AppName      string `json:"app_name"`
	AppVersion   string `json:"app_version"`
	TemplatesDir string `json:"templates_dir"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	return Settings{
		Host:         defaultHost,
		Port:         defaultPort,
		Debug:        defaultDebug,
		AppName:      defaultAppName,
		AppVersion:   defaultAppVersion,
		TemplatesDir: defaultTemplatesDir,
	}
}

// Load reads DefaultEnvFile (if it exists) and the process environment.
func Load() (*Settings, error) {
	return LoadFile(DefaultEnvFile)
}

// LoadFile is Load with an explicit env file. A missing file is not an
// error; process environment variables win over values from the file.
func LoadFile(path string) (*Settings, error) {
	values, err := readEnvFile(path)
	if err != nil {
		return nil, err
	}
	for key, value := range prefixed(os.Environ()) {
		values[key] = value
	}

	s := Defaults()
	if err := s.apply(values); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the field constraints.
func (s Settings) Validate() error {
	return validators.ValidateStruct(s)
}

// Addr returns the host:port listen address.
func (s Settings) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// URL returns the base URL the server is reachable at.
func (s Settings) URL() string {
	return "http://" + s.Addr()
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	raw, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	pairs := make([]string, 0, len(raw))
	for k, v := range raw {
		pairs = append(pairs, k+"="+v)
	}
	return prefixed(pairs), nil
}

// prefixed picks the KEY=value pairs carrying EnvPrefix and returns them
// keyed by the upper-cased name without the prefix. An exactly upper-cased
// variable takes precedence over other spellings of the same name.
func prefixed(environ []string) map[string]string {
	out := make(map[string]string)
	exact := make(map[string]bool)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || len(key) <= len(EnvPrefix) || !strings.EqualFold(key[:len(EnvPrefix)], EnvPrefix) {
			continue
		}
		name := strings.ToUpper(key[len(EnvPrefix):])
		isExact := key == EnvPrefix+name
		if exact[name] && !isExact {
			continue
		}
		out[name] = value
		exact[name] = exact[name] || isExact
	}
	return out
}

// apply overlays values onto s. Unknown keys are ignored.
func (s *Settings) apply(values map[string]string) error {
	if v, ok := values[keyHost]; ok {
		s.Host = v
	}
	if v, ok := values[keyPort]; ok {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return validators.NewValidationError("port", fmt.Sprintf("must be an integer (got: %q)", v))
		}
		s.Port = port
	}
	if v, ok := values[keyDebug]; ok {
		debug, err := parseBool(v)
		if err != nil {
			return validators.NewValidationError("debug", fmt.Sprintf("must be a boolean (got: %q)", v))
		}
		s.Debug = debug
	}
	if v, ok := values[keyAppName]; ok {
		s.AppName = v
	}
	if v, ok := values[keyAppVersion]; ok {
		s.AppVersion = v
	}
	if v, ok := values[keyTemplatesDir]; ok {
		s.TemplatesDir = v
	}
	return nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", v)
}
