package config

import (
	"encoding/json"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultAPIBaseURL points at the deployed backend. The original client had
// this host hard-coded in some files and localhost in others; here it is one
// value injected at startup and overridable per invocation.
const DefaultAPIBaseURL = "https://reframing-app-api.onrender.com"

// Config holds the client configuration persisted in ~/.reframe/config.json.
type Config struct {
	APIBaseURL string `json:"apiBaseUrl,omitempty"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.APIBaseURL,
			validation.Required.Error("api base url is required"),
			validation.By(validURL),
		),
	)
}

func validURL(v any) error {
	s, _ := v.(string)
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("must be an absolute http(s) url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must be an absolute http(s) url")
	}
	return nil
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.reframe).
	if v := strings.TrimSpace(os.Getenv("REFRAME_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".reframe"), nil
}

func path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func Load() (*Config, error) {
	p, err := path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(cfg *Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(filepath.Dir(p), "config.json.*.tmp", p, b, 0o644)
}

// Resolve picks the effective config: flag > REFRAME_API_URL > config.json >
// default, then validates it.
func Resolve(flagURL string) (Config, error) {
	cfg := Config{APIBaseURL: strings.TrimSpace(flagURL)}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = strings.TrimSpace(os.Getenv("REFRAME_API_URL"))
	}
	if cfg.APIBaseURL == "" {
		if saved, err := Load(); err == nil {
			cfg.APIBaseURL = strings.TrimSpace(saved.APIBaseURL)
		}
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// atomicWriteFile writes via a unique temp file + rename so concurrent
// invocations (CLI + TUI) cannot interleave partial writes.
func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
