package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type testHTTP struct {
	Host    string        `mapstructure:"host"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type testConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	AccessToken   string   `mapstructure:"access_token"`
	HTTP          testHTTP `mapstructure:"http"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestServiceConfigApplyDefaults(t *testing.T) {
	cfg := ServiceConfig{Name: "bitly"}
	cfg.ApplyDefaults()
	if cfg.Environment != "development" {
		t.Errorf("expected 'development', got %q", cfg.Environment)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging defaults applied, got level %q", cfg.Logging.Level)
	}
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr bool
		errMsg  string
	}{
		{"valid development", ServiceConfig{Name: "svc", Environment: "development"}, false, ""},
		{"valid production", ServiceConfig{Name: "svc", Environment: "production"}, false, ""},
		{"missing name", ServiceConfig{Environment: "production"}, true, "config.name is required"},
		{"invalid environment", ServiceConfig{Name: "svc", Environment: "invalid"}, true, "config.environment must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Logging.ApplyDefaults()
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", `
name: bitly
environment: staging
access_token: file-token
http:
  host: api-ssl.bitly.com
  timeout: 10s
logging:
  level: debug
`)

	var cfg testConfig
	if err := Load("cfgyaml", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "bitly" || cfg.Environment != "staging" {
		t.Errorf("unexpected service config %+v", cfg.ServiceConfig)
	}
	if cfg.AccessToken != "file-token" {
		t.Errorf("expected file token, got %q", cfg.AccessToken)
	}
	if cfg.HTTP.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.HTTP.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Logging.Level)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", `
http:
  host: api-ssl.bitly.com
  timeout: 10s
`)
	t.Setenv("CFGENV_HTTP_TIMEOUT", "5s")
	t.Setenv("CFGENV_ACCESS_TOKEN", "env-token")
	t.Setenv("HTTP_HOST", "ignored.example.com")

	var cfg testConfig
	if err := Load("cfgenv", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTP.Timeout != 5*time.Second {
		t.Errorf("expected env timeout 5s, got %v", cfg.HTTP.Timeout)
	}
	if cfg.AccessToken != "env-token" {
		t.Errorf("expected env token, got %q", cfg.AccessToken)
	}
	if cfg.HTTP.Host != "api-ssl.bitly.com" {
		t.Errorf("unprefixed variable must not apply, got host %q", cfg.HTTP.Host)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "CFGDOTENV_ACCESS_TOKEN=dotenv-token\n")
	t.Cleanup(func() { _ = os.Unsetenv("CFGDOTENV_ACCESS_TOKEN") })

	var cfg testConfig
	if err := Load("cfgdotenv", &cfg, WithConfigFile(filepath.Join(dir, "missing.yml")), WithEnvFile(envPath)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AccessToken != "dotenv-token" {
		t.Errorf("expected token from .env, got %q", cfg.AccessToken)
	}
}

func TestLoadCustomPrefix(t *testing.T) {
	t.Setenv("CUSTOMPFX_ACCESS_TOKEN", "custom")

	var cfg testConfig
	err := Load("cfgcustom", &cfg, WithConfigFile("/nonexistent/path.yml"), WithEnvPrefix("CUSTOMPFX_"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AccessToken != "custom" {
		t.Errorf("expected custom-prefixed token, got %q", cfg.AccessToken)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", "http: [unterminated")

	var cfg testConfig
	if err := Load("cfgbad", &cfg, WithConfigFile(configPath)); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/bitly/config.yml": true,
		"./.env":                 true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("bitly", LoaderConfig{})
	if files.ConfigFile != "./cmd/bitly/config.yml" {
		t.Errorf("expected config file at ./cmd/bitly/config.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected env file at ./.env, got %q", files.EnvFile)
	}
}

func TestResolverPrefersExplicitPaths(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{}}
	files := resolver.ResolveFiles("bitly", LoaderConfig{ConfigFile: "a.yml", EnvFile: "b.env"})
	if files.ConfigFile != "a.yml" || files.EnvFile != "b.env" {
		t.Errorf("unexpected files %+v", files)
	}
}

type mockFS struct {
	files  map[string]bool
	loaded []string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error {
	m.loaded = append(m.loaded, path)
	return nil
}

func TestLoadWithFileSystem(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"/virtual/.env": true}}

	var cfg testConfig
	err := Load("cfgvirtual", &cfg,
		WithFileSystem(fs),
		WithConfigFile("/virtual/config.yml"),
		WithEnvFile("/virtual/.env"),
	)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(fs.loaded) != 1 || fs.loaded[0] != "/virtual/.env" {
		t.Errorf("expected .env loaded through the filesystem, got %v", fs.loaded)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("HTTP_MAX_IDLE_CONNS_PER_HOST")
	want := "http.max_idle_conns_per_host"
	found := false
	for _, v := range got {
		if v == want {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q among %v", want, got)
	}

	if got := generateEnvKeyVariants("TOKEN"); len(got) != 1 || got[0] != "token" {
		t.Errorf("unexpected single-part variants %v", got)
	}
}
