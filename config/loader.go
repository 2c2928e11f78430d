package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/bitly/logger"
)

// FileSystem abstracts file lookups for testing.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem on the local disk.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver finds config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns explicit paths if provided, otherwise searches the
// standard locations for name.
func (r *Resolver) ResolveFiles(name string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.firstExisting(configSearchPaths(name))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.firstExisting(envSearchPaths(name))
	}
	return resolved
}

func (r *Resolver) firstExisting(paths []string) string {
	for _, path := range paths {
		if r.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

func configSearchPaths(name string) []string {
	return []string{
		fmt.Sprintf("./cmd/%s/config.yml", name),
		fmt.Sprintf("../cmd/%s/config.yml", name),
		fmt.Sprintf("../../cmd/%s/config.yml", name),
		"./config/config.yml",
		"../config/config.yml",
		"./config.yml",
		fmt.Sprintf("%s/.config/%s/config.yml", os.Getenv("HOME"), name),
	}
}

func envSearchPaths(name string) []string {
	var paths []string
	for _, file := range []string{".env." + name, ".env"} {
		paths = append(paths,
			fmt.Sprintf("./cmd/%s/%s", name, file),
			fmt.Sprintf("./config/%s", file),
			fmt.Sprintf("./%s", file),
			fmt.Sprintf("../%s", file),
			fmt.Sprintf("../../%s", file),
		)
	}
	return paths
}

// LoaderConfig holds dependencies and optional overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
	EnvPrefix  string // Only variables with this prefix are bound; stripped before mapping
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvPrefix overrides the environment prefix. The default is the
// upper-cased name followed by an underscore.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvPrefix = prefix }
}

// Load reads configuration for name into cfg. Sources are applied in order:
// config.yml, then environment (after loading .env), so BITLY_HTTP_TIMEOUT
// overrides http.timeout from the file when name is "bitly".
func Load(name string, cfg any, opts ...LoaderOption) error {
	lc := LoaderConfig{EnvPrefix: strings.ToUpper(name) + "_"}
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(name, lc)

	return loadFromResolvedFiles(name, cfg, files, lc)
}

func loadFromResolvedFiles(name string, cfg any, files ResolvedFiles, lc LoaderConfig) error {
	v := viper.New()

	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", files.ConfigFile, err)
		}
	}

	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			logger.Warn("failed to load env file", logger.Fields("file", files.EnvFile, logger.FieldError, err.Error()))
		}
	}
	bindEnvVars(v, lc.EnvPrefix, os.Environ())

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config for %s: %w", name, err)
	}
	return nil
}

// bindEnvVars maps PREFIX_A_B_C variables onto every nested key variant.
func bindEnvVars(v *viper.Viper, prefix string, environ []string) {
	for _, env := range environ {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if prefix != "" {
			trimmed, found := strings.CutPrefix(key, prefix)
			if !found || trimmed == "" {
				continue
			}
			key = trimmed
		}
		for _, variant := range generateEnvKeyVariants(key) {
			v.Set(variant, value)
		}
	}
}

// generateEnvKeyVariants creates the possible key variants for an env var.
//
//	HTTP_TIMEOUT -> [http_timeout, http.timeout]
//	HTTP_MAX_IDLE_CONNS_PER_HOST -> [http_max_idle_conns_per_host, http.max.idle.conns.per.host, http.max_idle_conns_per_host, ...]
func generateEnvKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")

	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.ReplaceAll(lowerKey, "_", "."),
	}

	for i := 1; i < len(parts); i++ {
		prefix := strings.Join(parts[:i], ".")
		suffix := strings.Join(parts[i:], "_")
		variants = append(variants, prefix+"."+suffix)
	}

	return removeDuplicates(variants)
}

func removeDuplicates(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}
