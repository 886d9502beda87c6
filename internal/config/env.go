package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFiles are read from the project root when no env file is given
var DefaultEnvFiles = []string{".env", ".env.local"}

// Env is an explicit snapshot of environment variables.
// The assembler only ever reads from an Env, never from the process.
type Env map[string]string

// EnvFromOS snapshots the current process environment
func EnvFromOS() Env {
	return EnvFromPairs(os.Environ())
}

// EnvFromPairs builds an Env from KEY=VALUE pairs. Pairs without '=' are skipped.
func EnvFromPairs(pairs []string) Env {
	env := make(Env, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Get returns the value for key, or "" when absent
func (e Env) Get(key string) string {
	return e[key]
}

// Lookup returns the value for key and whether it was present
func (e Env) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// Merge returns a new Env with other laid over e
func (e Env) Merge(other Env) Env {
	merged := make(Env, len(e)+len(other))
	for k, v := range e {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// LoadEnv reads env files relative to projectRoot and lays base on top of them,
// so variables already present in base are never overridden. Among the files, the
// first one to define a key wins. Missing files are skipped. The process
// environment is never modified.
//
// godotenv expands ${VAR} in unquoted and double-quoted values from keys defined
// earlier in the same file; single-quoted values and \${VAR} stay literal.
func LoadEnv(projectRoot string, base Env, files ...string) (Env, []string, error) {
	if len(files) == 0 {
		files = DefaultEnvFiles
	}

	fromFiles := Env{}
	var loaded []string
	for _, file := range files {
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectRoot, file)
		}

		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		values, err := godotenv.Read(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		for k, v := range values {
			if _, exists := fromFiles[k]; !exists {
				fromFiles[k] = v
			}
		}
		loaded = append(loaded, path)
	}

	return fromFiles.Merge(base), loaded, nil
}
