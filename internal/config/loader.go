// Package config loads the guard policy for repoguard.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/fyrsmithlabs/repoguard/internal/policy"
)

// envPrefix namespaces repoguard environment overrides.
const envPrefix = "REPOGUARD_"

// Load loads the policy configuration.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (REPOGUARD_LIMITS_MAX_ADDED, ...)
//  2. YAML policy file
//  3. Compiled-in defaults (the standing public-repository policy)
//
// configPath selects the YAML file. When empty, ~/.config/repoguard/policy.yaml
// is used if it exists; an explicitly given path must exist. The returned
// config is validated and its patterns compiled.
func Load(configPath string) (*policy.Config, error) {
	k := koanf.New(".")

	explicit := configPath != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".config", "repoguard", "policy.yaml")
	}

	content, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load policy file %s: %w", configPath, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No user policy file; defaults apply.
	default:
		return nil, fmt.Errorf("failed to read policy file %s: %w", configPath, err)
	}

	// Override with environment variables.
	// REPOGUARD_LIMITS_MAX_ADDED -> limits.max_added
	// REPOGUARD_EXCEPTION_CONTACT -> exception_contact
	if err := k.Load(env.Provider(envPrefix, ".", transformEnv), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := policy.DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal policy: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("policy validation failed: %w", err)
	}

	return cfg, nil
}

// transformEnv maps an environment variable name to a koanf key. The limits
// section is the only nested config; everything else is a top-level field
// whose name keeps its underscores.
func transformEnv(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if rest, ok := strings.CutPrefix(lower, "limits_"); ok {
		return "limits." + rest
	}
	return lower
}
