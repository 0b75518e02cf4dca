// Package config provides loading and environment overlay for trawl
// configuration. It exposes a Default() baseline, file loading for JSON and
// YAML, and a TRAWL_* environment overlay. Precedence is defaults, then
// file, then environment, with explicit command-line flags applied last by
// the CLI layer.
//
// Example:
//
//	cfg := config.Default()
//	if path := config.DefaultConfigPath(); path != "" {
//	    if fileCfg, err := config.Load(path); err == nil {
//	        cfg = fileCfg
//	    }
//	}
//	config.FromEnv(&cfg)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
