// Package config loads and merges pylyze configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (PYLYZE_FORMAT, PYLYZE_FAIL_ON)
//  3. Config file ($XDG_CONFIG_HOME/pylyze/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write the config file, and
// [SetField] to update a single key.
package config
