// Package config provides layered application configuration for the batting
// statistics CLIs. Values are loaded from an optional YAML file and overridden
// by environment variables with the BATTING prefix, then validated. The
// package also resolves the working paths (data, reports, logs) relative to
// the executable directory.
package config
