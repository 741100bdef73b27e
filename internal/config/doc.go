// Package config provides configuration structures and utilities for txreport.
// It defines the HTTP server settings, the database location, report
// defaults and logging preferences, and loads them from a YAML file and the
// environment.
package config
