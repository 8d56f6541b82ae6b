// Package config loads runtime settings for the TechKatta CLI from three
// layered sources: built-in defaults (plus the TECHKATTA_API_URL
// environment variable), an optional JSON file given via -c/-config, and
// command-line flags. Later sources override earlier ones.
package config
