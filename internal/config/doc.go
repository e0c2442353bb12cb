// Package config loads scanline's TOML configuration.
//
// Configuration is optional: every setting has a default, a missing config
// file loads the defaults, and a present file overrides only the fields it
// names. Validation errors identify the offending field.
package config
