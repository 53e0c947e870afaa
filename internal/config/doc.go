// Package config loads the window manager's runtime configuration.
//
// A configuration is resolved from an ordered chain of candidate files
// (explicit override, user config locations, last-known-good backup,
// system fallback), parsed section by section into a Config aggregate,
// and backed up to the user data directory when a user-owned file
// parses cleanly. Section parsers are independently fallible: a bad
// rule, binding, or theme field is skipped and counted, never fatal.
package config
