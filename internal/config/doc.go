// Package config loads terminput settings.
//
// Configuration merges three layers, later layers overriding earlier:
//
//  1. Built-in defaults
//  2. A TOML file (optional)
//  3. TERMINPUT_* environment variables
//
// Settings cover decoder limits (pending-byte cap), source behavior
// (escape timeout, mouse/paste/focus reporting), logging, the quit key,
// and the transcript path.
package config
