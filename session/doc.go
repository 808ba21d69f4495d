// Package session persists the last-entered parameters of each CLI mode
// to a UTF-8 JSON file, matching the original tool's
// settings/managing.py behaviour and the schema fixed in spec.md §6:
//
//	{ "<MODE_NAME>": { "<param>": <string|number|array>, "@ID": <int> }, ... }
//
// This is the one file format spec.md declares stable; everything else
// about the session cache (its location, whether it exists at all) is
// explicitly out of scope for compatibility.
package session
