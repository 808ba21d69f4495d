package main

import (
	"github.com/chainrecurrent/locator/session"
)

const (
	modeArbitraryMapping = "ARBITRARY_MAPPING"
	modeCRSetLocalizing  = "CR_SET_LOCALIZING"

	idArbitraryMapping = 1
	idCRSetLocalizing  = 2
)

func resolveSessionPath() string {
	if sessionPath != "" {
		return sessionPath
	}
	return session.DefaultPath
}

// loadMode returns the stored parameters for mode, or an empty map if
// there is no prior session (or the mode was never run before).
func loadMode(mode string) map[string]any {
	s, err := session.Load(resolveSessionPath())
	if err != nil {
		return map[string]any{}
	}
	entry, ok := s[mode]
	if !ok {
		return map[string]any{}
	}
	return entry.Params
}

// saveMode persists params under mode, preserving every other mode
// already present in the session file.
func saveMode(mode string, id int, params map[string]any) error {
	path := resolveSessionPath()
	s, err := session.Load(path)
	if err != nil {
		return err
	}
	if s == nil {
		s = session.Session{}
	}
	s[mode] = session.ModeEntry{ID: id, Params: params}
	return s.Save(path)
}

func stringParam(params map[string]any, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func floatParam(params map[string]any, key string, def float64) float64 {
	if v, ok := params[key].(float64); ok {
		return v
	}
	return def
}

func intParam(params map[string]any, key string, def int) int {
	if v, ok := params[key].(float64); ok {
		return int(v)
	}
	return def
}

func boolParam(params map[string]any, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
