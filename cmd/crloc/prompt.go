package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
)

// askString prompts for a single line of text, pre-filled with def.
func askString(title, def string) (string, error) {
	v := def
	input := huh.NewInput().Title(title).Placeholder(def).Value(&v)
	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return "", fmt.Errorf("prompt %q: %w", title, err)
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

// askFloat prompts for a float64, defaulting to def if left blank.
func askFloat(title string, def float64) (float64, error) {
	s, err := askString(title, strconv.FormatFloat(def, 'g', -1, 64))
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("prompt %q: %w", title, err)
	}
	return v, nil
}

// askInt prompts for an int, defaulting to def if left blank.
func askInt(title string, def int) (int, error) {
	s, err := askString(title, strconv.Itoa(def))
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("prompt %q: %w", title, err)
	}
	return v, nil
}

// askBool prompts for a yes/no confirmation, defaulting to def.
func askBool(title string, def bool) (bool, error) {
	v := def
	confirm := huh.NewConfirm().Title(title).Affirmative("Yes").Negative("No").Value(&v)
	if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
		return def, fmt.Errorf("prompt %q: %w", title, err)
	}
	return v, nil
}
