package domain

// CheatEntry represents a single cheatsheet record
type CheatEntry struct {
	Command     string `toml:"command"`
	Category    string `toml:"category"`
	Description string `toml:"description"`
}

// Dataset is the ordered, read-only collection of entries.
// Entries are identified by their position.
type Dataset []CheatEntry
