// Package cheats holds the compiled-in Vim cheatsheet.
//
// The entries live in vim.toml, embedded into the binary at build time and
// decoded once on first use. The decoded Dataset is shared read-only by the
// rest of the program.
package cheats

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"vimbo/internal/domain"
)

//go:embed vim.toml
var vimTOML []byte

// ErrEmptyDataset is returned when a cheatsheet document has no entries
var ErrEmptyDataset = errors.New("cheatsheet has no entries")

type document struct {
	Entries []domain.CheatEntry `toml:"entry"`
}

var defaultDataset = sync.OnceValues(func() (domain.Dataset, error) {
	return Parse(vimTOML)
})

// Default returns the embedded Vim cheatsheet
func Default() (domain.Dataset, error) {
	return defaultDataset()
}

// Parse decodes a TOML cheatsheet document into a Dataset.
// Every entry needs a command and a category.
func Parse(data []byte) (domain.Dataset, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse cheatsheet: %w", err)
	}
	if len(doc.Entries) == 0 {
		return nil, ErrEmptyDataset
	}

	for i, e := range doc.Entries {
		if strings.TrimSpace(e.Command) == "" {
			return nil, fmt.Errorf("entry %d: missing command", i)
		}
		if strings.TrimSpace(e.Category) == "" {
			return nil, fmt.Errorf("entry %d (%s): missing category", i, e.Command)
		}
	}

	return domain.Dataset(doc.Entries), nil
}
