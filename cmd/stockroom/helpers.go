// Shared helpers for stockroom CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/stockroom/internal/xmlstore"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// openStore resolves the data document path and opens the store over it.
func openStore() (*xmlstore.Store, error) {
	dataPath, err := resolveDataPath()
	if err != nil {
		return nil, fmt.Errorf("resolve data path: %w", err)
	}

	store, err := xmlstore.Open(types.Config{DataPath: dataPath})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return store, nil
}

// parseID converts a positional argument to a positive entity id.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidID, arg)
	}
	return id, nil
}

// parseCount converts a positional argument to a non-negative threshold.
func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count %q", arg)
	}
	return n, nil
}

// emitJSON prints v as indented JSON, used by every command under --json.
func emitJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
