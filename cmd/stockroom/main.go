// Package main provides the stockroom CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, types.ErrStoreUnavailable) {
			os.Exit(exitSysError)
		}
		os.Exit(exitUserError)
	}
}
