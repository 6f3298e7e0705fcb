// Lookup command: query aggregated word counts.
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cowl/internal/store"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup WORD...",
	Short: "Look up aggregated counts for one or more words",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		results := make(map[string]int64, len(args))
		for _, word := range args {
			count, err := st.Lookup(word)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					results[word] = 0
					continue
				}
				return fmt.Errorf("lookup %s: %w", word, err)
			}
			results[word] = count
		}

		if flagJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(results)
		}
		for _, word := range args {
			if results[word] == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not found\n", word)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", word, results[word])
		}
		return nil
	},
}
