// Top command: show the highest aggregated word counts.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var flagTopN int

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the highest aggregated word counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		top, err := st.Top(flagTopN)
		if err != nil {
			return fmt.Errorf("query top words: %w", err)
		}

		if flagJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(top)
		}
		if len(top) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no words indexed")
			return nil
		}
		for _, wc := range top {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", wc.Word, wc.Count)
		}
		return nil
	},
}

func init() {
	topCmd.Flags().IntVar(&flagTopN, "n", 10, "number of words to show")
}
