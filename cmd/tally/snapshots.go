// Snapshots command: list persisted index runs.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List persisted index snapshots, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		snaps, err := st.Snapshots()
		if err != nil {
			return fmt.Errorf("list snapshots: %w", err)
		}

		if flagJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(snaps)
		}
		if len(snaps) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no snapshots")
			return nil
		}
		for _, snap := range snaps {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d words, %d distinct  %s\n",
				snap.SnapshotID, snap.CreatedAt.Format(time.RFC3339),
				snap.TotalWords, snap.DistinctWords, snap.Source)
		}
		return nil
	},
}
