// Index command: scan files and persist word-count snapshots.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cowl/internal/store"
	"github.com/mesh-intelligence/cowl/pkg/keyed"
	"github.com/mesh-intelligence/cowl/pkg/text"
)

var indexCmd = &cobra.Command{
	Use:   "index FILE...",
	Short: "Index the words of one or more text files",
	Long: `Index scans each file, folds words to lower case (unless fold is
disabled in config.yaml), counts them, and persists one snapshot per
file. Counting probes the index with a borrowed view of the scanner's
buffer; a word is copied into an owned key only the first time it is
seen.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		var snaps []store.Snapshot
		for _, path := range args {
			snap, err := indexFile(st, path)
			if err != nil {
				return fmt.Errorf("index %s: %w", path, err)
			}
			snaps = append(snaps, snap)
		}

		if flagJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(snaps)
		}
		for _, snap := range snaps {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d words, %d distinct (snapshot %s)\n",
				snap.Source, snap.TotalWords, snap.DistinctWords, snap.SnapshotID)
		}
		return nil
	},
}

// indexFile counts the words of one file and persists the result as a
// snapshot.
func indexFile(st *store.Store, path string) (store.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return store.Snapshot{}, err
	}
	defer f.Close()

	counts, err := countWords(f)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.SaveSnapshot(path, counts)
}

// countWords builds the word-count map for one reader. The scanner's
// buffer is reused between words, so the map is probed with a Span view
// of it; only a previously unseen word is copied into an owned string
// key.
func countWords(f *os.File) (*keyed.Map[string, int64], error) {
	counts := keyed.NewMap[string, int64](keyed.StringKey[string]())
	byView := keyed.BytesView[string, text.Span]()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		raw := trimWord(scanner.Bytes())
		if len(raw) < configMinLen {
			continue
		}

		span := text.SpanOf(raw)
		if configFold {
			cell := text.Fold(span)
			span = cell.View()
		}

		if !keyed.UpdateBy(counts, byView, span, func(v *int64) { *v++ }) {
			counts.Set(span.String(), 1)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// trimWord strips leading and trailing bytes that are not ASCII letters
// or digits.
func trimWord(w []byte) []byte {
	start := 0
	for start < len(w) && !isWordByte(w[start]) {
		start++
	}
	end := len(w)
	for end > start && !isWordByte(w[end-1]) {
		end--
	}
	return w[start:end]
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
