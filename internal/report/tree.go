// Package report renders a finished run as a tree: every surviving file with
// the duplicates removed in its favour beneath it.
package report

import (
	"fmt"

	"github.com/brettbedarf/dedupe"
	"github.com/disiqueira/gotree/v3"
)

// Group is one fingerprint's final survivor and the copies removed for it.
type Group struct {
	Kept    string
	Removed []string
}

// Groups folds deletions by fingerprint. When a survivor is later replaced
// by a newer copy the group follows the newest survivor. Groups are ordered
// by the first duplicate seen for their fingerprint.
func Groups(deletions []dedupe.Deletion) []Group {
	index := make(map[dedupe.Fingerprint]int)
	var groups []Group
	for _, d := range deletions {
		i, ok := index[d.Fingerprint]
		if !ok {
			i = len(groups)
			index[d.Fingerprint] = i
			groups = append(groups, Group{})
		}
		groups[i].Kept = d.Kept
		groups[i].Removed = append(groups[i].Removed, d.Removed)
	}
	return groups
}

// Render returns the printable summary tree, ending in a newline.
func Render(s *dedupe.Summary) string {
	root := gotree.New(fmt.Sprintf("dedupe %s (run %s)", s.Root, s.RunID))

	if groups := Groups(s.Deletions); len(groups) > 0 {
		kept := root.Add("kept")
		for _, g := range groups {
			node := kept.Add(g.Kept)
			for _, removed := range g.Removed {
				node.Add("deleted " + removed)
			}
		}
	}

	totals := root.Add("totals")
	totals.Add(fmt.Sprintf("processed: %d", s.Processed))
	totals.Add(fmt.Sprintf("skipped: %d", s.Skipped))
	totals.Add(fmt.Sprintf("unique: %d", s.Unique))
	totals.Add(fmt.Sprintf("duplicates: %d", s.Duplicates()))
	totals.Add(fmt.Sprintf("freed: %s", humanBytes(s.BytesFreed)))

	return root.Print()
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
