// Package dedupe holds the public types shared by the dedupe tool: the hashing
// capability, walker entries and the summary of a completed run.
package dedupe

// Deletion records one resolved duplicate pair.
type Deletion struct {
	Fingerprint Fingerprint
	Kept        string
	Removed     string
	Size        int64
}

// Summary describes what a single run did.
type Summary struct {
	RunID      string
	Root       string
	Processed  int // files handed to the fingerprint engine
	Skipped    int // files whose hashing failed
	Unique     int // distinct fingerprints seen
	Deletions  []Deletion
	BytesFreed int64
}

// Duplicates returns the number of duplicate pairs resolved.
func (s *Summary) Duplicates() int {
	return len(s.Deletions)
}
