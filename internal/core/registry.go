package core

import (
	"github.com/brettbedarf/dedupe"
	"github.com/puzpuzpuz/xsync/v4"
)

// Registry maps each fingerprint to its canonical path for one run.
// Keys are never removed; a key's path is only replaced by the resolver.
type Registry struct {
	paths *xsync.Map[dedupe.Fingerprint, string]
}

func NewRegistry() *Registry {
	return &Registry{paths: xsync.NewMap[dedupe.Fingerprint, string]()}
}

// Lookup returns the canonical path recorded for fp.
func (r *Registry) Lookup(fp dedupe.Fingerprint) (string, bool) {
	return r.paths.Load(fp)
}

// Put records path as canonical for fp, inserting or replacing.
func (r *Registry) Put(fp dedupe.Fingerprint, path string) {
	r.paths.Store(fp, path)
}

// Len returns the number of distinct fingerprints seen.
func (r *Registry) Len() int {
	return r.paths.Size()
}

// Snapshot copies the current mapping.
func (r *Registry) Snapshot() map[dedupe.Fingerprint]string {
	out := make(map[dedupe.Fingerprint]string, r.paths.Size())
	r.paths.Range(func(fp dedupe.Fingerprint, path string) bool {
		out[fp] = path
		return true
	})
	return out
}
