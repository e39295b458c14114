package docmodel

import (
	"fmt"
	"sort"
)

// PatchSet maps a template slot name to the content trees that replace it.
// The key set is a fixed contract with the template: the renderer rejects a
// patch set whose keys do not match the slots the template declares.
type PatchSet map[string][]Node

// Set assigns nodes to a slot, replacing any previous content.
func (p PatchSet) Set(slot string, nodes ...Node) {
	p[slot] = nodes
}

// Slots returns the slot names in sorted order.
func (p PatchSet) Slots() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Diff compares the patch key set against the slot names a template
// declares. It returns the slots the patch set is missing and the keys the
// template has no anchor for.
func (p PatchSet) Diff(declared []string) (missing, extra []string) {
	want := make(map[string]bool, len(declared))
	for _, s := range declared {
		want[s] = true
		if _, ok := p[s]; !ok {
			missing = append(missing, s)
		}
	}
	for k := range p {
		if !want[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}

// Validate returns an error describing any mismatch between the patch keys
// and the declared slot set.
func (p PatchSet) Validate(declared []string) error {
	missing, extra := p.Diff(declared)
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	return fmt.Errorf("patch set does not match template slots (missing %v, extra %v)", missing, extra)
}
