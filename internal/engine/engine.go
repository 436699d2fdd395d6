// Package engine implements the list operations over a session's
// context list: move, single and batched delete, and the row
// projection the table view renders. Every operation is a pure
// transform of the list it is handed; overlay release during deletion
// is the only side effect. The engine never retains the list between
// calls, so it cannot go stale against the owning store.
package engine

import (
	"github.com/Cyclone1070/ctxboard/internal/contextitem"
)

// Find returns the first item matching id, or ErrNotFound.
func Find(list []contextitem.Item, id contextitem.Identity) (contextitem.Item, error) {
	pos := indexOf(list, id)
	if pos < 0 {
		return nil, ErrNotFound
	}
	return list[pos], nil
}

// Move swaps the item identified by id with the item delta positions
// away and returns the new list together with the item's new
// position, which callers need to relocate the cursor. A move that
// would leave [0, len-1] fails with ErrOutOfRange and leaves the
// input untouched.
func Move(list []contextitem.Item, id contextitem.Identity, delta int) ([]contextitem.Item, int, error) {
	pos := indexOf(list, id)
	if pos < 0 {
		return nil, 0, ErrNotFound
	}

	newPos := pos + delta
	if newPos < 0 || newPos >= len(list) {
		return nil, 0, ErrOutOfRange
	}

	out := make([]contextitem.Item, len(list))
	copy(out, list)
	out[pos], out[newPos] = out[newPos], out[pos]
	return out, newPos, nil
}

// DeleteOne removes the first item matching id, releasing the
// resources it owns before the removal counts as complete. Fails with
// ErrNotFound when the identity is absent.
func DeleteOne(list []contextitem.Item, id contextitem.Identity) ([]contextitem.Item, error) {
	pos := indexOf(list, id)
	if pos < 0 {
		return nil, ErrNotFound
	}

	list[pos].Release()

	out := make([]contextitem.Item, 0, len(list)-1)
	out = append(out, list[:pos]...)
	out = append(out, list[pos+1:]...)
	return out, nil
}

// DeleteBatch removes every item whose identity is in ids and returns
// the new list and the number of items actually removed. Identities
// with no matching item are ignored: marks may be stale when the list
// changed between marking and executing, and stale marks are treated
// as already done. Each removed item's resources are released as it
// is processed, so no item already handled can leak.
func DeleteBatch(list []contextitem.Item, ids map[contextitem.Identity]struct{}) ([]contextitem.Item, int) {
	out := make([]contextitem.Item, 0, len(list))
	removed := 0
	for _, it := range list {
		if _, marked := ids[it.Identity()]; marked {
			it.Release()
			removed++
			continue
		}
		out = append(out, it)
	}
	return out, removed
}

// indexOf locates the first item with the given identity, -1 if none.
func indexOf(list []contextitem.Item, id contextitem.Identity) int {
	for i, it := range list {
		if it.Identity() == id {
			return i
		}
	}
	return -1
}
