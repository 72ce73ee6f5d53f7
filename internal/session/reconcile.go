package session

// Reconciliation of external add/remove notifications into the canonical
// set. Filters, sort, and unrelated selection are left untouched.

import "github.com/vidkeep/vidkeep/internal/library"

// applyAdd inserts an externally added record. A duplicate id is a no-op:
// the source-of-truth store is authoritative and may re-notify.
func (st *State) applyAdd(rec *library.VideoRecord) bool {
	if _, exists := st.canonical[rec.ID]; exists {
		return false
	}
	st.canonical[rec.ID] = rec
	st.registerTags(rec.Tags)
	return true
}

// applyRemove deletes an externally removed record. If it was the selected
// record, the selection clears; the engine does not guess a replacement.
// Tags the record was the last holder of are pruned from the registry, but
// the active filter is not touched here.
func (st *State) applyRemove(id int64) (wasSelected, removed bool) {
	rec, ok := st.canonical[id]
	if !ok {
		return false, false
	}
	delete(st.canonical, id)
	for _, tag := range rec.Tags {
		if _, known := st.registry[tag]; !known {
			continue
		}
		stillUsed := false
		for _, v := range st.canonical {
			if v.HasTag(tag) {
				stillUsed = true
				break
			}
		}
		if !stillUsed {
			delete(st.registry, tag)
		}
	}
	if st.selectedID == id {
		st.selectedID = 0
		return true, true
	}
	return false, true
}
