package session

import "slices"

// Tag propagation over the canonical state. Every mutation here touches only
// canonical data (records, registry, active filter); callers recompute the
// visible sequence afterwards, which is what keeps it consistent by
// construction instead of by three-way patching.

// addTag attaches a tag to a video and registers it globally. Returns
// changed=false when the video already has the tag. ErrNotFound when the
// video is unknown.
func (st *State) addTag(videoID int64, tag string) (bool, error) {
	v, ok := st.canonical[videoID]
	if !ok {
		return false, ErrNotFound
	}
	if v.HasTag(tag) {
		return false, nil
	}
	v.Tags = append(v.Tags, tag)
	st.registry[tag] = struct{}{}
	return true, nil
}

// removeTag detaches a tag from a video. When the last reference to the tag
// disappears, the tag is pruned from the registry and from the active
// filter's required set (a filter requiring an unknown tag would silently
// match nothing). ErrNotFound when the video is unknown or doesn't carry the
// tag.
func (st *State) removeTag(videoID int64, tag string) (bool, error) {
	v, ok := st.canonical[videoID]
	if !ok {
		return false, ErrNotFound
	}
	i := slices.Index(v.Tags, tag)
	if i < 0 {
		return false, ErrNotFound
	}
	v.Tags = slices.Delete(v.Tags, i, i+1)
	st.pruneTag(tag)
	return true, nil
}

// renameTag replaces oldName with newName in the registry, every video, and
// the active filter. Renaming a tag to itself is a no-op. ErrDuplicateTag
// when newName already names a different tag, ErrNotFound when oldName is
// unknown; state is unchanged in both cases.
func (st *State) renameTag(oldName, newName string) error {
	if oldName == newName {
		return nil
	}
	if _, exists := st.registry[newName]; exists {
		return ErrDuplicateTag
	}
	if _, ok := st.registry[oldName]; !ok {
		return ErrNotFound
	}
	delete(st.registry, oldName)
	st.registry[newName] = struct{}{}
	for _, v := range st.canonical {
		if i := slices.Index(v.Tags, oldName); i >= 0 {
			v.Tags[i] = newName
		}
	}
	if _, ok := st.filter.RequiredTags[oldName]; ok {
		delete(st.filter.RequiredTags, oldName)
		st.filter.RequiredTags[newName] = struct{}{}
	}
	return nil
}

// deleteTag removes a tag from the registry, every video, and the active
// filter. ErrNotFound when the tag is unknown.
func (st *State) deleteTag(tag string) error {
	if _, ok := st.registry[tag]; !ok {
		return ErrNotFound
	}
	delete(st.registry, tag)
	for _, v := range st.canonical {
		if i := slices.Index(v.Tags, tag); i >= 0 {
			v.Tags = slices.Delete(v.Tags, i, i+1)
		}
	}
	delete(st.filter.RequiredTags, tag)
	return nil
}

// pruneTag drops the tag from the registry and the active filter if no video
// references it anymore.
func (st *State) pruneTag(tag string) {
	for _, v := range st.canonical {
		if v.HasTag(tag) {
			return
		}
	}
	delete(st.registry, tag)
	delete(st.filter.RequiredTags, tag)
}

// registerTags adds a record's tags to the registry.
func (st *State) registerTags(tags []string) {
	for _, t := range tags {
		st.registry[t] = struct{}{}
	}
}
