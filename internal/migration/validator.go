package migration

// ValidateCollection is a structural shape gate, not a full invariant
// check: the value must be a non-nil object with a packs array (each pack
// an object with an id string and a cards array) and a metadata object
// holding at minimum a uniqueCards array. Any deviation returns false;
// nothing throws. The derived rarityCounts tally is deliberately not
// re-verified here.
func ValidateCollection(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok || obj == nil {
		return false
	}

	packs, ok := obj["packs"].([]any)
	if !ok {
		return false
	}
	for _, p := range packs {
		pack, ok := p.(map[string]any)
		if !ok {
			return false
		}
		if _, ok := pack["id"].(string); !ok {
			return false
		}
		if _, ok := pack["cards"].([]any); !ok {
			return false
		}
	}

	meta, ok := obj["metadata"].(map[string]any)
	if !ok || meta == nil {
		return false
	}
	if _, ok := meta["uniqueCards"].([]any); !ok {
		return false
	}
	return true
}
