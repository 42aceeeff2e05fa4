package render

// deepMerge folds src into dst and returns dst. On key collisions src
// wins, except when both sides are maps, which merge recursively. dst
// is mutated; pass a clone when the original must survive.
func deepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, sv := range src {
		if sm, ok := sv.(map[string]any); ok {
			if dm, ok := dst[k].(map[string]any); ok {
				dst[k] = deepMerge(dm, sm)
				continue
			}
		}
		dst[k] = sv
	}
	return dst
}

// cloneTree copies a payload tree so merges cannot leak into shared
// state. Only nested map[string]any values are copied; leaves are
// shared, which is safe because payload leaves are never mutated.
func cloneTree(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneTree(mv)
			continue
		}
		out[k] = v
	}
	return out
}
