package manifest

// Merge deep-merges overlay onto base and returns a new map; neither input
// is mutated. Nested maps merge recursively key-by-key. Any non-map overlay
// value, scalars and lists alike, replaces the base value wholesale.
func Merge(base, overlay map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(base))
	for key, value := range base {
		merged[key] = value
	}

	for key, overlayVal := range overlay {
		overlayMap, overlayIsMap := overlayVal.(map[string]interface{})
		baseMap, baseIsMap := merged[key].(map[string]interface{})

		if overlayIsMap && baseIsMap {
			merged[key] = Merge(baseMap, overlayMap)
			continue
		}
		merged[key] = overlayVal
	}

	return merged
}
