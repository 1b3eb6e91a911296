package ingest

// PartitionThemes splits candidate theme names into those already present in
// existing (case-sensitive exact match) and those that would be created on
// submit. Candidate order is preserved and duplicates collapse to their first
// occurrence, so known+unknown always equals the deduplicated candidate set and
// the two halves never overlap.
func PartitionThemes(candidates, existing []string) (known, unknown []string) {
	known = make([]string, 0, len(candidates))
	unknown = make([]string, 0, len(candidates))

	existingSet := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		existingSet[name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(candidates))
	for _, name := range candidates {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if _, ok := existingSet[name]; ok {
			known = append(known, name)
		} else {
			unknown = append(unknown, name)
		}
	}
	return known, unknown
}
