package store

// DifferenceIDs returns the ids in targetIDs that no model carries
func DifferenceIDs[T interface{ GetID() string }](targetIDs []string, models []T) []string {
	found := make(map[string]bool, len(models))
	for _, m := range models {
		found[m.GetID()] = true
	}

	missing := []string{}
	for _, id := range targetIDs {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
