package analysis

// GroupChecklist buckets items by category. Buckets appear in the order their
// category is first seen and items keep their input order inside a bucket.
func GroupChecklist(items []ChecklistItem) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	index := make(map[string]int)
	for _, item := range items {
		pos, ok := index[item.Category]
		if !ok {
			pos = len(groups)
			index[item.Category] = pos
			groups = append(groups, CategoryGroup{Category: item.Category})
		}
		groups[pos].Items = append(groups[pos].Items, item)
	}
	return groups
}

// PassedCount returns how many items in the group are satisfied.
func (g CategoryGroup) PassedCount() int {
	n := 0
	for _, item := range g.Items {
		if item.Passed() {
			n++
		}
	}
	return n
}
