package feed

import (
	"github.com/shopsync/pricerunner-feed/app/database"
)

// BuildCategoryPaths turns the flat category table into a breadcrumb string
// per category id, concatenated root-to-leaf with " > ". The input must be
// ordered by parent ascending so a parent's breadcrumb exists before its
// children are processed. A node whose parent id is missing from the set is
// treated as a root.
func BuildCategoryPaths(categories []database.Category) map[int64]string {
	paths := make(map[int64]string, len(categories))

	for _, category := range categories {
		if category.Parent == 0 {
			paths[category.ID] = category.Name
			continue
		}

		if parent, ok := paths[category.Parent]; ok {
			paths[category.ID] = parent + " > " + category.Name
		} else {
			// Orphan: parent was deleted or never loaded
			paths[category.ID] = category.Name
		}
	}

	return paths
}
