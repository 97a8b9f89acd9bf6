package content

import (
	"sort"
	"time"

	"github.com/evelinalundqvist/portfolio-backend/models"
)

// Direction is a manual reorder direction for categories.
type Direction int

const (
	MoveUp Direction = iota
	MoveDown
)

// MoveCategory swaps the category with its neighbor in the given direction
// and renumbers every category to its 1-based position, so displayOrder stays
// a dense 1..N ranking with no gaps or ties. Moving the first item up or the
// last item down is a no-op: moved is false and the input is returned as a
// copy with its order untouched.
//
// The caller is expected to persist displayOrder for every returned category,
// not just the two that swapped.
func MoveCategory(cats []models.Category, id string, dir Direction) ([]models.Category, bool) {
	out := make([]models.Category, len(cats))
	copy(out, cats)
	SortCategories(out)

	idx := -1
	for i, c := range out {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return out, false
	}

	swap := idx - 1
	if dir == MoveDown {
		swap = idx + 1
	}
	if swap < 0 || swap >= len(out) {
		return out, false
	}

	out[idx], out[swap] = out[swap], out[idx]
	RenumberCategories(out)
	return out, true
}

// RenumberCategories assigns displayOrder = index + 1 across the slice.
func RenumberCategories(cats []models.Category) {
	for i := range cats {
		cats[i].DisplayOrder = int64(i + 1)
	}
}

// NextCategoryOrder returns the order value for a category appended at the
// end of the collection.
func NextCategoryOrder(cats []models.Category) int64 {
	return int64(len(cats) + 1)
}

// SortCategories orders by displayOrder ascending, preserving store order
// for ties.
func SortCategories(cats []models.Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].DisplayOrder < cats[j].DisplayOrder
	})
}

// ProjectDisplayOrder is the sort key stamped on a project at creation.
// Unix milliseconds, so newest-created sorts first without any renumbering.
func ProjectDisplayOrder(now time.Time) int64 {
	return now.UnixMilli()
}

// SortProjects orders newest first: displayOrder descending, falling back to
// createdAt descending for records predating the field. When neither is
// present the store-return order is preserved.
func SortProjects(ps []models.Project) {
	sort.SliceStable(ps, func(i, j int) bool {
		a, b := ps[i], ps[j]
		if a.DisplayOrder != 0 || b.DisplayOrder != 0 {
			return a.DisplayOrder > b.DisplayOrder
		}
		if !a.CreatedAt.IsZero() || !b.CreatedAt.IsZero() {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return false
	})
}
