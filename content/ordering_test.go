package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evelinalundqvist/portfolio-backend/models"
)

func cats(ids ...string) []models.Category {
	out := make([]models.Category, len(ids))
	for i, id := range ids {
		out[i] = models.Category{ID: id, DisplayOrder: int64(i + 1)}
	}
	return out
}

func orderOf(cs []models.Category) []string {
	ids := make([]string, len(cs))
	for i, c := range cs {
		ids[i] = c.ID
	}
	return ids
}

func assertDense(t *testing.T, cs []models.Category) {
	t.Helper()
	seen := make(map[int64]bool, len(cs))
	for i, c := range cs {
		require.Equal(t, int64(i+1), c.DisplayOrder, "category %s", c.ID)
		require.False(t, seen[c.DisplayOrder], "duplicate order %d", c.DisplayOrder)
		seen[c.DisplayOrder] = true
	}
}

func TestMoveCategoryDown(t *testing.T) {
	out, moved := MoveCategory(cats("A", "B", "C"), "A", MoveDown)
	require.True(t, moved)
	assert.Equal(t, []string{"B", "A", "C"}, orderOf(out))
	assertDense(t, out)
}

func TestMoveCategoryUp(t *testing.T) {
	out, moved := MoveCategory(cats("A", "B", "C"), "C", MoveUp)
	require.True(t, moved)
	assert.Equal(t, []string{"A", "C", "B"}, orderOf(out))
	assertDense(t, out)
}

func TestMoveCategoryBoundaryNoOps(t *testing.T) {
	in := cats("A", "B", "C")

	out, moved := MoveCategory(in, "A", MoveUp)
	assert.False(t, moved)
	assert.Equal(t, []string{"A", "B", "C"}, orderOf(out))
	assertDense(t, out)

	out, moved = MoveCategory(in, "C", MoveDown)
	assert.False(t, moved)
	assert.Equal(t, []string{"A", "B", "C"}, orderOf(out))
	assertDense(t, out)
}

func TestMoveCategoryUnknownID(t *testing.T) {
	_, moved := MoveCategory(cats("A", "B"), "missing", MoveDown)
	assert.False(t, moved)
}

func TestMoveCategoryDoesNotMutateInput(t *testing.T) {
	in := cats("A", "B", "C")
	_, moved := MoveCategory(in, "B", MoveUp)
	require.True(t, moved)
	assert.Equal(t, []string{"A", "B", "C"}, orderOf(in))
	assert.Equal(t, int64(2), in[1].DisplayOrder)
}

func TestMoveCategoryDenseAfterAnySequence(t *testing.T) {
	state := cats("A", "B", "C", "D")
	moves := []struct {
		id  string
		dir Direction
	}{
		{"D", MoveUp}, {"D", MoveUp}, {"A", MoveDown},
		{"B", MoveDown}, {"C", MoveUp}, {"A", MoveUp},
	}
	for _, m := range moves {
		next, _ := MoveCategory(state, m.id, m.dir)
		assertDense(t, next)
		state = next
	}
}

func TestMoveCategoryRepairsGaps(t *testing.T) {
	// A stale collection with gaps gets renumbered densely by the move.
	in := []models.Category{
		{ID: "A", DisplayOrder: 2},
		{ID: "B", DisplayOrder: 5},
		{ID: "C", DisplayOrder: 9},
	}
	out, moved := MoveCategory(in, "C", MoveUp)
	require.True(t, moved)
	assert.Equal(t, []string{"A", "C", "B"}, orderOf(out))
	assertDense(t, out)
}

func TestNextCategoryOrderAppendsAtEnd(t *testing.T) {
	assert.Equal(t, int64(1), NextCategoryOrder(nil))
	assert.Equal(t, int64(4), NextCategoryOrder(cats("A", "B", "C")))
}

func TestRenumberAfterDelete(t *testing.T) {
	remaining := []models.Category{
		{ID: "A", DisplayOrder: 1},
		{ID: "C", DisplayOrder: 3},
	}
	RenumberCategories(remaining)
	assertDense(t, remaining)
}

func TestSortProjectsNewestFirst(t *testing.T) {
	ps := []models.Project{
		{ID: "old", DisplayOrder: 1_600_000_000_000},
		{ID: "new", DisplayOrder: 1_700_000_000_000},
		{ID: "mid", DisplayOrder: 1_650_000_000_000},
	}
	SortProjects(ps)
	assert.Equal(t, "new", ps[0].ID)
	assert.Equal(t, "mid", ps[1].ID)
	assert.Equal(t, "old", ps[2].ID)
}

func TestSortProjectsCreatedAtFallback(t *testing.T) {
	older := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ps := []models.Project{
		{ID: "legacy-old", CreatedAt: older},
		{ID: "legacy-new", CreatedAt: newer},
	}
	SortProjects(ps)
	assert.Equal(t, "legacy-new", ps[0].ID)
}

func TestSortProjectsPreservesStoreOrderWithoutKeys(t *testing.T) {
	ps := []models.Project{{ID: "first"}, {ID: "second"}, {ID: "third"}}
	SortProjects(ps)
	assert.Equal(t, []models.Project{{ID: "first"}, {ID: "second"}, {ID: "third"}}, ps)
}

func TestProjectDisplayOrderIsUnixMillis(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, now.UnixMilli(), ProjectDisplayOrder(now))
}
