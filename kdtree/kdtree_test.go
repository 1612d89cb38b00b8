package kdtree

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/achilleasa/go-pathtrace/geometry"
	"github.com/achilleasa/go-pathtrace/trace"
	"github.com/achilleasa/go-pathtrace/types"
)

// recordingHandler implements LeafHandler against a map of external item
// geometry, recording the order in which item ids are examined so tests
// can assert traversal ordering.
type recordingHandler struct {
	items   map[int32]geometry.Item
	visited []int32
	hitID   int32
	hitOK   bool
}

func (h *recordingHandler) HitLeaf(itemIDs []int32, r *trace.Ray, tMax float64) bool {
	hit := false
	for _, id := range itemIDs {
		h.visited = append(h.visited, id)
		it := h.items[id]
		if ok, t0, _ := it.Box.FullIntersection(r); ok && t0 < tMax {
			h.hitID, h.hitOK = id, true
			hit = true
		}
	}
	return hit
}

func (h *recordingHandler) ContainsLeaf(itemIDs []int32, p types.Point3) []int32 {
	var found []int32
	for _, id := range itemIDs {
		if h.items[id].Box.Contains(p) {
			found = append(found, id)
		}
	}
	return found
}

func unitBox(ox, oy, oz float64) geometry.BoundingBox {
	return geometry.New(types.PointXYZ(ox, oy, oz), types.PointXYZ(ox+1, oy+1, oz+1))
}

func threeBoxItems() []geometry.Item {
	return []geometry.Item{
		geometry.NewItem(0, unitBox(0, 0, 0)),
		geometry.NewItem(1, unitBox(2, 0, 0)),
		geometry.NewItem(2, unitBox(4, 0, 0)),
	}
}

func TestBoundsCoverEveryItem(t *testing.T) {
	items := threeBoxItems()
	tree, err := Build(items, DefaultSettings, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bounds := tree.Bounds()
	for _, it := range items {
		b := bounds
		b.Union(it.Box)
		if b != bounds {
			t.Fatalf("tree bounds do not cover item %d's box", it.ID)
		}
	}
}

func TestFirstHitOrdering(t *testing.T) {
	items := threeBoxItems()
	byID := map[int32]geometry.Item{}
	for _, it := range items {
		byID[int32(it.ID)] = it
	}

	tree, err := Build(items, Settings{MinItems: 1, HitCost: 1, EmptyBonus: 0.2}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h := &recordingHandler{items: byID}
	tree.SetHandler(h)

	r := trace.NewRay(types.PointXYZ(-1, 0.5, 0.5), types.XYZ(1, 0, 0), 550, 1, 8)
	hit, err := tree.Hit(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hit || !h.hitOK || h.hitID != 0 {
		t.Fatalf("expected first hit to be item 0, got hit=%v id=%v", hit, h.hitID)
	}

	pos := map[int32]int{}
	for i, id := range h.visited {
		if _, ok := pos[id]; !ok {
			pos[id] = i
		}
	}
	if p0, ok0 := pos[0]; ok0 {
		if p2, ok2 := pos[2]; ok2 && p2 < p0 {
			t.Fatalf("item 2 was visited before item 0: visited=%v", h.visited)
		}
	} else {
		t.Fatalf("item 0 was never visited: visited=%v", h.visited)
	}
}

func TestContainsCompleteness(t *testing.T) {
	items := threeBoxItems()
	byID := map[int32]geometry.Item{}
	for _, it := range items {
		byID[int32(it.ID)] = it
	}

	tree, err := Build(items, Settings{MinItems: 1, HitCost: 1, EmptyBonus: 0.2}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h := &recordingHandler{items: byID}
	tree.SetHandler(h)

	got, err := tree.Contains(types.PointXYZ(2.5, 0.5, 0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int32{1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestContainsOutsideBoundsIsEmpty(t *testing.T) {
	items := threeBoxItems()
	tree, err := Build(items, DefaultSettings, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.SetHandler(&recordingHandler{items: map[int32]geometry.Item{}})

	got, err := tree.Contains(types.PointXYZ(100, 100, 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no items outside bounds, got %v", got)
	}
}

func TestHitWithoutHandlerIsNotImplemented(t *testing.T) {
	tree, err := Build(threeBoxItems(), DefaultSettings, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := trace.NewRay(types.PointXYZ(-1, 0.5, 0.5), types.XYZ(1, 0, 0), 550, 1, 8)
	if _, err := tree.Hit(r); err == nil {
		t.Fatalf("expected ErrNotImplemented")
	}
}

func randomItems(n int, seed int64) []geometry.Item {
	rnd := rand.New(rand.NewSource(seed))
	items := make([]geometry.Item, n)
	for i := 0; i < n; i++ {
		x, y, z := rnd.Float64()*100, rnd.Float64()*100, rnd.Float64()*100
		items[i] = geometry.NewItem(i, unitBox(x, y, z))
	}
	return items
}

func TestBuildDeterminism(t *testing.T) {
	items := randomItems(200, 42)

	t1, err := Build(items, DefaultSettings, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t2, err := Build(items, DefaultSettings, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(t1.nodes, t2.nodes) {
		t.Fatalf("two builds over identical input produced different node arrays")
	}
}

func TestSerializationRoundTrip(t *testing.T) {
	items := randomItems(1000, 7)
	byID := map[int32]geometry.Item{}
	for _, it := range items {
		byID[int32(it.ID)] = it
	}

	tree, err := Build(items, DefaultSettings, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := Persist(tree)
	if err != nil {
		t.Fatalf("unexpected error persisting: %v", err)
	}

	restored, err := Restore(data, nil)
	if err != nil {
		t.Fatalf("unexpected error restoring: %v", err)
	}

	if !reflect.DeepEqual(tree.nodes, restored.nodes) {
		t.Fatalf("restored node array differs from the original")
	}

	tree.SetHandler(&recordingHandler{items: byID})
	restored.SetHandler(&recordingHandler{items: byID})

	rnd := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		origin := types.PointXYZ(rnd.Float64()*150-25, rnd.Float64()*150-25, rnd.Float64()*150-25)
		dir := types.XYZ(rnd.Float64()-0.5, rnd.Float64()-0.5, rnd.Float64()-0.5).Normalize()
		r1 := trace.NewRay(origin, dir, 550, 1, 8)
		r2 := trace.NewRay(origin, dir, 550, 1, 8)

		h1, err1 := tree.Hit(r1)
		h2, err2 := restored.Hit(r2)
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected errors: %v, %v", err1, err2)
		}
		if h1 != h2 {
			t.Fatalf("original and restored tree disagree on ray %d: %v != %v", i, h1, h2)
		}
	}
}

func TestSplitCostMatchesFormula(t *testing.T) {
	bounds := geometry.New(types.PointXYZ(0, 0, 0), types.PointXYZ(2, 1, 1))
	settings := Settings{HitCost: 2, EmptyBonus: 0.25}
	area := bounds.SurfaceArea()

	got := splitCost(bounds, area, 0, 1, 3, 0, settings)

	lo := bounds.SetIndex(0, true, 1)
	hi := bounds.SetIndex(0, false, 1)
	bonus := 1 - settings.EmptyBonus // nHi == 0
	want := 1 + bonus*(lo.SurfaceArea()*3+hi.SurfaceArea()*0)/area*settings.HitCost

	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSettingsDerivesMaxDepth(t *testing.T) {
	s, err := Settings{}.validate(1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.MaxDepth <= 0 {
		t.Fatalf("expected a positive derived max depth, got %d", s.MaxDepth)
	}
	if s.MinItems != 1 {
		t.Fatalf("expected MinItems clamped to 1, got %d", s.MinItems)
	}
	if s.HitCost != 1 {
		t.Fatalf("expected HitCost clamped to 1, got %v", s.HitCost)
	}
}

func TestSettingsRejectsInvalidEmptyBonus(t *testing.T) {
	if _, err := (Settings{EmptyBonus: 1.5}).validate(10); err == nil {
		t.Fatalf("expected an error for an out-of-range empty bonus")
	}
}
