package cmd

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/achilleasa/go-pathtrace/geometry"
	"github.com/achilleasa/go-pathtrace/kdtree"
	"github.com/achilleasa/go-pathtrace/trace"
	"github.com/achilleasa/go-pathtrace/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// boxHandler answers kd-tree leaf queries against a plain id->box map,
// the "wrapper over plain item-id lists" spec section 6 describes for
// embedded callers that don't have their own primitive geometry.
type boxHandler struct {
	boxes map[int32]geometry.BoundingBox
}

func (h boxHandler) HitLeaf(itemIDs []int32, r *trace.Ray, tMax float64) bool {
	for _, id := range itemIDs {
		if hit, t0, _ := h.boxes[id].FullIntersection(r); hit && t0 < tMax {
			return true
		}
	}
	return false
}

func (h boxHandler) ContainsLeaf(itemIDs []int32, p types.Point3) []int32 {
	var found []int32
	for _, id := range itemIDs {
		if h.boxes[id].Contains(p) {
			found = append(found, id)
		}
	}
	return found
}

// Bench builds a kd-tree over synthetic unit-cube items scattered inside a
// cube volume and prints its build statistics.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	n := ctx.Int("items")
	extent := ctx.Float64("extent")
	seed := ctx.Int64("seed")

	rnd := rand.New(rand.NewSource(seed))
	boxes := make(map[int32]geometry.BoundingBox, n)
	items := make([]geometry.Item, n)
	for i := 0; i < n; i++ {
		x, y, z := rnd.Float64()*extent, rnd.Float64()*extent, rnd.Float64()*extent
		b := geometry.New(types.PointXYZ(x, y, z), types.PointXYZ(x+1, y+1, z+1))
		items[i] = geometry.NewItem(i, b)
		boxes[int32(i)] = b
	}

	settings := kdtree.Settings{
		MinItems:   ctx.Int("min-items"),
		HitCost:    ctx.Float64("hit-cost"),
		EmptyBonus: ctx.Float64("empty-bonus"),
	}

	tree, err := kdtree.Build(items, settings, boxHandler{boxes: boxes})
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	stats := tree.Stats()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"metric", "value"})
	table.Append([]string{"items", fmt.Sprintf("%d", n)})
	table.Append([]string{"nodes", fmt.Sprintf("%d", stats.Nodes)})
	table.Append([]string{"leaves", fmt.Sprintf("%d", stats.Leaves)})
	table.Append([]string{"max depth", fmt.Sprintf("%d", stats.MaxDepth)})
	table.Append([]string{"mean leaf size", fmt.Sprintf("%.2f", stats.MeanLeafSize())})
	table.Append([]string{"build time", stats.BuildTime.String()})
	table.Render()

	logger.Noticef("kd-tree build statistics\n%s", buf.String())

	return nil
}
