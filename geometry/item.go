package geometry

// Item is the smallest indexable unit the kd-tree partitions: an id
// referring to external geometry (typically an index into a primitive
// array) paired with the bounding box of its extent. Items are immutable
// after construction; the tree consumes their boxes during build and keeps
// only the ids.
type Item struct {
	ID  int
	Box BoundingBox
}

// New item constructor, kept for symmetry with BoundingBox's New.
func NewItem(id int, box BoundingBox) Item {
	return Item{ID: id, Box: box}
}
