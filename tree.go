package mosaic

import (
	"errors"
	"fmt"
)

// ErrTreeIntegrity is returned when a tree operation references a node that
// does not exist, or would break the single-rooted ownership hierarchy.
var ErrTreeIntegrity = errors.New("tree integrity violation")

// NodeID addresses a node in the layout tree's arena.
type NodeID int32

// InvalidNode is the zero-value NodeID returned alongside errors.
const InvalidNode NodeID = -1

type nodeKind uint8

const (
	nodeSplit nodeKind = iota
	nodeLeaf
	nodeFloat
)

// node is one arena slot. Child lists hold indices rather than pointers, so
// the tree stays a strict ownership hierarchy with no cycles.
type node struct {
	kind nodeKind
	live bool

	parent     NodeID
	constraint Constraint // sizing rule within the parent split

	// split
	axis     Axis
	children []NodeID

	// leaf
	widget Handle

	// float
	rect Rect // requested position and size, relative to the ancestor bounds
	z    int
	seq  int // insertion order, breaks z ties
}

// Tree is the runtime-mutable layout structure: an arena of Leaf, Split and
// Float nodes referencing widgets by handle. Every structural mutation bumps
// the generation counter, which is the cache invalidation signal.
type Tree struct {
	nodes    []node
	free     []NodeID
	root     NodeID
	gen      uint64
	floatSeq int
}

// NewTree creates a tree whose root is an empty split along the given axis.
func NewTree(axis Axis) *Tree {
	t := &Tree{gen: 1}
	t.root = t.alloc(node{kind: nodeSplit, live: true, parent: InvalidNode, axis: axis})
	return t
}

// Root returns the id of the root split.
func (t *Tree) Root() NodeID {
	return t.root
}

// Generation returns the current validity epoch. It increases monotonically
// with every structural change.
func (t *Tree) Generation() uint64 {
	return t.gen
}

func (t *Tree) touch() {
	t.gen++
}

func (t *Tree) alloc(n node) NodeID {
	if len(t.free) > 0 {
		id := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// get returns the node for id, or ErrTreeIntegrity for unknown or removed ids.
func (t *Tree) get(id NodeID) (*node, error) {
	if id < 0 || int(id) >= len(t.nodes) || !t.nodes[id].live {
		return nil, fmt.Errorf("node %d: %w", id, ErrTreeIntegrity)
	}
	return &t.nodes[id], nil
}

// attach appends child to parent's child list. Floats may hold exactly one child.
func (t *Tree) attach(parent, child NodeID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	switch p.kind {
	case nodeLeaf:
		return fmt.Errorf("cannot add children to leaf %d: %w", parent, ErrTreeIntegrity)
	case nodeFloat:
		if len(p.children) > 0 {
			return fmt.Errorf("float %d already has a child: %w", parent, ErrTreeIntegrity)
		}
	}
	p.children = append(p.children, child)
	t.nodes[child].parent = parent
	t.touch()
	return nil
}

// AddLeaf creates a leaf holding the widget and appends it to parent.
// The same handle may not appear in the tree twice.
func (t *Tree) AddLeaf(parent NodeID, w Handle, c Constraint) (NodeID, error) {
	if existing, ok := t.FindLeaf(w); ok {
		return InvalidNode, fmt.Errorf("widget already attached at node %d: %w", existing, ErrTreeIntegrity)
	}
	id := t.alloc(node{kind: nodeLeaf, live: true, parent: InvalidNode, widget: w, constraint: c})
	if err := t.attach(parent, id); err != nil {
		t.release(id)
		return InvalidNode, err
	}
	return id, nil
}

// AddSplit creates an empty split along axis and appends it to parent.
func (t *Tree) AddSplit(parent NodeID, axis Axis, c Constraint) (NodeID, error) {
	id := t.alloc(node{kind: nodeSplit, live: true, parent: InvalidNode, axis: axis, constraint: c})
	if err := t.attach(parent, id); err != nil {
		t.release(id)
		return InvalidNode, err
	}
	return id, nil
}

// AddFloat creates a floating node appended to parent. The float is solved
// against its parent's bounds using rect, layered above its siblings in
// ascending z order (insertion order breaks ties). Its content subtree is
// built by passing the returned id as parent to AddLeaf or AddSplit.
func (t *Tree) AddFloat(parent NodeID, rect Rect, z int) (NodeID, error) {
	t.floatSeq++
	id := t.alloc(node{kind: nodeFloat, live: true, parent: InvalidNode, rect: rect, z: z, seq: t.floatSeq})
	if err := t.attach(parent, id); err != nil {
		t.release(id)
		return InvalidNode, err
	}
	return id, nil
}

func (t *Tree) release(id NodeID) {
	t.nodes[id] = node{}
	t.free = append(t.free, id)
}

// Remove detaches the node from its parent and releases the whole subtree.
// It returns the widget handles of every leaf that was removed, so the
// caller can release them from its registry. The root cannot be removed.
func (t *Tree) Remove(id NodeID) ([]Handle, error) {
	n, err := t.get(id)
	if err != nil {
		return nil, err
	}
	if id == t.root {
		return nil, fmt.Errorf("cannot remove root: %w", ErrTreeIntegrity)
	}
	if p, err := t.get(n.parent); err == nil {
		for i, c := range p.children {
			if c == id {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	var released []Handle
	t.releaseSubtree(id, &released)
	t.touch()
	return released, nil
}

func (t *Tree) releaseSubtree(id NodeID, released *[]Handle) {
	n := t.nodes[id]
	if n.kind == nodeLeaf {
		*released = append(*released, n.widget)
	}
	for _, c := range n.children {
		t.releaseSubtree(c, released)
	}
	t.release(id)
}

// SetConstraint changes a node's sizing rule within its parent split.
func (t *Tree) SetConstraint(id NodeID, c Constraint) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	n.constraint = c
	t.touch()
	return nil
}

// SetAxis changes the direction a split divides its space along.
func (t *Tree) SetAxis(id NodeID, axis Axis) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	if n.kind != nodeSplit {
		return fmt.Errorf("node %d is not a split: %w", id, ErrTreeIntegrity)
	}
	n.axis = axis
	t.touch()
	return nil
}

// MoveChild reorders parent's children, moving the child at index from to
// index to.
func (t *Tree) MoveChild(parent NodeID, from, to int) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	if from < 0 || from >= len(p.children) || to < 0 || to >= len(p.children) {
		return fmt.Errorf("child index out of range: %w", ErrTreeIntegrity)
	}
	c := p.children[from]
	p.children = append(p.children[:from], p.children[from+1:]...)
	p.children = append(p.children[:to], append([]NodeID{c}, p.children[to:]...)...)
	t.touch()
	return nil
}

// SetFloatRect repositions or resizes a floating node.
func (t *Tree) SetFloatRect(id NodeID, rect Rect) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	if n.kind != nodeFloat {
		return fmt.Errorf("node %d is not a float: %w", id, ErrTreeIntegrity)
	}
	n.rect = rect
	t.touch()
	return nil
}

// RaiseFloat moves a floating node above every float sharing its parent.
func (t *Tree) RaiseFloat(id NodeID) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	if n.kind != nodeFloat {
		return fmt.Errorf("node %d is not a float: %w", id, ErrTreeIntegrity)
	}
	top := n.z
	if p, err := t.get(n.parent); err == nil {
		for _, c := range p.children {
			if s := &t.nodes[c]; s.kind == nodeFloat && s.z > top {
				top = s.z
			}
		}
	}
	n.z = top + 1
	t.floatSeq++
	n.seq = t.floatSeq
	t.touch()
	return nil
}

// Parent returns the parent of id, or InvalidNode for the root.
func (t *Tree) Parent(id NodeID) (NodeID, error) {
	n, err := t.get(id)
	if err != nil {
		return InvalidNode, err
	}
	return n.parent, nil
}

// Children returns a copy of a node's child list.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	n, err := t.get(id)
	if err != nil {
		return nil, err
	}
	return append([]NodeID(nil), n.children...), nil
}

// Widget returns the handle held by a leaf node.
func (t *Tree) Widget(id NodeID) (Handle, error) {
	n, err := t.get(id)
	if err != nil {
		return Handle{}, err
	}
	if n.kind != nodeLeaf {
		return Handle{}, fmt.Errorf("node %d is not a leaf: %w", id, ErrTreeIntegrity)
	}
	return n.widget, nil
}

// FindLeaf returns the leaf node holding the given widget handle.
func (t *Tree) FindLeaf(w Handle) (NodeID, bool) {
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.live && n.kind == nodeLeaf && n.widget == w {
			return NodeID(i), true
		}
	}
	return InvalidNode, false
}

// IsLeaf reports whether id is a live leaf node.
func (t *Tree) IsLeaf(id NodeID) bool {
	n, err := t.get(id)
	return err == nil && n.kind == nodeLeaf
}

// IsFloat reports whether id is a live floating node.
func (t *Tree) IsFloat(id NodeID) bool {
	n, err := t.get(id)
	return err == nil && n.kind == nodeFloat
}

// Leaves returns every leaf id in depth-first order: a split's anchored
// children in declaration order first, then its floats in ascending paint
// order. This is the traversal tab order derives from.
func (t *Tree) Leaves() []NodeID {
	var leaves []NodeID
	t.walkLeaves(t.root, &leaves)
	return leaves
}

func (t *Tree) walkLeaves(id NodeID, leaves *[]NodeID) {
	n := &t.nodes[id]
	if n.kind == nodeLeaf {
		*leaves = append(*leaves, id)
		return
	}
	for _, c := range t.paintOrder(n.children) {
		t.walkLeaves(c, leaves)
	}
}

// paintOrder returns children with anchored nodes first in declaration order,
// then floats in ascending (z, seq) order.
func (t *Tree) paintOrder(children []NodeID) []NodeID {
	ordered := make([]NodeID, 0, len(children))
	var floats []NodeID
	for _, c := range children {
		if t.nodes[c].kind == nodeFloat {
			floats = append(floats, c)
			continue
		}
		ordered = append(ordered, c)
	}
	// Insertion sort: float counts are small and ties must stay stable.
	for i := 1; i < len(floats); i++ {
		for j := i; j > 0; j-- {
			a, b := &t.nodes[floats[j-1]], &t.nodes[floats[j]]
			if a.z > b.z || (a.z == b.z && a.seq > b.seq) {
				floats[j-1], floats[j] = floats[j], floats[j-1]
				continue
			}
			break
		}
	}
	return append(ordered, floats...)
}
