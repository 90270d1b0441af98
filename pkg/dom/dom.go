package dom

import "github.com/matzehuels/snapline/pkg/geom"

// Element is the read-only layout view of a rendered element.
type Element interface {
	// ID identifies the element for logging.
	ID() string
	// Offset returns offsetLeft/offsetTop/offsetWidth/offsetHeight.
	Offset() geom.Rect
	// BoundingClientRect returns the element's box in screen space.
	BoundingClientRect() geom.Rect
	// Parent returns the containing element, or nil at the root.
	Parent() Element
	// Children returns the element's children in document order.
	Children() []Element
}

// Node is a mutable in-memory [Element].
type Node struct {
	id       string
	box      geom.Rect
	parent   *Node
	children []*Node
}

// NewNode creates a detached node with the given offset box.
func NewNode(id string, box geom.Rect) *Node {
	return &Node{id: id, box: box}
}

// ID returns the node identifier.
func (n *Node) ID() string { return n.id }

// Offset returns the node's box relative to its parent.
func (n *Node) Offset() geom.Rect { return n.box }

// SetOffset replaces the node's box.
func (n *Node) SetOffset(r geom.Rect) { n.box = r }

// BoundingClientRect accumulates ancestor offsets to produce a screen-space box.
func (n *Node) BoundingClientRect() geom.Rect {
	r := n.box
	for p := n.parent; p != nil; p = p.parent {
		r = r.Translate(p.box.Left, p.box.Top)
	}
	return r
}

// Parent returns the containing node or nil.
func (n *Node) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Children returns the child nodes as elements.
func (n *Node) Children() []Element {
	out := make([]Element, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Append attaches child as the last child of n and returns it. A child
// already attached elsewhere is detached first.
func (n *Node) Append(child *Node) *Node {
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Detach removes n from its parent.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Find returns the first node in the subtree rooted at n with the given id.
func (n *Node) Find(id string) (*Node, bool) {
	if n.id == id {
		return n, true
	}
	for _, c := range n.children {
		if found, ok := c.Find(id); ok {
			return found, true
		}
	}
	return nil, false
}
