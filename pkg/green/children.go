package green

// Children is a finite, re-iterable, double-ended view over a node's
// child slots. It yields each child as a read-only node-or-token
// reference without copying the underlying element. A view is fused:
// once exhausted, Next and NextBack keep reporting false. Views never
// mutate the node; any number may iterate the same node concurrently.
type Children struct {
	slots []Child
}

// Len returns the exact number of children remaining in the view.
func (c *Children) Len() int {
	return len(c.slots)
}

// Next yields the next child from the front of the view, or false if
// the view is exhausted.
func (c *Children) Next() (Element, bool) {
	if len(c.slots) == 0 {
		return nil, false
	}
	el := c.slots[0].elem
	c.slots = c.slots[1:]
	return el, true
}

// NextBack yields the next child from the back of the view, or false
// if the view is exhausted.
func (c *Children) NextBack() (Element, bool) {
	if len(c.slots) == 0 {
		return nil, false
	}
	el := c.slots[len(c.slots)-1].elem
	c.slots = c.slots[:len(c.slots)-1]
	return el, true
}

// NextSlot is like Next but yields the full child slot, including its
// offset in the parent.
func (c *Children) NextSlot() (Child, bool) {
	if len(c.slots) == 0 {
		return Child{}, false
	}
	slot := c.slots[0]
	c.slots = c.slots[1:]
	return slot, true
}

// Collect drains the remaining front-to-back elements into a slice.
func (c *Children) Collect() []Element {
	out := make([]Element, 0, len(c.slots))
	for {
		el, ok := c.Next()
		if !ok {
			return out
		}
		out = append(out, el)
	}
}
