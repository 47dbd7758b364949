package mosaic

// CursorHint tells the rendering backend where to place the terminal
// cursor after a frame, in absolute coordinates. Visible is false when no
// focused widget reports a caret.
type CursorHint struct {
	Pos     Point
	Visible bool
}

// Render paints every widget into the buffer in paint order: anchored
// leaves depth-first, floats above their siblings in ascending z. The
// buffer is not cleared first; callers that need it call Clear themselves.
// The returned hint reflects the focused widget's cursor, if it reports one.
func (s *Session) Render(buf *Buffer) CursorHint {
	rects := s.Layout()
	s.renderNode(s.tree.root, rects, buf)

	if s.focus.Valid() {
		if w, err := s.registry.Get(s.focus); err == nil {
			if cp, ok := w.(CursorProvider); ok {
				if local, show := cp.CursorPosition(); show {
					if id, found := s.tree.FindLeaf(s.focus); found {
						if r, ok := rects[id]; ok {
							return CursorHint{
								Pos:     Point{X: r.X + local.X, Y: r.Y + local.Y},
								Visible: true,
							}
						}
					}
				}
			}
		}
	}
	return CursorHint{}
}

func (s *Session) renderNode(id NodeID, rects map[NodeID]Rect, buf *Buffer) {
	n := &s.tree.nodes[id]
	switch n.kind {
	case nodeLeaf:
		r, ok := rects[id]
		if !ok || r.Empty() {
			return
		}
		if w, err := s.registry.Get(n.widget); err == nil {
			w.Render(buf.Region(r))
		}
	default:
		for _, c := range s.tree.paintOrder(n.children) {
			s.renderNode(c, rects, buf)
		}
	}
}
