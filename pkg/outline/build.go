package outline

// Build assembles a flat, document-ordered header list into a forest
// reflecting heading-level hierarchy.
//
// A single left-to-right pass maintains a stack of currently open
// headers: the path from the nearest unclosed ancestor down to the most
// recently seen header. Each incoming header pops the stack while the
// top's level is greater than or equal to its own. A same-or-shallower
// heading always closes the previous scope, so consecutive equal levels
// are siblings. A header deeper than its predecessor by more than one
// level still nests directly under the nearest shallower open header.
//
// The input is never mutated; the forest holds fresh copies so the flat
// list and the tree stay independently inspectable. The result is a
// forest, never a single implicit root: a document may open at any level.
func Build(headers []Header) []*Header {
	var forest []*Header
	var stack []*Header

	for _, h := range headers {
		node := &Header{
			ID:      h.ID,
			Level:   h.Level,
			Text:    h.Text,
			Content: h.Content,
			Line:    h.Line,
		}

		for len(stack) > 0 && stack[len(stack)-1].Level >= node.Level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			forest = append(forest, node)
		} else {
			top := stack[len(stack)-1]
			top.Children = append(top.Children, node)
		}

		stack = append(stack, node)
	}

	return forest
}
