package internal

// ReconstructPath walks the parent links from tail back to the root and
// returns the positions visited, root first.
func ReconstructPath[Node any, Position any](
	tail Node,
	position func(Node) Position,
	parent func(Node) (Node, bool),
) []Position {
	path := []Position{position(tail)}
	for current := tail; ; {
		previous, exists := parent(current)
		if !exists {
			break
		}

		path = append(path, position(previous))
		current = previous
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
