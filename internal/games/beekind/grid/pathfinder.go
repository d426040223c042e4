package grid

// node is an entry on the open or closed list.
type node struct {
	id     int
	x, y   int
	parent int // cell id, -1 for the source
	g, h   int
	f      int
}

// FindPath runs A* from src to dst over 4-way adjacency and returns the
// route as cell ids, source first and destination last. It returns nil
// when dst is unreachable.
//
// Neighbours are explored up, right, down, left. Among open nodes the first
// one holding the lowest f wins. A node is never reopened once it has been
// put on either list, even if a cheaper route to it turns up later.
func (g *Grid) FindPath(src, dst int) []int {
	if g.w == 0 || g.h == 0 {
		return nil
	}

	dx, dy := g.XY(dst)
	var open, closed []node

	manhattan := func(x, y int) int {
		return abs(x-dx) + abs(y-dy)
	}

	add := func(id, x, y, parent, cost int) {
		h := manhattan(x, y)
		open = append(open, node{id: id, x: x, y: y, parent: parent, g: cost, h: h, f: cost + h})
	}

	cheapest := func() node {
		idx := 0
		for i := 1; i < len(open); i++ {
			if open[i].f < open[idx].f {
				idx = i
			}
		}
		return open[idx]
	}

	onList := func(list []node, id int) bool {
		for i := range list {
			if list[i].id == id {
				return true
			}
		}
		return false
	}

	closeNode := func(id int) {
		for i := range open {
			if open[i].id == id {
				closed = append(closed, open[i])
				open = append(open[:i], open[i+1:]...)
				return
			}
		}
	}

	parentOf := func(id int) int {
		for i := range closed {
			if closed[i].id == id {
				return closed[i].parent
			}
		}
		for i := range open {
			if open[i].id == id {
				return open[i].parent
			}
		}
		return -1
	}

	sx, sy := g.XY(src)
	add(src, sx, sy, -1, 0)
	n := cheapest()

	for n.id != dst && len(open) > 0 {
		n = cheapest()
		if n.id == dst {
			break
		}

		for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			cx, cy := n.x+d[0], n.y+d[1]
			if g.Blocked(cx, cy) {
				continue
			}
			c := g.ID(cx, cy)
			if onList(open, c) || onList(closed, c) {
				continue
			}
			add(c, cx, cy, n.id, n.g+1)
		}

		closeNode(n.id)
	}

	if n.id != dst {
		return nil
	}

	path := []int{dst}
	for prev := parentOf(dst); prev != -1; prev = parentOf(prev) {
		path = append(path, prev)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
