package main

// disjointSet is a quick-find union-find. parent holds, for every slot, the
// slot id of its set; unions rewrite all of them so lookups are one hop.
type disjointSet[T comparable] struct {
	index  map[T]int
	parent []int
	size   []int
}

func newDisjointSet[T comparable]() *disjointSet[T] {
	return &disjointSet[T]{
		index:  make(map[T]int),
		parent: make([]int, 0),
		size:   make([]int, 0),
	}
}

// addSetWith does not check for an existing entry: a second insert of the
// same element repoints the index and leaves the old slot orphaned.
func (d *disjointSet[T]) addSetWith(e T) {
	d.index[e] = len(d.parent)
	d.parent = append(d.parent, len(d.parent))
	d.size = append(d.size, 1)
}

func (d *disjointSet[T]) setOf(e T) (int, bool) {
	i, ok := d.index[e]
	if !ok {
		return 0, false
	}
	return d.parent[i], true
}

// unionSetsContaining merges a's set into b's. b's set id survives.
func (d *disjointSet[T]) unionSetsContaining(a, b T) {
	sa, ok := d.setOf(a)
	if !ok {
		return
	}
	sb, ok := d.setOf(b)
	if !ok {
		return
	}
	if sa == sb {
		return
	}
	for i := range d.parent {
		if d.parent[i] == sa {
			d.parent[i] = sb
		}
	}
	d.size[sb] += d.size[sa]
}

func (d *disjointSet[T]) inSameSet(a, b T) bool {
	sa, ok := d.setOf(a)
	if !ok {
		return false
	}
	sb, ok := d.setOf(b)
	if !ok {
		return false
	}
	return sa == sb
}

// setSize reports the counter kept for e's set id. It is bookkeeping only,
// slots that stopped being a set id keep their stale value.
func (d *disjointSet[T]) setSize(e T) (int, bool) {
	s, ok := d.setOf(e)
	if !ok {
		return 0, false
	}
	return d.size[s], true
}

func (d *disjointSet[T]) slots() int {
	return len(d.parent)
}
