package resolver

// unionFind is a rank-based union-find over arena indices, augmented with an
// explicit member list per root so that merge constraints can be checked
// against whole components before a union happens.
type unionFind struct {
	parent  []int
	rank    []int
	members [][]int // populated only at root indices
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent:  make([]int, n),
		rank:    make([]int, n),
		members: make([][]int, n),
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.members[i] = []int{i}
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(x, y int) {
	px, py := uf.find(x), uf.find(y)
	if px == py {
		return
	}
	if uf.rank[px] < uf.rank[py] {
		px, py = py, px
	}
	uf.parent[py] = px
	if uf.rank[px] == uf.rank[py] {
		uf.rank[px]++
	}
	uf.members[px] = append(uf.members[px], uf.members[py]...)
	uf.members[py] = nil
}

func (uf *unionFind) sameSet(x, y int) bool {
	return uf.find(x) == uf.find(y)
}

// componentOf returns the member indices of x's component.
func (uf *unionFind) componentOf(x int) []int {
	return uf.members[uf.find(x)]
}
