package corrmap

import (
	"math"
)

// Merge is one step of an agglomerative clustering: clusters Left and Right
// are joined at a given Height into a new cluster of Size leaves.
//
// Leaves are numbered 0..n-1 and the cluster created by the k-th merge is
// numbered n+k.
type Merge struct {
	Left, Right int
	Height      float64
	Size        int
}

// Dendrogram is the merge tree of a hierarchical clustering of n leaves.
type Dendrogram struct {
	Leaves int
	Merges []Merge
}

// Ward clusters the rows of m with Ward's minimum variance linkage, each row
// being the vector of correlations of a label with all the others.
// Undefined coefficients are treated as 0.
func Ward(m *Matrix) *Dendrogram {
	rows := make([][]float64, m.Len())
	for i := range rows {
		rows[i] = m.Row(i)
		for j, v := range rows[i] {
			if math.IsNaN(v) {
				rows[i][j] = 0
			}
		}
	}
	return ward(rows)
}

// ward clusters points, heights are those of scipy's linkage(method="ward"):
// merging A and B costs sqrt(2|A||B|/(|A|+|B|)) times the distance between
// their centroids. Ties go to the lowest pair of cluster numbers.
func ward(rows [][]float64) *Dendrogram {
	n := len(rows)
	d := &Dendrogram{Leaves: n}
	if n < 2 {
		return d
	}

	// squared euclidean distances between every (possibly merged) cluster
	total := 2*n - 1
	dist := make([][]float64, total)
	for i := range dist {
		dist[i] = make([]float64, total)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := 0.0
			for k := range rows[i] {
				diff := rows[i][k] - rows[j][k]
				s += diff * diff
			}
			dist[i][j], dist[j][i] = s, s
		}
	}

	size := make([]int, total)
	active := make([]bool, total)
	for i := 0; i < n; i++ {
		size[i], active[i] = 1, true
	}

	for k := n; k < total; k++ {
		a, b := -1, -1
		best := math.Inf(1)
		for i := 0; i < k; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < k; j++ {
				if active[j] && dist[i][j] < best {
					a, b, best = i, j, dist[i][j]
				}
			}
		}

		size[k] = size[a] + size[b]
		active[a], active[b], active[k] = false, false, true
		d.Merges = append(d.Merges, Merge{Left: a, Right: b, Height: math.Sqrt(best), Size: size[k]})

		// Lance-Williams update for Ward's linkage on squared distances.
		for c := 0; c < k; c++ {
			if !active[c] {
				continue
			}
			sa, sb, sc := float64(size[a]), float64(size[b]), float64(size[c])
			v := ((sa+sc)*dist[a][c] + (sb+sc)*dist[b][c] - sc*best) / (sa + sb + sc)
			dist[k][c], dist[c][k] = v, v
		}
	}
	return d
}

// Order returns the leaves in dendrogram order: left subtree first.
func (d *Dendrogram) Order() []int {
	if d.Leaves == 0 {
		return nil
	}
	if len(d.Merges) == 0 {
		order := make([]int, d.Leaves)
		for i := range order {
			order[i] = i
		}
		return order
	}
	order := make([]int, 0, d.Leaves)
	var walk func(node int)
	walk = func(node int) {
		if node < d.Leaves {
			order = append(order, node)
			return
		}
		merge := d.Merges[node-d.Leaves]
		walk(merge.Left)
		walk(merge.Right)
	}
	walk(d.Leaves + len(d.Merges) - 1)
	return order
}

// Height returns the merge height of a node, 0 for leaves.
func (d *Dendrogram) Height(node int) float64 {
	if node < d.Leaves {
		return 0
	}
	return d.Merges[node-d.Leaves].Height
}

// MaxHeight returns the height of the root merge.
func (d *Dendrogram) MaxHeight() float64 {
	h := 0.0
	for _, m := range d.Merges {
		h = math.Max(h, m.Height)
	}
	return h
}
