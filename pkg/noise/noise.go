// Package noise provides seeded 2D simplex noise, used by the decorators
// for organic scatter densities.
//
// Simplex noise implementation based on the original algorithm by Ken
// Perlin. Produces values in the range [-1, 1].
package noise

// grad2 are gradient vectors for 2D simplex noise.
var grad2 = [12][2]float64{
	{1, 1},
	{-1, 1},
	{1, -1},
	{-1, -1},
	{1, 0},
	{-1, 0},
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
	{0, 1},
	{0, -1},
}

// Generator produces deterministic simplex noise from a seed.
type Generator struct {
	perm [512]int
}

// New creates a noise generator with a seeded permutation table.
func New(seed int64) *Generator {
	g := &Generator{}

	// Initialize with identity permutation.
	var p [256]int
	for i := range p {
		p[i] = i
	}

	// Fisher-Yates shuffle with seed-derived random.
	s := seed
	for i := 255; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407 // LCG
		j := int((s>>33)&0x7FFFFFFF) % (i + 1)
		if j < 0 {
			j = -j
		}
		p[i], p[j] = p[j], p[i]
	}

	// Double the permutation table for wrapping.
	for i := 0; i < 512; i++ {
		g.perm[i] = p[i&255]
	}
	return g
}

// At returns 2D simplex noise for the given coordinates.
// Output is in the range [-1, 1].
func (g *Generator) At(x, y float64) float64 {
	const (
		f2 = 0.36602540378443864676 // (sqrt(3) - 1) / 2
		g2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
	)

	// Skew input space to determine simplex cell.
	s := (x + y) * f2
	i := fastFloor(x + s)
	j := fastFloor(y + s)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Determine which simplex we are in.
	var i1, j1 int
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := i & 255
	jj := j & 255
	gi0 := g.perm[ii+g.perm[jj]] % 12
	gi1 := g.perm[ii+i1+g.perm[jj+j1]] % 12
	gi2 := g.perm[ii+1+g.perm[jj+1]] % 12

	var n0, n1, n2 float64

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * dot2(grad2[gi0], x0, y0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * dot2(grad2[gi1], x1, y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * dot2(grad2[gi2], x2, y2)
	}

	return 70.0 * (n0 + n1 + n2)
}

// Octave layers multiple octaves of noise for natural-looking densities.
// Returns a value roughly in [-1, 1].
func (g *Generator) Octave(x, y float64, octaves int, persistence float64) float64 {
	var total, maxVal float64
	frequency := 1.0
	amplitude := 1.0

	for range octaves {
		total += g.At(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2.0
	}
	return total / maxVal
}

func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}

func dot2(g [2]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}
