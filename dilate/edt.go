package dilate

import "github.com/rcarve/carveplan/rimage"

const infDist = 1 << 30

// edtDilate implements the exact squared-Euclidean-distance-transform
// method: a 1-D lower-envelope-of-parabolas pass along each axis
// (Felzenszwalb & Huttenlocher), thresholded by radius^2.
func edtDilate(dst, src rimage.Image[uint8, rimage.Binary], radius2 int) {
	w, h := src.Width, src.Height

	// Column pass: for each column x, the squared distance (along y only)
	// from every cell to the nearest non-zero source cell in that column.
	colDist := make([]int, w*h)
	f := make([]int, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if src.AtUnchecked(x, y, 0) != 0 {
				f[y] = 0
			} else {
				f[y] = infDist
			}
		}
		d := dt1D(f)
		for y := 0; y < h; y++ {
			colDist[y*w+x] = d[y]
		}
	}

	// Row pass: combine the column-distance field across x to get the true
	// 2-D squared Euclidean distance to the nearest non-zero source cell.
	row := make([]int, w)
	for y := 0; y < h; y++ {
		copy(row, colDist[y*w:y*w+w])
		d := dt1D(row)
		for x := 0; x < w; x++ {
			v := uint8(0)
			if d[x] <= radius2 {
				v = 255
			}
			dst.SetUnchecked(x, y, 0, v)
		}
	}
}

// dt1D computes the 1-D squared distance transform of f: for each index q,
// the minimum over all p of (q-p)^2 + f[p]. f values are assumed to already
// be squared distances (0 at a seed, infDist elsewhere, or a value carried
// over from a previous pass).
func dt1D(f []int) []int {
	n := len(f)
	d := make([]int, n)
	if n == 0 {
		return d
	}

	v := make([]int, n)   // indices of envelope-defining parabolas
	z := make([]float64, n+1) // intersection boundaries between parabolas
	k := 0
	v[0] = 0
	z[0] = negInf
	z[1] = posInf

	for q := 1; q < n; q++ {
		s := intersect(f, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = posInf
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := q - v[k]
		d[q] = dq*dq + f[v[k]]
	}
	return d
}

const (
	negInf = -1e18
	posInf = 1e18
)

// intersect returns the x-coordinate where the parabolas rooted at p and q
// (with heights f[p], f[q]) cross.
func intersect(f []int, q, p int) float64 {
	return (float64(f[q]+q*q) - float64(f[p]+p*p)) / float64(2*(q-p))
}
