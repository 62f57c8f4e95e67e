// SPDX-License-Identifier: MIT
// Package: shapegen/shape
//
// indexed.go — exact uniform draws for a GCD target without a product target.
//
// With m admissible values (all multiples of gcd, gcd among them) a tuple is
// feasible iff some axis equals gcd. Counting by the position p of the FIRST
// such axis:
//
//	axes 0..p-1   — any of the m-1 values other than gcd
//	axis p        — gcd
//	axes p+1..n-1 — any of the m values
//
// gives blocks of (m-1)^p · m^(n-1-p) tuples, m^n - (m-1)^n in total. A
// uniform index over that range, decoded in mixed radix, is a uniform
// feasible tuple. Counts use math/big: with wide bounds m^n exceeds int.

package shape

import "math/big"

// limbBits is the width of one Intn draw when building a big index.
const limbBits = 31

// feasibleSpace indexes every feasible tuple of a GCD-only request.
type feasibleSpace struct {
	set progression
	gcd int
	n   int

	// blocks[p] = (m-1)^p · m^(n-1-p); total is their sum.
	blocks []*big.Int
	total  *big.Int
	// small is total when it fits in an int, else 0.
	small int
}

// newFeasibleSpace precomputes the block sizes for n axes.
//
// Complexity: O(n) big multiplications.
func newFeasibleSpace(set progression, gcdValue, n int) *feasibleSpace {
	m := big.NewInt(int64(set.count))
	m1 := big.NewInt(int64(set.count - 1))
	f := &feasibleSpace{
		set:    set,
		gcd:    gcdValue,
		n:      n,
		blocks: make([]*big.Int, n),
		total:  new(big.Int),
	}
	for p := 0; p < n; p++ {
		b := new(big.Int).Exp(m1, big.NewInt(int64(p)), nil)
		b.Mul(b, new(big.Int).Exp(m, big.NewInt(int64(n-1-p)), nil))
		f.blocks[p] = b
		f.total.Add(f.total, b)
	}
	if f.total.IsInt64() {
		f.small = int(f.total.Int64())
	}
	return f
}

// draw fills out with a uniform feasible tuple. When the count fits in an
// int it costs exactly one Intn call.
func (f *feasibleSpace) draw(src Source, out Shape) {
	var k *big.Int
	if f.small > 0 {
		k = big.NewInt(int64(src.Intn(f.small)))
	} else {
		k = uniformBig(src, f.total)
	}
	f.decode(out, k)
}

// decode writes the k-th feasible tuple into out; 0 ≤ k < total. k is consumed.
func (f *feasibleSpace) decode(out Shape, k *big.Int) {
	m := big.NewInt(int64(f.set.count))
	m1 := big.NewInt(int64(f.set.count - 1))
	skip := f.set.indexOf(f.gcd)
	r := new(big.Int)

	for p := 0; p < f.n; p++ {
		if k.Cmp(f.blocks[p]) >= 0 {
			k.Sub(k, f.blocks[p])
			continue
		}

		for i := f.n - 1; i > p; i-- {
			k.QuoRem(k, m, r)
			out[i] = f.set.at(int(r.Int64()))
		}
		out[p] = f.gcd
		for i := p - 1; i >= 0; i-- {
			k.QuoRem(k, m1, r)
			d := int(r.Int64())
			if d >= skip {
				d++
			}
			out[i] = f.set.at(d)
		}
		return
	}
}

// uniformBig draws a uniform integer in [0, t) for t > 0 by filling
// t.BitLen() random bits and retrying when the value reaches t.
// Each round succeeds with probability above 1/2.
func uniformBig(src Source, t *big.Int) *big.Int {
	bits := t.BitLen()
	limbs := (bits + limbBits - 1) / limbBits
	limb := new(big.Int)
	for {
		v := new(big.Int)
		for i := 0; i < limbs; i++ {
			v.Lsh(v, limbBits)
			v.Or(v, limb.SetInt64(int64(src.Intn(1<<limbBits))))
		}
		v.Rsh(v, uint(limbs*limbBits-bits))
		if v.Cmp(t) < 0 {
			return v
		}
	}
}
