package clique

import "github.com/bits-and-blooms/bitset"

// iterFrame is one suspended level of the search: its working sets, the
// branch candidates fixed at entry, the scan position within them, and
// the R length to restore when the level pops.
type iterFrame struct {
	p, x *bitset.BitSet
	cand *bitset.BitSet
	next uint
	mark int
}

// iterative explores (R, P, X) with an explicit frame stack instead of
// recursion, for graphs whose search depth would strain the goroutine
// stack. Branch order, emissions, and errors match extend exactly.
func (e *engine) iterative(r []int, p, x *bitset.BitSet) error {
	stack := make([]*iterFrame, 0, e.bound+1)

	// enter mirrors the head of extend: cancellation check, leaf
	// emission, otherwise a pushed frame with its branch candidates.
	enter := func(p, x *bitset.BitSet, mark int) error {
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}
		if p.None() && x.None() {
			return e.report(r)
		}
		cand := p.Clone()
		if e.opts.Pivot {
			cand.InPlaceDifference(e.masks[e.pivot(p, x)])
		}
		stack = append(stack, &iterFrame{p: p, x: x, cand: cand, mark: mark})

		return nil
	}

	if err := enter(p, x, len(r)); err != nil {
		return err
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]

		// 1. Next branch candidate at this level, or pop when exhausted.
		v, ok := f.cand.NextSet(f.next)
		if !ok {
			stack = stack[:len(stack)-1]
			r = r[:f.mark]
			continue
		}
		f.next = v + 1

		// 2. Narrow the working sets to v's mutual neighborhood and move
		//    v from P to X for the later branches of this level.
		nv := e.masks[v]
		np := f.p.Intersection(nv)
		nx := f.x.Intersection(nv)
		f.p.Clear(v)
		f.x.Set(v)

		// 3. Descend. A leaf emits inside enter without pushing, so the
		//    stack depth tells whether R must be unwound here.
		r = append(r, int(v))
		depth := len(stack)
		if err := enter(np, nx, len(r)-1); err != nil {
			return err
		}
		if len(stack) == depth {
			r = r[:len(r)-1]
		}
	}

	return nil
}
