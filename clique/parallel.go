package clique

import (
	"strconv"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// branchJob is one top-level branch: the candidate committed to R plus
// the narrowed working sets the subtree owns outright.
type branchJob struct {
	v    int
	p, x *bitset.BitSet
}

// parallel decomposes the top level of the search exactly as the
// sequential engine would, then fans the branch subtrees out over
// opts.Workers goroutines. The shared engine state is read-only; every
// (R, P, X) triple is branch-private. Results land in per-branch slots
// and merge in branch order, deduplicated by set equality, so the
// emission sequence never depends on scheduling.
func (e *engine) parallel() error {
	// 1. Cancellation check at the root, as in the sequential engines.
	select {
	case <-e.opts.Ctx.Done():
		return e.opts.Ctx.Err()
	default:
	}

	p := e.nodes.Clone()
	x := bitset.New(uint(e.bound))

	// 2. Leaf at the root means the empty graph: one empty clique.
	if p.None() && x.None() {
		return e.report(nil)
	}

	// 3. Decompose: one job per top-level branch, with the same candidate
	//    order and P→X hand-off the sequential loop performs.
	cand := p.Clone()
	if e.opts.Pivot {
		cand.InPlaceDifference(e.masks[e.pivot(p, x)])
	}
	var jobs []branchJob
	for v, ok := cand.NextSet(0); ok; v, ok = cand.NextSet(v + 1) {
		nv := e.masks[v]
		jobs = append(jobs, branchJob{v: int(v), p: p.Intersection(nv), x: x.Intersection(nv)})
		p.Clear(v)
		x.Set(v)
	}

	// 4. Run the branches. Each worker drives a private engine copy whose
	//    sink appends into that branch's slot.
	var (
		wg      sync.WaitGroup
		results = make([][][]int, len(jobs))
		errs    = make([]error, len(jobs))
		feed    = make(chan int)
	)
	workers := e.opts.Workers
	if workers > len(jobs) {
		workers = len(jobs)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for bi := range feed {
				sub := *e
				sub.emit = func(c []int) error {
					results[bi] = append(results[bi], c)

					return nil
				}
				r := make([]int, 0, e.bound)
				r = append(r, jobs[bi].v)
				errs[bi] = sub.search(r, jobs[bi].p, jobs[bi].x)
			}
		}()
	}
	for bi := range jobs {
		feed <- bi
	}
	close(feed)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	// 5. Merge per-branch results in branch order, dropping any clique
	//    already seen as a set.
	seen := make(map[string]struct{}, len(jobs))
	for bi := range jobs {
		for _, c := range results[bi] {
			k := cliqueKey(c)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if err := e.emit(c); err != nil {
				return err
			}
		}
	}

	return nil
}

// cliqueKey canonicalizes a sorted index slice for set-equality checks.
func cliqueKey(c []int) string {
	var b strings.Builder
	for _, v := range c {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}

	return b.String()
}
