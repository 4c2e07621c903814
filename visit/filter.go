package visit

// NodeFilter decides whether a node participates in a filtered traversal.
//
// IncludeNode must be total and pure for the duration of one traversal:
// mutating a filter while a view built on it is being iterated is a caller
// error. New strategies are added by implementing this one method; the
// Filtered view never needs to change.
type NodeFilter[N comparable] interface {
	IncludeNode(n N) bool
}

// FilterFunc adapts an ordinary predicate closure into a NodeFilter.
type FilterFunc[N comparable] func(N) bool

// IncludeNode reports f(n).
func (f FilterFunc[N]) IncludeNode(n N) bool { return f(n) }

// MapFilter includes exactly the nodes recorded in M.
//
// Pair it with an IndexSet for dense bit-index membership or with a MapSet
// for hash membership; any VisitMap works. The set must not be mutated
// while a view built on the filter is being iterated.
type MapFilter[N comparable] struct {
	M VisitMap[N]
}

// IncludeNode reports whether n is recorded in the underlying set.
func (f MapFilter[N]) IncludeNode(n N) bool { return f.M.IsVisited(n) }
