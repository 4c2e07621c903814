// Package matrix defines the sentinel errors of the adjacency oracle.
package matrix

import "errors"

// Sentinel errors for oracle construction and queries.
var (
	// ErrNilGraph is returned when a nil graph is handed to the builder.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrCapacityExceeded is returned when NodeBound() is negative or so
	// large that the bound×bound bit matrix cannot be addressed.
	ErrCapacityExceeded = errors.New("matrix: node bound exceeds matrix capacity")

	// ErrInvalidNode is returned when a node maps outside the dense index
	// range [0, NodeBound()) — a violation of the capability contract.
	ErrInvalidNode = errors.New("matrix: node outside dense index range")
)
