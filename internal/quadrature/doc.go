// Package quadrature implements the midpoint-rule kernel used by both drivers,
// together with the fixed problem definition and the contiguous partitioning
// of that problem into per-worker ranges.
package quadrature
