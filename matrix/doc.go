// Package matrix reads and writes graphs as textual adjacency matrices.
//
// A matrix of N rows, each with N comma-separated numbers, describes an
// undirected graph on vertices "1".."N" (labelled "V1".."VN"). Only the
// upper triangle is read: a positive cell (i, j) with i < j becomes an edge
// of that weight, zero means no edge, the diagonal is ignored.
//
//	0,1,0,1
//	1,0,1,0
//	0,1,0,1
//	1,0,1,0
//
// is the 4-cycle 1-2-3-4-1. WithStrictSymmetry additionally requires the
// lower triangle to mirror the upper one.
//
// Format is the inverse: it writes a graph back in vertex insertion order.
package matrix
