// Package gloc is an in-memory toolkit for route inspection on undirected
// graphs: finding a closed walk that covers every edge at least once.
//
// Everything is organized under subpackages:
//
//	core/  Graph, Vertex, Edge; ordered adjacency, clones, contraction
//	bfs/  breadth-first traversal with hooks, reachability, components
//	dijkstra/  weighted shortest paths
//	matching/  matchings as edge sets, augmentation
//	blossom/  Edmonds' blossom maximum-cardinality matching
//	postman/  Chinese postman solver and Fleury Euler walk
//	matrix/  adjacency-matrix text codec
//	builder/  random connected graphs and fixed shapes
//	cmd/postman  command line front end
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
// is already Eulerian; its tour is A B C D A. Remove C–D and the odd
// vertices C and D must be paired before a tour exists.
package gloc
