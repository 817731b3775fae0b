// Package toporder is your in-memory toolkit for dependency ordering —
// build a directed graph, get back a deterministic load order, or a
// precise report of every cycle that makes one impossible.
//
// 🚀 What is toporder?
//
//	A small, thread-safe library that brings together:
//		• Core primitives: a generic graph container over any comparable node type
//		• Cycle analysis: strongly connected components (iterative Tarjan)
//		• Topological sort: dependency-first resolution with optional tie-break
//
// ✨ Why choose toporder?
//
//   - Deterministic – insertion-order enumeration, comparator-driven ties
//   - Complete diagnostics – every cyclic component reported at once, not
//     just the first back edge
//   - Rock-solid guarantees – R/W locks on the container, value-type errors
//   - Pure Go – no cgo, generics throughout, interfaces at the boundaries
//
// Under the hood, everything is organized under three subpackages:
//
//	digraph/  — the mutable graph container: nodes, edges, policies, Clone
//	scc/      — strongly-connected-component decomposition
//	toposort/ — shape validation, cycle gate, and the ordering resolver
//
// Quick ASCII example:
//
//	    A ──▶ C ──▶ D
//	          ▲
//	    B ────┘
//
//	A and B must both run before C, and C before D; toposort.Sort
//	returns [A B C D] (or [B A C D] — add WithTieBreak to pick one).
//
// Dive into README.md for full examples and the package-by-package tour.
//
//	go get github.com/katalvlaran/toporder
package toporder
