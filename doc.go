// Package alnspace is an in-memory toolkit for multiple sequence
// alignments — rectangular sequence matrices plus the coordinate
// bookkeeping that keeps alignment columns traceable back to their
// source positions.
//
// 🚀 What is alnspace?
//
//	A small, focused library that brings together:
//		• seqmatrix/   — rectangular matrix of equal-length sequences with
//		  row/column select, delete, retain, reorder, chunking and concat
//		• linspace/    — labeled half-open intervals (blocks) and a
//		  compressed linear space over them, with positional and
//		  block-level edits
//		• coordspace/  — an expanded per-position coordinate space where
//		  gaps are an explicit -1 sentinel
//		• fasta/       — a forgiving FASTA reader feeding the matrix
//		• luabind/     — Lua bindings over all of the above
//		• axis/        — shared index normalization (negative indices
//		  count from the end)
//
// ✨ Why choose alnspace?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – validate-then-commit mutations, sentinel errors
//     matched with errors.Is
//   - Lightweight – testify for tests, gopher-lua for scripting, nothing else
//
// Quick ASCII example:
//
//	rows            columns 0 and 2 removed
//	a t c g         t g
//	a t g g   ──►   t g
//	a t c c         t c
//	t a g c         a c
//
// Dive into the per-package doc.go files for contracts, error semantics
// and complexity notes.
//
//	go get github.com/verdantis/alnspace
package alnspace
