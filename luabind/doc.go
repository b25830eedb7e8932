// Package luabind exposes the alnspace core types to Lua scripts via
// gopher-lua.
//
// Open registers a global "alnspace" table holding one submodule per core
// package:
//
//	alnspace.seqmatrix.new{"atcg", "atgg"}
//	alnspace.linspace.new(0, 4, "s")
//	alnspace.linspace.from_arrays({0,1,2}, {"s","s","s"})
//	alnspace.coordspace.new(0, 4)
//	alnspace.fasta.parse_file("aln.fasta")
//
// Constructors return userdata wrapping the Go values; methods delegate to
// the core API. Indices keep the core's 0-based semantics — they are NOT
// shifted to Lua's 1-based convention — and negative indices count from the
// end, exactly as in the core. Every core error is raised as a Lua error
// carrying the Go error text.
package luabind
