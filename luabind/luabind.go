package luabind

import (
	lua "github.com/yuin/gopher-lua"
)

// Open registers the alnspace userdata types and the global "alnspace"
// module table with its seqmatrix, linspace, coordspace, and fasta
// submodules.
func Open(L *lua.LState) {
	registerSeqMatrixType(L)
	registerBlockType(L)
	registerBlockSpaceType(L)
	registerCoordSpaceType(L)

	mod := L.NewTable()
	L.SetField(mod, "seqmatrix", seqMatrixModule(L))
	L.SetField(mod, "linspace", blockSpaceModule(L))
	L.SetField(mod, "coordspace", coordSpaceModule(L))
	L.SetField(mod, "fasta", fastaModule(L))
	L.SetGlobal("alnspace", mod)
}

// checkIntTable reads the table argument at position n as a list of integers.
func checkIntTable(L *lua.LState, n int) []int {
	tbl := L.CheckTable(n)
	out := make([]int, 0, tbl.Len())
	tbl.ForEach(func(_, v lua.LValue) {
		num, ok := v.(lua.LNumber)
		if !ok {
			L.ArgError(n, "list of integers expected")
		}
		out = append(out, int(num))
	})

	return out
}

// checkStringTable reads the table argument at position n as a list of strings.
func checkStringTable(L *lua.LState, n int) []string {
	tbl := L.CheckTable(n)
	out := make([]string, 0, tbl.Len())
	tbl.ForEach(func(_, v lua.LValue) {
		s, ok := v.(lua.LString)
		if !ok {
			L.ArgError(n, "list of strings expected")
		}
		out = append(out, string(s))
	})

	return out
}

func pushIntTable(L *lua.LState, values []int) {
	tbl := L.NewTable()
	for _, v := range values {
		tbl.Append(lua.LNumber(v))
	}
	L.Push(tbl)
}

func pushStringTable(L *lua.LState, values []string) {
	tbl := L.NewTable()
	for _, v := range values {
		tbl.Append(lua.LString(v))
	}
	L.Push(tbl)
}
