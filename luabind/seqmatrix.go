package luabind

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/verdantis/alnspace/seqmatrix"
)

const seqMatrixTypeName = "alnspace.seqmatrix"

func registerSeqMatrixType(L *lua.LState) {
	mt := L.NewTypeMetatable(seqMatrixTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), seqMatrixMethods))
}

// seqMatrixModule builds the constructor table for the seqmatrix submodule.
func seqMatrixModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	L.SetField(mod, "new", L.NewFunction(newSeqMatrix))

	return mod
}

// new(rows) -> seqmatrix
func newSeqMatrix(L *lua.LState) int {
	rows := checkStringTable(L, 1)
	m, err := seqmatrix.New(rows)
	if err != nil {
		L.RaiseError("seqmatrix.new: %v", err)
		return 0
	}
	pushSeqMatrix(L, m)

	return 1
}

func pushSeqMatrix(L *lua.LState, m *seqmatrix.SeqMatrix) {
	ud := L.NewUserData()
	ud.Value = m
	L.SetMetatable(ud, L.GetTypeMetatable(seqMatrixTypeName))
	L.Push(ud)
}

func checkSeqMatrix(L *lua.LState) *seqmatrix.SeqMatrix {
	ud := L.CheckUserData(1)
	if m, ok := ud.Value.(*seqmatrix.SeqMatrix); ok {
		return m
	}
	L.ArgError(1, "seqmatrix expected")

	return nil
}

var seqMatrixMethods = map[string]lua.LGFunction{
	"nrows":        seqMatrixNRows,
	"ncols":        seqMatrixNCols,
	"get_row":      seqMatrixGetRow,
	"get_rows":     seqMatrixGetRows,
	"remove_rows":  seqMatrixRemoveRows,
	"retain_rows":  seqMatrixRetainRows,
	"remove_cols":  seqMatrixRemoveCols,
	"retain_cols":  seqMatrixRetainCols,
	"reorder_rows": seqMatrixReorderRows,
	"reorder_cols": seqMatrixReorderCols,
	"get_chunk":    seqMatrixGetChunk,
	"get_chunks":   seqMatrixGetChunks,
	"get_col":      seqMatrixGetCol,
	"get_cols":     seqMatrixGetCols,
	"concat":       seqMatrixConcat,
	"invert_rows":  seqMatrixInvertRows,
	"invert_cols":  seqMatrixInvertCols,
	"copy":         seqMatrixCopy,
}

// nrows() -> number
func seqMatrixNRows(L *lua.LState) int {
	L.Push(lua.LNumber(checkSeqMatrix(L).NRows()))
	return 1
}

// ncols() -> number
func seqMatrixNCols(L *lua.LState) int {
	L.Push(lua.LNumber(checkSeqMatrix(L).NCols()))
	return 1
}

// get_row(i) -> string
func seqMatrixGetRow(L *lua.LState) int {
	m := checkSeqMatrix(L)
	row, err := m.Row(L.CheckInt(2))
	if err != nil {
		L.RaiseError("get_row: %v", err)
		return 0
	}
	L.Push(lua.LString(row))

	return 1
}

// get_rows(ids) -> {string, ...}
func seqMatrixGetRows(L *lua.LState) int {
	m := checkSeqMatrix(L)
	rows, err := m.Rows(checkIntTable(L, 2))
	if err != nil {
		L.RaiseError("get_rows: %v", err)
		return 0
	}
	pushStringTable(L, rows)

	return 1
}

// seqMatrixMutate adapts the in-place id-list operations to one shape.
func seqMatrixMutate(L *lua.LState, name string, op func(*seqmatrix.SeqMatrix, []int) error) int {
	m := checkSeqMatrix(L)
	if err := op(m, checkIntTable(L, 2)); err != nil {
		L.RaiseError("%s: %v", name, err)
		return 0
	}

	return 0
}

func seqMatrixRemoveRows(L *lua.LState) int {
	return seqMatrixMutate(L, "remove_rows", (*seqmatrix.SeqMatrix).RemoveRows)
}

func seqMatrixRetainRows(L *lua.LState) int {
	return seqMatrixMutate(L, "retain_rows", (*seqmatrix.SeqMatrix).RetainRows)
}

func seqMatrixRemoveCols(L *lua.LState) int {
	return seqMatrixMutate(L, "remove_cols", (*seqmatrix.SeqMatrix).RemoveCols)
}

func seqMatrixRetainCols(L *lua.LState) int {
	return seqMatrixMutate(L, "retain_cols", (*seqmatrix.SeqMatrix).RetainCols)
}

func seqMatrixReorderRows(L *lua.LState) int {
	return seqMatrixMutate(L, "reorder_rows", (*seqmatrix.SeqMatrix).ReorderRows)
}

func seqMatrixReorderCols(L *lua.LState) int {
	return seqMatrixMutate(L, "reorder_cols", (*seqmatrix.SeqMatrix).ReorderCols)
}

// get_chunk(id, size) -> {string, ...}
func seqMatrixGetChunk(L *lua.LState) int {
	m := checkSeqMatrix(L)
	chunk, err := m.Chunk(L.CheckInt(2), L.CheckInt(3))
	if err != nil {
		L.RaiseError("get_chunk: %v", err)
		return 0
	}
	pushStringTable(L, chunk)

	return 1
}

// get_chunks(ids, size) -> {{string, ...}, ...}
func seqMatrixGetChunks(L *lua.LState) int {
	m := checkSeqMatrix(L)
	chunks, err := m.Chunks(checkIntTable(L, 2), L.CheckInt(3))
	if err != nil {
		L.RaiseError("get_chunks: %v", err)
		return 0
	}
	outer := L.NewTable()
	for _, chunk := range chunks {
		inner := L.NewTable()
		for _, s := range chunk {
			inner.Append(lua.LString(s))
		}
		outer.Append(inner)
	}
	L.Push(outer)

	return 1
}

// get_col(i) -> {string, ...}
func seqMatrixGetCol(L *lua.LState) int {
	m := checkSeqMatrix(L)
	col, err := m.Col(L.CheckInt(2))
	if err != nil {
		L.RaiseError("get_col: %v", err)
		return 0
	}
	pushStringTable(L, col)

	return 1
}

// get_cols(ids) -> {{string, ...}, ...}
func seqMatrixGetCols(L *lua.LState) int {
	m := checkSeqMatrix(L)
	cols, err := m.Cols(checkIntTable(L, 2))
	if err != nil {
		L.RaiseError("get_cols: %v", err)
		return 0
	}
	outer := L.NewTable()
	for _, col := range cols {
		inner := L.NewTable()
		for _, s := range col {
			inner.Append(lua.LString(s))
		}
		outer.Append(inner)
	}
	L.Push(outer)

	return 1
}

// concat(other, ...) appends the operands' rows column-wise in place.
func seqMatrixConcat(L *lua.LState) int {
	m := checkSeqMatrix(L)
	others := make([]*seqmatrix.SeqMatrix, 0, L.GetTop()-1)
	for n := 2; n <= L.GetTop(); n++ {
		ud := L.CheckUserData(n)
		o, ok := ud.Value.(*seqmatrix.SeqMatrix)
		if !ok {
			L.ArgError(n, "seqmatrix expected")
			return 0
		}
		others = append(others, o)
	}
	if err := m.Concat(others...); err != nil {
		L.RaiseError("concat: %v", err)
		return 0
	}

	return 0
}

// invert_rows(ids) -> {number, ...}
func seqMatrixInvertRows(L *lua.LState) int {
	m := checkSeqMatrix(L)
	comp, err := m.InvertRows(checkIntTable(L, 2))
	if err != nil {
		L.RaiseError("invert_rows: %v", err)
		return 0
	}
	pushIntTable(L, comp)

	return 1
}

// invert_cols(ids) -> {number, ...}
func seqMatrixInvertCols(L *lua.LState) int {
	m := checkSeqMatrix(L)
	comp, err := m.InvertCols(checkIntTable(L, 2))
	if err != nil {
		L.RaiseError("invert_cols: %v", err)
		return 0
	}
	pushIntTable(L, comp)

	return 1
}

// copy() -> seqmatrix
func seqMatrixCopy(L *lua.LState) int {
	pushSeqMatrix(L, checkSeqMatrix(L).Copy())
	return 1
}
