package luabind_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"

	"github.com/verdantis/alnspace/luabind"
)

func newState(t *testing.T) *lua.LState {
	t.Helper()
	L := lua.NewState()
	t.Cleanup(L.Close)
	luabind.Open(L)

	return L
}

// evalString runs a Lua expression and returns its string value.
func evalString(t *testing.T, L *lua.LState, expr string) string {
	t.Helper()
	require.NoError(t, L.DoString("return "+expr))
	v := L.Get(-1)
	L.Pop(1)

	return lua.LVAsString(v)
}

func TestSeqMatrix_RoundTrip(t *testing.T) {
	L := newState(t)
	require.NoError(t, L.DoString(`
		m = alnspace.seqmatrix.new{"atcg", "atgg", "atcc", "tagc"}
		m:remove_cols({0, 2})
	`))
	require.Equal(t, "4", evalString(t, L, "m:nrows()"))
	require.Equal(t, "2", evalString(t, L, "m:ncols()"))
	require.Equal(t, "tg", evalString(t, L, "m:get_row(0)"))
	require.Equal(t, "ac", evalString(t, L, "m:get_row(-1)"))
}

func TestSeqMatrix_ConstructorError(t *testing.T) {
	L := newState(t)
	err := L.DoString(`alnspace.seqmatrix.new{"atcg", "at"}`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "length mismatch")
}

func TestSeqMatrix_IndexErrorSurfaces(t *testing.T) {
	L := newState(t)
	require.NoError(t, L.DoString(`m = alnspace.seqmatrix.new{"atcg", "atgg"}`))
	err := L.DoString(`m:get_row(5)`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "5 not in [0, 2)")
}

func TestSeqMatrix_ConcatAndCopy(t *testing.T) {
	L := newState(t)
	require.NoError(t, L.DoString(`
		a = alnspace.seqmatrix.new{"at", "cg"}
		b = alnspace.seqmatrix.new{"xx", "yy"}
		c = a:copy()
		a:concat(b)
	`))
	require.Equal(t, "atxx", evalString(t, L, "a:get_row(0)"))
	require.Equal(t, "at", evalString(t, L, "c:get_row(0)")) // copy untouched
}

func TestBlockSpace_CompressAndFormat(t *testing.T) {
	L := newState(t)
	require.NoError(t, L.DoString(`
		s = alnspace.linspace.from_arrays({0,1,2,4,5}, {"a","a","a","a","a"})
	`))
	require.Equal(t, "a=0:3;a=4:6", evalString(t, L, "s:to_block_str()"))
	require.Equal(t, "5", evalString(t, L, "s:len()"))
	require.Equal(t, "0", evalString(t, L, "s:lb()"))
	require.Equal(t, "6", evalString(t, L, "s:ub()"))
}

func TestBlockSpace_PositionalEdit(t *testing.T) {
	L := newState(t)
	require.NoError(t, L.DoString(`
		s = alnspace.linspace.new(0, 6, "x")
		s:remove({2})
	`))
	require.Equal(t, "x=0:2;x=3:6", evalString(t, L, "s:to_block_str()"))
}

func TestBlock_Methods(t *testing.T) {
	L := newState(t)
	require.NoError(t, L.DoString(`b = alnspace.linspace.block("s", 2, 5)`))
	require.Equal(t, "s=2:5", evalString(t, L, "b:to_extended_str()"))
	require.Equal(t, "s=3", evalString(t, L, "b:to_compressed_str()"))
	require.Equal(t, "true", evalString(t, L, "tostring(b:in_block(4))"))
	require.Equal(t, "false", evalString(t, L, "tostring(b:in_block(5))"))
}

func TestBlock_ConstructorError(t *testing.T) {
	L := newState(t)
	err := L.DoString(`alnspace.linspace.block("s", 6, 5)`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "start must not exceed stop")
}

func TestCoordSpace_BlocksAndStrings(t *testing.T) {
	L := newState(t)
	require.NoError(t, L.DoString(`
		c = alnspace.coordspace.from_arrays(
			{0, 1, 2, -1, -1, 5, 6},
			{"s", "s", "s", "g", "g", "s", "s"}
		)
	`))
	require.Equal(t, "7", evalString(t, L, "c:len_all()"))
	require.Equal(t, "2", evalString(t, L, "c:len_gap()"))
	require.Equal(t, "0,1,2,-1,-1,5,6", evalString(t, L, "c:to_array_str()"))
	require.Equal(t, "s=0:3,g=0:2,s=5:7", evalString(t, L, "c:to_extended_str()"))
	require.Equal(t, "3", evalString(t, L, "#c:to_blocks()"))
}

func TestCoordSpace_FromBlocksOfUserdata(t *testing.T) {
	L := newState(t)
	require.NoError(t, L.DoString(`
		blocks = alnspace.coordspace.from_arrays(
			{0, 1, -1}, {"s", "s", "g"}
		):to_blocks()
		c2 = alnspace.coordspace.from_blocks(blocks)
	`))
	require.Equal(t, "0,1,-1", evalString(t, L, "c2:to_array_str()"))
}

func TestCoordSpace_BadLabel(t *testing.T) {
	L := newState(t)
	err := L.DoString(`alnspace.coordspace.from_arrays({0}, {"x"})`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported label")
}

func TestFasta_ParseFileIntoMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aln.fasta")
	data := ">a first\natcg\n>b\natgg\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	L := newState(t)
	require.NoError(t, L.DoString(`
		records = alnspace.fasta.parse_file("`+path+`")
		m = alnspace.seqmatrix.new(alnspace.fasta.sequences(records))
	`))
	require.Equal(t, "2", evalString(t, L, "#records"))
	require.Equal(t, "a", evalString(t, L, "records[1].id"))
	require.Equal(t, "first", evalString(t, L, "records[1].description"))
	require.Equal(t, "2", evalString(t, L, "m:nrows()"))
	require.Equal(t, "4", evalString(t, L, "m:ncols()"))
}
