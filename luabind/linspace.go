package luabind

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/verdantis/alnspace/linspace"
)

const (
	blockTypeName      = "alnspace.block"
	blockSpaceTypeName = "alnspace.blockspace"
)

func registerBlockType(L *lua.LState) {
	mt := L.NewTypeMetatable(blockTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), blockMethods))
}

func registerBlockSpaceType(L *lua.LState) {
	mt := L.NewTypeMetatable(blockSpaceTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), blockSpaceMethods))
}

// blockSpaceModule builds the constructor table for the linspace submodule.
func blockSpaceModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	L.SetField(mod, "new", L.NewFunction(newBlockSpace))
	L.SetField(mod, "block", L.NewFunction(newBlock))
	L.SetField(mod, "from_arrays", L.NewFunction(blockSpaceFromArrays))
	L.SetField(mod, "from_blocks", L.NewFunction(blockSpaceFromBlocks))

	return mod
}

// block(label, start, stop) -> block
func newBlock(L *lua.LState) int {
	b, err := linspace.NewBlock(L.CheckString(1), L.CheckInt(2), L.CheckInt(3))
	if err != nil {
		L.RaiseError("linspace.block: %v", err)
		return 0
	}
	pushBlock(L, b)

	return 1
}

func pushBlock(L *lua.LState, b linspace.Block) {
	ud := L.NewUserData()
	ud.Value = b
	L.SetMetatable(ud, L.GetTypeMetatable(blockTypeName))
	L.Push(ud)
}

func checkBlockAt(L *lua.LState, n int) linspace.Block {
	ud := L.CheckUserData(n)
	if b, ok := ud.Value.(linspace.Block); ok {
		return b
	}
	L.ArgError(n, "block expected")

	return linspace.Block{}
}

var blockMethods = map[string]lua.LGFunction{
	"label":             blockLabel,
	"start":             blockStart,
	"stop":              blockStop,
	"len":               blockLen,
	"in_block":          blockContains,
	"to_array":          blockToArray,
	"to_compressed_str": blockCompressedStr,
	"to_extended_str":   blockExtendedStr,
	"to_array_str":      blockArrayStr,
}

func blockLabel(L *lua.LState) int {
	L.Push(lua.LString(checkBlockAt(L, 1).Label))
	return 1
}

func blockStart(L *lua.LState) int {
	L.Push(lua.LNumber(checkBlockAt(L, 1).Start))
	return 1
}

func blockStop(L *lua.LState) int {
	L.Push(lua.LNumber(checkBlockAt(L, 1).Stop))
	return 1
}

func blockLen(L *lua.LState) int {
	L.Push(lua.LNumber(checkBlockAt(L, 1).Len()))
	return 1
}

// in_block(i) -> boolean
func blockContains(L *lua.LState) int {
	L.Push(lua.LBool(checkBlockAt(L, 1).Contains(L.CheckInt(2))))
	return 1
}

func blockToArray(L *lua.LState) int {
	pushIntTable(L, checkBlockAt(L, 1).ToArray())
	return 1
}

func blockCompressedStr(L *lua.LState) int {
	L.Push(lua.LString(checkBlockAt(L, 1).CompressedString()))
	return 1
}

func blockExtendedStr(L *lua.LState) int {
	L.Push(lua.LString(checkBlockAt(L, 1).ExtendedString()))
	return 1
}

func blockArrayStr(L *lua.LState) int {
	L.Push(lua.LString(checkBlockAt(L, 1).ArrayString()))
	return 1
}

// new(start, stop, label) -> blockspace
func newBlockSpace(L *lua.LState) int {
	s, err := linspace.New(L.CheckInt(1), L.CheckInt(2), L.CheckString(3))
	if err != nil {
		L.RaiseError("linspace.new: %v", err)
		return 0
	}
	pushBlockSpace(L, s)

	return 1
}

// from_arrays(coords, labels) -> blockspace
func blockSpaceFromArrays(L *lua.LState) int {
	s, err := linspace.FromArrays(checkIntTable(L, 1), checkStringTable(L, 2))
	if err != nil {
		L.RaiseError("linspace.from_arrays: %v", err)
		return 0
	}
	pushBlockSpace(L, s)

	return 1
}

// from_blocks(blocks) -> blockspace
func blockSpaceFromBlocks(L *lua.LState) int {
	tbl := L.CheckTable(1)
	blocks := make([]linspace.Block, 0, tbl.Len())
	ok := true
	tbl.ForEach(func(_, v lua.LValue) {
		ud, isUD := v.(*lua.LUserData)
		if !isUD {
			ok = false
			return
		}
		b, isBlock := ud.Value.(linspace.Block)
		if !isBlock {
			ok = false
			return
		}
		blocks = append(blocks, b)
	})
	if !ok {
		L.ArgError(1, "list of blocks expected")
		return 0
	}
	pushBlockSpace(L, linspace.FromBlocks(blocks))

	return 1
}

func pushBlockSpace(L *lua.LState, s *linspace.BlockSpace) {
	ud := L.NewUserData()
	ud.Value = s
	L.SetMetatable(ud, L.GetTypeMetatable(blockSpaceTypeName))
	L.Push(ud)
}

func checkBlockSpace(L *lua.LState) *linspace.BlockSpace {
	ud := L.CheckUserData(1)
	if s, ok := ud.Value.(*linspace.BlockSpace); ok {
		return s
	}
	L.ArgError(1, "blockspace expected")

	return nil
}

var blockSpaceMethods = map[string]lua.LGFunction{
	"extract":             blockSpaceExtract,
	"remove":              blockSpaceRemove,
	"retain":              blockSpaceRetain,
	"extract_blocks":      blockSpaceExtractBlocks,
	"remove_blocks":       blockSpaceRemoveBlocks,
	"retain_blocks":       blockSpaceRetainBlocks,
	"lb":                  blockSpaceLB,
	"ub":                  blockSpaceUB,
	"len":                 blockSpaceLen,
	"nblocks":             blockSpaceNBlocks,
	"to_blocks":           blockSpaceToBlocks,
	"to_arrays":           blockSpaceToArrays,
	"to_block_str":        blockSpaceBlockStr,
	"to_compressed_str":   blockSpaceCompressedStr,
	"to_array_str":        blockSpaceArrayStr,
	"to_simple_block_str": blockSpaceSimpleBlockStr,
	"to_simple_array_str": blockSpaceSimpleArrayStr,
	"copy":                blockSpaceCopy,
}

// extract(positions) -> blockspace
func blockSpaceExtract(L *lua.LState) int {
	s := checkBlockSpace(L)
	got, err := s.Extract(checkIntTable(L, 2))
	if err != nil {
		L.RaiseError("extract: %v", err)
		return 0
	}
	pushBlockSpace(L, got)

	return 1
}

func blockSpaceRemove(L *lua.LState) int {
	if err := checkBlockSpace(L).Remove(checkIntTable(L, 2)); err != nil {
		L.RaiseError("remove: %v", err)
	}

	return 0
}

func blockSpaceRetain(L *lua.LState) int {
	if err := checkBlockSpace(L).Retain(checkIntTable(L, 2)); err != nil {
		L.RaiseError("retain: %v", err)
	}

	return 0
}

// extract_blocks(ids) -> blockspace
func blockSpaceExtractBlocks(L *lua.LState) int {
	s := checkBlockSpace(L)
	got, err := s.ExtractBlocks(checkIntTable(L, 2))
	if err != nil {
		L.RaiseError("extract_blocks: %v", err)
		return 0
	}
	pushBlockSpace(L, got)

	return 1
}

func blockSpaceRemoveBlocks(L *lua.LState) int {
	if err := checkBlockSpace(L).RemoveBlocks(checkIntTable(L, 2)); err != nil {
		L.RaiseError("remove_blocks: %v", err)
	}

	return 0
}

func blockSpaceRetainBlocks(L *lua.LState) int {
	if err := checkBlockSpace(L).RetainBlocks(checkIntTable(L, 2)); err != nil {
		L.RaiseError("retain_blocks: %v", err)
	}

	return 0
}

// lb() -> number
func blockSpaceLB(L *lua.LState) int {
	lb, err := checkBlockSpace(L).LowerBound()
	if err != nil {
		L.RaiseError("lb: %v", err)
		return 0
	}
	L.Push(lua.LNumber(lb))

	return 1
}

// ub() -> number
func blockSpaceUB(L *lua.LState) int {
	ub, err := checkBlockSpace(L).UpperBound()
	if err != nil {
		L.RaiseError("ub: %v", err)
		return 0
	}
	L.Push(lua.LNumber(ub))

	return 1
}

func blockSpaceLen(L *lua.LState) int {
	L.Push(lua.LNumber(checkBlockSpace(L).Len()))
	return 1
}

func blockSpaceNBlocks(L *lua.LState) int {
	L.Push(lua.LNumber(checkBlockSpace(L).NBlocks()))
	return 1
}

// to_blocks() -> {block, ...}
func blockSpaceToBlocks(L *lua.LState) int {
	blocks := checkBlockSpace(L).Blocks()
	tbl := L.NewTable()
	for _, b := range blocks {
		ud := L.NewUserData()
		ud.Value = b
		L.SetMetatable(ud, L.GetTypeMetatable(blockTypeName))
		tbl.Append(ud)
	}
	L.Push(tbl)

	return 1
}

// to_arrays() -> {number, ...}, {string, ...}
func blockSpaceToArrays(L *lua.LState) int {
	coords, labels := checkBlockSpace(L).ToArrays()
	pushIntTable(L, coords)
	pushStringTable(L, labels)

	return 2
}

func blockSpaceBlockStr(L *lua.LState) int {
	L.Push(lua.LString(checkBlockSpace(L).BlockString()))
	return 1
}

func blockSpaceCompressedStr(L *lua.LState) int {
	L.Push(lua.LString(checkBlockSpace(L).CompressedString()))
	return 1
}

func blockSpaceArrayStr(L *lua.LState) int {
	L.Push(lua.LString(checkBlockSpace(L).ArrayString()))
	return 1
}

func blockSpaceSimpleBlockStr(L *lua.LState) int {
	s, err := checkBlockSpace(L).SimpleBlockString()
	if err != nil {
		L.RaiseError("to_simple_block_str: %v", err)
		return 0
	}
	L.Push(lua.LString(s))

	return 1
}

func blockSpaceSimpleArrayStr(L *lua.LState) int {
	s, err := checkBlockSpace(L).SimpleArrayString()
	if err != nil {
		L.RaiseError("to_simple_array_str: %v", err)
		return 0
	}
	L.Push(lua.LString(s))

	return 1
}

func blockSpaceCopy(L *lua.LState) int {
	pushBlockSpace(L, checkBlockSpace(L).Copy())
	return 1
}
