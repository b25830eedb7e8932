package luabind

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/verdantis/alnspace/coordspace"
	"github.com/verdantis/alnspace/linspace"
)

const coordSpaceTypeName = "alnspace.coordspace"

func registerCoordSpaceType(L *lua.LState) {
	mt := L.NewTypeMetatable(coordSpaceTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), coordSpaceMethods))
}

// coordSpaceModule builds the constructor table for the coordspace submodule.
func coordSpaceModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	L.SetField(mod, "new", L.NewFunction(newCoordSpace))
	L.SetField(mod, "from_arrays", L.NewFunction(coordSpaceFromArrays))
	L.SetField(mod, "from_blocks", L.NewFunction(coordSpaceFromBlocks))

	return mod
}

// new(start, stop) -> coordspace
func newCoordSpace(L *lua.LState) int {
	c, err := coordspace.New(L.CheckInt(1), L.CheckInt(2))
	if err != nil {
		L.RaiseError("coordspace.new: %v", err)
		return 0
	}
	pushCoordSpace(L, c)

	return 1
}

// from_arrays(data, labels) -> coordspace
func coordSpaceFromArrays(L *lua.LState) int {
	c, err := coordspace.FromArrays(checkIntTable(L, 1), checkStringTable(L, 2))
	if err != nil {
		L.RaiseError("coordspace.from_arrays: %v", err)
		return 0
	}
	pushCoordSpace(L, c)

	return 1
}

// from_blocks(blocks) -> coordspace
func coordSpaceFromBlocks(L *lua.LState) int {
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
	c, err := coordspace.FromBlocks(blocks)
	if err != nil {
		L.RaiseError("coordspace.from_blocks: %v", err)
		return 0
	}
	pushCoordSpace(L, c)

	return 1
}

func pushCoordSpace(L *lua.LState, c *coordspace.CoordSpace) {
	ud := L.NewUserData()
	ud.Value = c
	L.SetMetatable(ud, L.GetTypeMetatable(coordSpaceTypeName))
	L.Push(ud)
}

func checkCoordSpace(L *lua.LState) *coordspace.CoordSpace {
	ud := L.CheckUserData(1)
	if c, ok := ud.Value.(*coordspace.CoordSpace); ok {
		return c
	}
	L.ArgError(1, "coordspace expected")

	return nil
}

var coordSpaceMethods = map[string]lua.LGFunction{
	"extract":           coordSpaceExtract,
	"remove":            coordSpaceRemove,
	"retain":            coordSpaceRetain,
	"start":             coordSpaceStart,
	"stop":              coordSpaceStop,
	"len_all":           coordSpaceLenAll,
	"len_seq":           coordSpaceLenSeq,
	"len_gap":           coordSpaceLenGap,
	"coords":            coordSpaceCoords,
	"to_blocks":         coordSpaceToBlocks,
	"to_arrays":         coordSpaceToArrays,
	"to_array_str":      coordSpaceArrayStr,
	"to_extended_str":   coordSpaceExtendedStr,
	"to_compressed_str": coordSpaceCompressedStr,
	"copy":              coordSpaceCopy,
}

// extract(positions) -> coordspace
func coordSpaceExtract(L *lua.LState) int {
	c := checkCoordSpace(L)
	got, err := c.Extract(checkIntTable(L, 2))
	if err != nil {
		L.RaiseError("extract: %v", err)
		return 0
	}
	pushCoordSpace(L, got)

	return 1
}

func coordSpaceRemove(L *lua.LState) int {
	if err := checkCoordSpace(L).Remove(checkIntTable(L, 2)); err != nil {
		L.RaiseError("remove: %v", err)
	}

	return 0
}

func coordSpaceRetain(L *lua.LState) int {
	if err := checkCoordSpace(L).Retain(checkIntTable(L, 2)); err != nil {
		L.RaiseError("retain: %v", err)
	}

	return 0
}

// start() -> number
func coordSpaceStart(L *lua.LState) int {
	start, err := checkCoordSpace(L).Start()
	if err != nil {
		L.RaiseError("start: %v", err)
		return 0
	}
	L.Push(lua.LNumber(start))

	return 1
}

func coordSpaceStop(L *lua.LState) int {
	L.Push(lua.LNumber(checkCoordSpace(L).Stop()))
	return 1
}

func coordSpaceLenAll(L *lua.LState) int {
	L.Push(lua.LNumber(checkCoordSpace(L).LenAll()))
	return 1
}

func coordSpaceLenSeq(L *lua.LState) int {
	L.Push(lua.LNumber(checkCoordSpace(L).LenSeq()))
	return 1
}

func coordSpaceLenGap(L *lua.LState) int {
	L.Push(lua.LNumber(checkCoordSpace(L).LenGap()))
	return 1
}

func coordSpaceCoords(L *lua.LState) int {
	pushIntTable(L, checkCoordSpace(L).Coords())
	return 1
}

// to_blocks() -> {block, ...}
func coordSpaceToBlocks(L *lua.LState) int {
	blocks, err := checkCoordSpace(L).ToBlocks()
	if err != nil {
		L.RaiseError("to_blocks: %v", err)
		return 0
	}
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
func coordSpaceToArrays(L *lua.LState) int {
	data, labels, err := checkCoordSpace(L).ToArrays()
	if err != nil {
		L.RaiseError("to_arrays: %v", err)
		return 0
	}
	pushIntTable(L, data)
	pushStringTable(L, labels)

	return 2
}

func coordSpaceArrayStr(L *lua.LState) int {
	L.Push(lua.LString(checkCoordSpace(L).ArrayString()))
	return 1
}

func coordSpaceExtendedStr(L *lua.LState) int {
	s, err := checkCoordSpace(L).ExtendedString()
	if err != nil {
		L.RaiseError("to_extended_str: %v", err)
		return 0
	}
	L.Push(lua.LString(s))

	return 1
}

func coordSpaceCompressedStr(L *lua.LState) int {
	s, err := checkCoordSpace(L).CompressedString()
	if err != nil {
		L.RaiseError("to_compressed_str: %v", err)
		return 0
	}
	L.Push(lua.LString(s))

	return 1
}

func coordSpaceCopy(L *lua.LState) int {
	pushCoordSpace(L, checkCoordSpace(L).Copy())
	return 1
}
