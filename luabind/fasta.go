package luabind

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/verdantis/alnspace/fasta"
)

// fastaModule builds the fasta submodule: records cross into Lua as plain
// tables with id, description, and sequence fields.
func fastaModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	L.SetField(mod, "parse_file", L.NewFunction(fastaParseFile))
	L.SetField(mod, "split_by_keyword", L.NewFunction(fastaSplitByKeyword))
	L.SetField(mod, "sequences", L.NewFunction(fastaSequences))

	return mod
}

func pushRecords(L *lua.LState, records []fasta.Record) {
	tbl := L.NewTable()
	for _, rec := range records {
		rt := L.NewTable()
		L.SetField(rt, "id", lua.LString(rec.ID))
		L.SetField(rt, "description", lua.LString(rec.Description))
		L.SetField(rt, "sequence", lua.LString(rec.Sequence))
		tbl.Append(rt)
	}
	L.Push(tbl)
}

func checkRecords(L *lua.LState, n int) []fasta.Record {
	tbl := L.CheckTable(n)
	records := make([]fasta.Record, 0, tbl.Len())
	ok := true
	tbl.ForEach(func(_, v lua.LValue) {
		rt, isTable := v.(*lua.LTable)
		if !isTable {
			ok = false
			return
		}
		records = append(records, fasta.Record{
			ID:          lua.LVAsString(rt.RawGetString("id")),
			Description: lua.LVAsString(rt.RawGetString("description")),
			Sequence:    lua.LVAsString(rt.RawGetString("sequence")),
		})
	})
	if !ok {
		L.ArgError(n, "list of records expected")
	}

	return records
}

// parse_file(path) -> {{id=..., description=..., sequence=...}, ...}
func fastaParseFile(L *lua.LState) int {
	records, err := fasta.ParseFile(L.CheckString(1))
	if err != nil {
		L.RaiseError("fasta.parse_file: %v", err)
		return 0
	}
	pushRecords(L, records)

	return 1
}

// split_by_keyword(records, keyword) -> samples, markers
func fastaSplitByKeyword(L *lua.LState) int {
	records := checkRecords(L, 1)
	samples, markers := fasta.SplitByKeyword(records, L.CheckString(2))
	pushRecords(L, samples)
	pushRecords(L, markers)

	return 2
}

// sequences(records) -> {string, ...}
func fastaSequences(L *lua.LState) int {
	pushStringTable(L, fasta.Sequences(checkRecords(L, 1)))
	return 1
}
