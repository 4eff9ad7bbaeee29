package propertycatalog

// column is a dense, slot-indexed vector of one kind's values. Concrete
// implementations grow on demand and return the kind's tombstone for any
// slot never written.
type column interface {
	kind() Kind
	ensure(slot uint64)
	get(slot uint64) Value
	set(slot uint64, v Value)
	tombstone(slot uint64)
}

func newColumn(k Kind) column {
	switch k {
	case KindBool:
		return &boolColumn{}
	case KindI64:
		return &i64Column{}
	case KindF64:
		return &f64Column{}
	case KindString:
		return &stringColumn{}
	case KindBoolList:
		return &boolListColumn{}
	case KindI64List:
		return &i64ListColumn{}
	case KindF64List:
		return &f64ListColumn{}
	case KindStringList:
		return &stringListColumn{}
	default:
		return nil
	}
}

type boolColumn struct{ data []bool }

func (c *boolColumn) kind() Kind { return KindBool }
func (c *boolColumn) ensure(slot uint64) {
	if slot >= uint64(len(c.data)) {
		grown := make([]bool, slot+1)
		copy(grown, c.data)
		c.data = grown
	}
}
func (c *boolColumn) get(slot uint64) Value {
	if slot >= uint64(len(c.data)) {
		return Sentinel(KindBool)
	}
	return Value{Kind: KindBool, Bool: c.data[slot]}
}
func (c *boolColumn) set(slot uint64, v Value) {
	c.ensure(slot)
	c.data[slot] = v.Bool
}
func (c *boolColumn) tombstone(slot uint64) { c.set(slot, Sentinel(KindBool)) }

type i64Column struct{ data []int64 }

func (c *i64Column) kind() Kind { return KindI64 }
func (c *i64Column) ensure(slot uint64) {
	if slot >= uint64(len(c.data)) {
		grown := make([]int64, slot+1)
		for i := range grown {
			grown[i] = TombstoneI64
		}
		copy(grown, c.data)
		c.data = grown
	}
}
func (c *i64Column) get(slot uint64) Value {
	if slot >= uint64(len(c.data)) {
		return Sentinel(KindI64)
	}
	return Value{Kind: KindI64, I64: c.data[slot]}
}
func (c *i64Column) set(slot uint64, v Value) {
	c.ensure(slot)
	c.data[slot] = v.I64
}
func (c *i64Column) tombstone(slot uint64) { c.set(slot, Sentinel(KindI64)) }

type f64Column struct{ data []float64 }

func (c *f64Column) kind() Kind { return KindF64 }
func (c *f64Column) ensure(slot uint64) {
	if slot >= uint64(len(c.data)) {
		grown := make([]float64, slot+1)
		for i := range grown {
			grown[i] = TombstoneF64
		}
		copy(grown, c.data)
		c.data = grown
	}
}
func (c *f64Column) get(slot uint64) Value {
	if slot >= uint64(len(c.data)) {
		return Sentinel(KindF64)
	}
	return Value{Kind: KindF64, F64: c.data[slot]}
}
func (c *f64Column) set(slot uint64, v Value) {
	c.ensure(slot)
	c.data[slot] = v.F64
}
func (c *f64Column) tombstone(slot uint64) { c.set(slot, Sentinel(KindF64)) }

type stringColumn struct{ data []string }

func (c *stringColumn) kind() Kind { return KindString }
func (c *stringColumn) ensure(slot uint64) {
	if slot >= uint64(len(c.data)) {
		grown := make([]string, slot+1)
		copy(grown, c.data)
		c.data = grown
	}
}
func (c *stringColumn) get(slot uint64) Value {
	if slot >= uint64(len(c.data)) {
		return Sentinel(KindString)
	}
	return Value{Kind: KindString, Str: c.data[slot]}
}
func (c *stringColumn) set(slot uint64, v Value) {
	c.ensure(slot)
	c.data[slot] = v.Str
}
func (c *stringColumn) tombstone(slot uint64) { c.set(slot, Sentinel(KindString)) }

type boolListColumn struct{ data [][]bool }

func (c *boolListColumn) kind() Kind { return KindBoolList }
func (c *boolListColumn) ensure(slot uint64) {
	if slot >= uint64(len(c.data)) {
		grown := make([][]bool, slot+1)
		copy(grown, c.data)
		c.data = grown
	}
}
func (c *boolListColumn) get(slot uint64) Value {
	if slot >= uint64(len(c.data)) {
		return Sentinel(KindBoolList)
	}
	return Value{Kind: KindBoolList, BoolList: c.data[slot]}
}
func (c *boolListColumn) set(slot uint64, v Value) {
	c.ensure(slot)
	c.data[slot] = v.BoolList
}
func (c *boolListColumn) tombstone(slot uint64) { c.set(slot, Sentinel(KindBoolList)) }

type i64ListColumn struct{ data [][]int64 }

func (c *i64ListColumn) kind() Kind { return KindI64List }
func (c *i64ListColumn) ensure(slot uint64) {
	if slot >= uint64(len(c.data)) {
		grown := make([][]int64, slot+1)
		copy(grown, c.data)
		c.data = grown
	}
}
func (c *i64ListColumn) get(slot uint64) Value {
	if slot >= uint64(len(c.data)) {
		return Sentinel(KindI64List)
	}
	return Value{Kind: KindI64List, I64List: c.data[slot]}
}
func (c *i64ListColumn) set(slot uint64, v Value) {
	c.ensure(slot)
	c.data[slot] = v.I64List
}
func (c *i64ListColumn) tombstone(slot uint64) { c.set(slot, Sentinel(KindI64List)) }

type f64ListColumn struct{ data [][]float64 }

func (c *f64ListColumn) kind() Kind { return KindF64List }
func (c *f64ListColumn) ensure(slot uint64) {
	if slot >= uint64(len(c.data)) {
		grown := make([][]float64, slot+1)
		copy(grown, c.data)
		c.data = grown
	}
}
func (c *f64ListColumn) get(slot uint64) Value {
	if slot >= uint64(len(c.data)) {
		return Sentinel(KindF64List)
	}
	return Value{Kind: KindF64List, F64List: c.data[slot]}
}
func (c *f64ListColumn) set(slot uint64, v Value) {
	c.ensure(slot)
	c.data[slot] = v.F64List
}
func (c *f64ListColumn) tombstone(slot uint64) { c.set(slot, Sentinel(KindF64List)) }

type stringListColumn struct{ data [][]string }

func (c *stringListColumn) kind() Kind { return KindStringList }
func (c *stringListColumn) ensure(slot uint64) {
	if slot >= uint64(len(c.data)) {
		grown := make([][]string, slot+1)
		copy(grown, c.data)
		c.data = grown
	}
}
func (c *stringListColumn) get(slot uint64) Value {
	if slot >= uint64(len(c.data)) {
		return Sentinel(KindStringList)
	}
	return Value{Kind: KindStringList, StringList: c.data[slot]}
}
func (c *stringListColumn) set(slot uint64, v Value) {
	c.ensure(slot)
	c.data[slot] = v.StringList
}
func (c *stringListColumn) tombstone(slot uint64) { c.set(slot, Sentinel(KindStringList)) }
