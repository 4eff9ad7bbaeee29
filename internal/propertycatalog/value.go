package propertycatalog

import "math"

// Kind tags the eight value shapes a property column may hold. Once a
// property's kind is fixed by its first successful write, it never
// changes.
type Kind uint8

const (
	KindBool Kind = iota
	KindI64
	KindF64
	KindString
	KindBoolList
	KindI64List
	KindF64List
	KindStringList
)

// String renders a Kind for logging and error messages.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindI64:
		return "i64"
	case KindF64:
		return "f64"
	case KindString:
		return "string"
	case KindBoolList:
		return "bool_list"
	case KindI64List:
		return "i64_list"
	case KindF64List:
		return "f64_list"
	case KindStringList:
		return "string_list"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the eight supported property kinds. Only
// the field matching Kind is meaningful.
type Value struct {
	Kind       Kind
	Bool       bool
	I64        int64
	F64        float64
	Str        string
	BoolList   []bool
	I64List    []int64
	F64List    []float64
	StringList []string
}

// Tombstone sentinels written into a column when a property is deleted.
// Lists have no scalar sentinel; an empty (nil) list is used instead,
// matching "no elements remain."
const (
	TombstoneI64 = math.MinInt64
)

// TombstoneF64 is the most negative finite float64.
var TombstoneF64 = -math.MaxFloat64

// Sentinel returns the tombstone value for kind, matching what Delete
// writes into a column of that kind.
func Sentinel(kind Kind) Value {
	switch kind {
	case KindBool:
		return Value{Kind: KindBool, Bool: false}
	case KindI64:
		return Value{Kind: KindI64, I64: TombstoneI64}
	case KindF64:
		return Value{Kind: KindF64, F64: TombstoneF64}
	case KindString:
		return Value{Kind: KindString, Str: ""}
	case KindBoolList:
		return Value{Kind: KindBoolList, BoolList: nil}
	case KindI64List:
		return Value{Kind: KindI64List, I64List: nil}
	case KindF64List:
		return Value{Kind: KindF64List, F64List: nil}
	case KindStringList:
		return Value{Kind: KindStringList, StringList: nil}
	default:
		return Value{}
	}
}

// IsSentinel reports whether v is exactly the tombstone for its own kind.
func IsSentinel(v Value) bool {
	s := Sentinel(v.Kind)
	switch v.Kind {
	case KindBool:
		return v.Bool == s.Bool
	case KindI64:
		return v.I64 == s.I64
	case KindF64:
		return v.F64 == s.F64
	case KindString:
		return v.Str == s.Str
	case KindBoolList, KindI64List, KindF64List, KindStringList:
		return len(v.BoolList) == 0 && len(v.I64List) == 0 && len(v.F64List) == 0 && len(v.StringList) == 0
	default:
		return false
	}
}
