package pure

import (
	"fmt"
	"reflect"
)

// ComparableOrStringer is any argument usable as a table key: a comparable
// value, or a fmt.Stringer whose String() is used instead.
type ComparableOrStringer any

// ComparableOrString is the key actually stored in the table.
type ComparableOrString any

func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
) func(I1) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1))
		},
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2))
		},
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

func TableizeI1O2[I1 ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2),
) func(I1) (O1, O2) {
	tableized := tableize(
		func(args ...ComparableOrStringer) result[O1, O2] {
			v1, v2 := pureFn(args[0].(I1))
			return result[O1, O2]{O1: v1, O2: v2}
		},
	)
	return func(i1 I1) (O1, O2) {
		res := tableized(i1)
		return res.O1, res.O2
	}
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

// argsKey is the table key of a whole argument list. Arrays of interfaces are
// comparable, so up to two arguments fit without building strings.
type argsKey [2]ComparableOrString

func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	if i != nil && !reflect.TypeOf(i).Comparable() {
		panic(fmt.Sprintf("tableize: %T is neither comparable nor a fmt.Stringer", i))
	}
	return i
}

// tableize memoizes pureFn over an unbounded write-once table.
// Recursive calls made by pureFn go through the table as well, and no lock is
// held while pureFn runs, so a racing caller may compute the same entry twice;
// only the first stored result is ever returned.
func tableize[O any](
	pureFn func(...ComparableOrStringer) O,
) func(...ComparableOrStringer) O {
	memo := NewTable[argsKey, O]()
	return func(args ...ComparableOrStringer) O {
		var key argsKey
		for i, arg := range args {
			key[i] = tableKey(arg)
		}
		if v, ok := memo.Load(key); ok {
			return v
		}
		v, _ := memo.StoreIfAbsent(key, pureFn(args...))
		return v
	}
}
