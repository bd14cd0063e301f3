package strfmt

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
)

// Kind is the variant held by a Value.
type Kind int

const (
	KindNil Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindSeq
	KindMap
	KindPair
	KindCustom
)

var kindNames = [...]string{
	KindNil:    "nil",
	KindInt:    "int",
	KindFloat:  "float",
	KindBool:   "bool",
	KindString: "string",
	KindSeq:    "sequence",
	KindMap:    "map",
	KindPair:   "pair",
	KindCustom: "custom",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Renderable is implemented by types that format themselves. The returned text is
// used verbatim as the placeholder output.
type Renderable interface {
	Render(spec Specifier) (string, error)
}

// Sequence exposes ordered elements of a caller-defined container.
type Sequence interface {
	Len() int
	At(i int) any
}

// Mapping exposes string-keyed lookup on a caller-defined container. Keys
// determines rendering order.
type Mapping interface {
	Keys() []string
	Lookup(key string) (any, bool)
}

// Selectable lets a type answer ".name" and "[name]" selectors itself. It takes
// precedence over the built-in selector handling for whatever kind the value
// converts to.
type Selectable interface {
	Select(name string) (any, error)
}

// Pair is a two-element value rendered as "first: second". Selectors "first"/"0"
// and "second"/"1" pick an element.
type Pair struct {
	First  any
	Second any
}

// maxDepth bounds conversion of nested containers and pointer chains.
const maxDepth = 64

// Value is the tagged union every argument is converted to before rendering.
type Value struct {
	kind  Kind
	num   int64
	flt   float64
	str   string
	elems []Value
	// keys and index are set for maps; elems holds the values in key order.
	keys   []Value
	index  map[string]int
	custom Renderable
	sel    Selectable
}

// IntValue returns an integer Value.
func IntValue(n int64) Value { return Value{kind: KindInt, num: n} }

// FloatValue returns a floating point Value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, flt: f} }

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// SeqValue returns a sequence Value.
func SeqValue(elems ...Value) Value { return Value{kind: KindSeq, elems: elems} }

// PairValue returns a pair Value.
func PairValue(first, second Value) Value {
	return Value{kind: KindPair, elems: []Value{first, second}}
}

// MapValue returns a map Value. keys and values are parallel; keys are looked up
// by their natural text and rendered in the given order.
func MapValue(keys, values []Value) Value {
	v := Value{kind: KindMap, keys: keys, elems: values, index: make(map[string]int, len(keys))}
	for i, k := range keys {
		v.index[k.natural()] = i
	}
	return v
}

// CustomValue wraps a Renderable.
func CustomValue(r Renderable) Value { return Value{kind: KindCustom, custom: r} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer held by a KindInt or KindBool value.
func (v Value) Int() int64 { return v.num }

// Float returns the float held by a KindFloat value.
func (v Value) Float() float64 { return v.flt }

// Bool returns the boolean held by a KindBool value.
func (v Value) Bool() bool { return v.num != 0 }

// Str returns the string held by a KindString value.
func (v Value) Str() string { return v.str }

// Len returns the number of elements of a sequence, map, or pair.
func (v Value) Len() int { return len(v.elems) }

// At returns the i-th element of a sequence or pair, or the i-th value of a map.
func (v Value) At(i int) Value { return v.elems[i] }

// KeyAt returns the i-th key of a map.
func (v Value) KeyAt(i int) Value { return v.keys[i] }

// Lookup returns the map value whose key renders as key.
func (v Value) Lookup(key string) (Value, bool) {
	i, ok := v.index[key]
	if !ok {
		return Value{}, false
	}
	return v.elems[i], true
}

// String returns the natural text of v, as "{}" would render it.
func (v Value) String() string {
	return v.natural()
}

// natural renders v with an empty specifier. Errors from custom values are rendered
// inline since String cannot fail.
func (v Value) natural() string {
	switch v.kind {
	case KindNil:
		return nilText
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindBool:
		return boolWord(v.Bool())
	case KindString:
		return v.str
	}
	s, err := renderNatural(v, DefaultDelimiters())
	if err != nil {
		return "%!(" + err.Error() + ")"
	}
	return s
}

// ValueOf converts x into a Value. Conversion happens once, when arguments are bound.
func ValueOf(x any) Value {
	return valueOf(x, 0)
}

func valueOf(x any, depth int) Value {
	if depth > maxDepth {
		return StringValue("<...>")
	}

	var v Value
	switch t := x.(type) {
	case nil:
		return Value{kind: KindNil}
	case Value:
		return t
	case Renderable:
		v = CustomValue(t)
	case Sequence:
		elems := make([]Value, t.Len())
		for i := range elems {
			elems[i] = valueOf(t.At(i), depth+1)
		}
		v = SeqValue(elems...)
	case Mapping:
		keys := t.Keys()
		kv := make([]Value, len(keys))
		vals := make([]Value, len(keys))
		for i, k := range keys {
			kv[i] = StringValue(k)
			item, _ := t.Lookup(k)
			vals[i] = valueOf(item, depth+1)
		}
		v = MapValue(kv, vals)
	case Pair:
		v = PairValue(valueOf(t.First, depth+1), valueOf(t.Second, depth+1))
	case *Pair:
		if t == nil {
			return Value{kind: KindNil}
		}
		v = PairValue(valueOf(t.First, depth+1), valueOf(t.Second, depth+1))
	case error:
		v = StringValue(t.Error())
	case fmt.Stringer:
		if rv := reflect.ValueOf(t); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return Value{kind: KindNil}
		}
		v = StringValue(t.String())
	case string:
		return StringValue(t)
	case bool:
		return BoolValue(t)
	case int:
		return IntValue(int64(t))
	case int64:
		return IntValue(t)
	case float64:
		return FloatValue(t)
	default:
		v = reflectValue(reflect.ValueOf(x), depth)
	}

	if s, ok := x.(Selectable); ok {
		v.sel = s
	}
	return v
}

func reflectValue(rv reflect.Value, depth int) Value {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntValue(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return FloatValue(float64(u))
		}
		return IntValue(int64(u))
	case reflect.Float32, reflect.Float64:
		return FloatValue(rv.Float())
	case reflect.Bool:
		return BoolValue(rv.Bool())
	case reflect.String:
		return StringValue(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{kind: KindNil}
		}
		return valueOf(rv.Elem().Interface(), depth+1)
	case reflect.Slice:
		if rv.IsNil() {
			return SeqValue()
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return StringValue(string(rv.Bytes()))
		}
		return reflectSeq(rv, depth)
	case reflect.Array:
		return reflectSeq(rv, depth)
	case reflect.Map:
		return reflectMap(rv, depth)
	case reflect.Struct:
		return reflectStruct(rv, depth)
	default:
		return StringValue(fmt.Sprint(rv.Interface()))
	}
}

func reflectSeq(rv reflect.Value, depth int) Value {
	elems := make([]Value, rv.Len())
	for i := range elems {
		elems[i] = valueOf(rv.Index(i).Interface(), depth+1)
	}
	return SeqValue(elems...)
}

// reflectMap converts a Go map, ordering entries by key: numerically when both keys
// are numbers, by text otherwise.
func reflectMap(rv reflect.Value, depth int) Value {
	type entry struct {
		key, val Value
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{
			key: valueOf(iter.Key().Interface(), depth+1),
			val: valueOf(iter.Value().Interface(), depth+1),
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return compareKeys(a.key, b.key)
	})

	keys := make([]Value, len(entries))
	vals := make([]Value, len(entries))
	for i, e := range entries {
		keys[i] = e.key
		vals[i] = e.val
	}
	return MapValue(keys, vals)
}

func compareKeys(a, b Value) int {
	an, aok := a.number()
	bn, bok := b.number()
	if aok && bok {
		if c := cmp.Compare(an, bn); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.natural(), b.natural())
}

// number returns v as a float64 when v is numeric.
func (v Value) number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.num), true
	case KindFloat:
		return v.flt, true
	default:
		return 0, false
	}
}

// reflectStruct exposes exported fields as a map in declaration order. The
// `strfmt:"name"` tag renames a field; `strfmt:"-"` hides it.
func reflectStruct(rv reflect.Value, depth int) Value {
	rt := rv.Type()
	var keys, vals []Value
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("strfmt"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		keys = append(keys, StringValue(name))
		vals = append(vals, valueOf(rv.Field(i).Interface(), depth+1))
	}
	return MapValue(keys, vals)
}
