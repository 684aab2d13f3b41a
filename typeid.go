package kura

import (
	"cmp"
	"fmt"
	"hash/fnv"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// TypeID is a stable 32-bit identifier derived from a Go type. Unlike
// reflect.Type it is ordered and survives process boundaries: the same type
// always hashes to the same TypeID.
//
// The hash space is 32 bits wide, so two distinct types can collide. The
// World refuses to register a colliding type instead of guessing.
type TypeID uint32

var typeIDs sync.Map // reflect.Type -> TypeID

// TypeOf returns the TypeID of T. The hash is computed once per type.
func TypeOf[T any]() TypeID {
	return TypeIDOf(reflect.TypeFor[T]())
}

// TypeIDOf returns the TypeID of t.
func TypeIDOf(t reflect.Type) TypeID {
	if id, ok := typeIDs.Load(t); ok {
		return id.(TypeID)
	}
	id := hashType(t)
	typeIDs.Store(t, id)
	return id
}

// hashType hashes the canonical name of t with FNV-1a.
func hashType(t reflect.Type) TypeID {
	h := fnv.New32a()
	h.Write([]byte(canonicalName(t)))
	return TypeID(h.Sum32())
}

// canonicalName spells t out with full package paths at every named leaf.
// reflect's String uses short package names and cannot tell []a/x.T from
// []b/x.T.
func canonicalName(t reflect.Type) string {
	var b strings.Builder
	writeType(&b, t)
	return b.String()
}

func writeType(b *strings.Builder, t reflect.Type) {
	if t.Name() != "" {
		if pkg := t.PkgPath(); pkg != "" {
			b.WriteString(pkg)
			b.WriteByte('.')
		}
		b.WriteString(t.Name())
		return
	}
	switch t.Kind() {
	case reflect.Pointer:
		b.WriteByte('*')
		writeType(b, t.Elem())
	case reflect.Slice:
		b.WriteString("[]")
		writeType(b, t.Elem())
	case reflect.Array:
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(t.Len()))
		b.WriteByte(']')
		writeType(b, t.Elem())
	case reflect.Map:
		b.WriteString("map[")
		writeType(b, t.Key())
		b.WriteByte(']')
		writeType(b, t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			b.WriteString("<-chan ")
		case reflect.SendDir:
			b.WriteString("chan<- ")
		default:
			b.WriteString("chan ")
		}
		writeType(b, t.Elem())
	case reflect.Func:
		b.WriteString("func")
		writeSignature(b, t)
	case reflect.Struct:
		b.WriteString("struct{")
		for i := range t.NumField() {
			if i > 0 {
				b.WriteString("; ")
			}
			f := t.Field(i)
			if f.PkgPath != "" {
				b.WriteString(f.PkgPath)
				b.WriteByte('.')
			}
			if f.Anonymous {
				b.WriteString("embedded ")
			}
			b.WriteString(f.Name)
			b.WriteByte(' ')
			writeType(b, f.Type)
			if f.Tag != "" {
				b.WriteByte(' ')
				b.WriteString(strconv.Quote(string(f.Tag)))
			}
		}
		b.WriteByte('}')
	case reflect.Interface:
		b.WriteString("interface{")
		for i := range t.NumMethod() {
			if i > 0 {
				b.WriteString("; ")
			}
			m := t.Method(i)
			if m.PkgPath != "" {
				b.WriteString(m.PkgPath)
				b.WriteByte('.')
			}
			b.WriteString(m.Name)
			writeSignature(b, m.Type)
		}
		b.WriteByte('}')
	default:
		b.WriteString(t.String())
	}
}

func writeSignature(b *strings.Builder, t reflect.Type) {
	b.WriteByte('(')
	for i := range t.NumIn() {
		if i > 0 {
			b.WriteString(", ")
		}
		if t.IsVariadic() && i == t.NumIn()-1 {
			b.WriteString("...")
			writeType(b, t.In(i).Elem())
			continue
		}
		writeType(b, t.In(i))
	}
	b.WriteString(") (")
	for i := range t.NumOut() {
		if i > 0 {
			b.WriteString(", ")
		}
		writeType(b, t.Out(i))
	}
	b.WriteByte(')')
}

// Compare orders two TypeIDs.
func (id TypeID) Compare(other TypeID) int {
	return cmp.Compare(id, other)
}

// String implements fmt.Stringer.
func (id TypeID) String() string {
	return fmt.Sprintf("0x%08x", uint32(id))
}

// MarshalText implements encoding.TextMarshaler.
func (id TypeID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *TypeID) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 0, 32)
	if err != nil {
		return fmt.Errorf("ecs: invalid type id %q: %w", text, err)
	}
	*id = TypeID(v)
	return nil
}
