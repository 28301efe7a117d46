// Package shared collects helpers used by the table: the default hash
// function dispatch and capacity rounding. It mirrors the helper package of
// the same name in the hashmap family this module grew from, trimmed down to
// what a single fixed collision strategy actually needs.
package shared

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/segmentio/fasthash/fnv1a"
)

// HashFn is a function that returns the 64-bit hash of 't'. The table caches
// the result per entry, so the width here is also the cached-hash width.
type HashFn[T any] func(t T) uint64

// GetHasher returns a hasher for Go's integer, floating-point and string
// kinds. It panics for every other kind (bool, pointers, structs, ...); those
// callers must supply their own hasher via NewWithHasher.
func GetHasher[Key any]() HashFn[Key] {
	var key Key
	kind := reflect.ValueOf(&key).Elem().Type().Kind()

	switch kind {
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		switch unsafe.Sizeof(key) {
		case 2:
			return *(*func(Key) uint64)(unsafe.Pointer(&hashWord))
		case 4:
			return *(*func(Key) uint64)(unsafe.Pointer(&hashDword))
		case 8:
			return *(*func(Key) uint64)(unsafe.Pointer(&hashQword))
		default:
			panic("unsupported integer byte size")
		}

	case reflect.Int8, reflect.Uint8:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashByte))
	case reflect.Int16, reflect.Uint16:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashWord))
	case reflect.Int32, reflect.Uint32:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashDword))
	case reflect.Int64, reflect.Uint64:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashQword))
	case reflect.Float32:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashFloat32))
	case reflect.Float64:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashFloat64))
	case reflect.String:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashString))

	default:
		panic(fmt.Sprintf("unsupported key type %T of kind %v", key, kind))
	}
}

// hashByte, hashWord and hashDword reuse Murmur3's 32-bit per-block key
// scramble (multiply, rotate, multiply), widened into the 64-bit cached hash
// the table expects.
var hashByte = func(in uint8) uint64 {
	return uint64(mix32(uint32(in)))
}

var hashWord = func(in uint16) uint64 {
	return uint64(mix32(uint32(in)))
}

var hashDword = func(in uint32) uint64 {
	return uint64(mix32(in))
}

func mix32(key uint32) uint32 {
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return key
}

var hashFloat32 = func(in float32) uint64 {
	return uint64(mix32(*(*uint32)(unsafe.Pointer(&in))))
}

// hashQword implements MurmurHash3's 64-bit finalizer.
var hashQword = func(key uint64) uint64 {
	key ^= key >> 33
	key *= 0xff51afd7ed558ccd
	key ^= key >> 33
	key *= 0xc4ceb9fe1a85ec53
	key ^= key >> 33
	return key
}

var hashFloat64 = func(in float64) uint64 {
	return hashQword(*(*uint64)(unsafe.Pointer(&in)))
}

// hashString delegates to fasthash's FNV-1a rather than a hand-rolled loop.
var hashString = func(s string) uint64 {
	return fnv1a.HashString64(s)
}
