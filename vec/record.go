package vec

import (
	"fmt"
	"reflect"
)

// checkRecordType rejects record types the format cannot store. Pointers of
// any flavor are ruled out twice over: the bytes would be meaningless in a
// file, and the garbage collector must never be handed references living in
// memory it does not manage.
func checkRecordType(rt reflect.Type) error {
	if rt.Size() == 0 {
		return fmt.Errorf("vec: zero-size record type %s: %w", rt, ErrInvalidRecord)
	}
	if kind := firstPointerKind(rt); kind != "" {
		return fmt.Errorf("vec: record type %s contains %s: %w", rt, kind, ErrInvalidRecord)
	}
	return nil
}

// firstPointerKind walks the type and returns the kind of the first
// pointer-carrying component, or "" when the type is pointer-free.
func firstPointerKind(rt reflect.Type) string {
	switch rt.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return ""
	case reflect.Array:
		return firstPointerKind(rt.Elem())
	case reflect.Struct:
		for i := 0; i < rt.NumField(); i++ {
			if kind := firstPointerKind(rt.Field(i).Type); kind != "" {
				return kind
			}
		}
		return ""
	default:
		return rt.Kind().String()
	}
}
