package helpers

import "reflect"

// StrPanic panics with panicMessage if p is empty; otherwise returns p.
// Only p == "" is checked, whitespace is kept as is.
//
// Called from adapters.NewRegistryHTTP for the registry URL and from service.NewRegistrationClient
// for the service name and base URL.
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic panics with panicMessage if v is nil (nil interface, pointer, slice, map, chan, func); otherwise returns v.
//
// Parameters: v: value to check; panicMessage: panic value.
//
// Returns: v unchanged when non-nil.
//
// Called from every service and adapter constructor when validating required dependencies.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
