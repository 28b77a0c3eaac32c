package helpers

import "reflect"

// NilPanic panics with panicMessage if v is nil (nil interface, or a typed nil pointer, slice, map, chan or func);
// otherwise returns v unchanged.
//
// Used by constructors to fail fast on missing dependencies: service.NewRegistrationAgent, service.NewScheduler,
// adapters.RegistryHTTP, adapters.NewViperProperties, handlers.NewHTTPServer.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// PositivePanic panics with panicMessage if n is not positive; otherwise returns n.
//
// Used by service.NewScheduler for the tick period.
func PositivePanic[N ~int | ~int64](n N, panicMessage string) N {
	if n <= 0 {
		panic(panicMessage)
	}
	return n
}

// isNil is true for nil and for typed nils hidden behind an interface (where v == nil is false).
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
