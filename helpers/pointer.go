package helpers

import (
	"reflect"
	"time"
)

// StrPanic panics with panicMessage if s is empty (only s == "" is checked, no TrimSpace); otherwise returns s.
// Used for fail-fast validation of required strings such as a source base URL, a region or a Redis key prefix.
//
// Called from adapters.InstanceSourceHTTP, myredis.NewInstanceSource and service.NewInstancesParentNode.
func StrPanic(s string, panicMessage string) string {
	if s == "" {
		panic(panicMessage)
	}
	return s
}

// NilPanic panics with panicMessage if v is nil (nil interface, pointer, slice, map, chan or func, detected via reflect); otherwise returns v unchanged.
//
// Called from every constructor that takes a required collaborator (instance source, scheduler, logger, refresher, tree node).
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// DurationPanic panics with panicMessage if d is not positive; otherwise returns d.
// Timer intervals of zero would spin the polling and refresh loops.
//
// Called from service.NewPollingSet and service.NewRefreshLoop.
func DurationPanic(d time.Duration, panicMessage string) time.Duration {
	if d <= 0 {
		panic(panicMessage)
	}
	return d
}

// isNil reports whether v is nil or a typed nil pointer/slice/map/chan/func/interface. Only NilPanic uses it.
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
