package rop

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Describe returns the description carried by an outcome, or "" when o is nil
// or successful.
func Describe(o Outcome) string {
	if IsNil(o) || o.IsSuccess() {
		return ""
	}
	return o.ErrorDescription()
}
