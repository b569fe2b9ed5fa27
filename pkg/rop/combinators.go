package rop

// The combinators below never mutate r. Predicates are invoked at most once per
// call and only when the guard (success for Then*, failure for Otherwise*) holds.
// On a failed receiver the Otherwise* predicates see the zero value of T.

// ThenIf keeps a successful r when condition holds and fails it with
// errorDescription otherwise. A failed r is returned as is.
func (r Result[T]) ThenIf(condition func(T) bool, errorDescription string) Result[T] {
	if !r.isSuccess {
		return r
	}
	if condition(r.value) {
		return r
	}
	return Fail[T](errorDescription)
}

// ThenFailIf fails a successful r with errorDescription when failCondition holds.
// A failed r is returned as is.
func (r Result[T]) ThenFailIf(failCondition func(T) bool, errorDescription string) Result[T] {
	if !r.isSuccess {
		return r
	}
	if failCondition(r.value) {
		return Fail[T](errorDescription)
	}
	return r
}

// OtherwiseIf keeps a failed r when condition holds and replaces it with a
// failure carrying errorDescription otherwise. It never turns a failure into a
// success. A successful r is returned as is.
func (r Result[T]) OtherwiseIf(condition func(T) bool, errorDescription string) Result[T] {
	if r.isSuccess {
		return r
	}
	if condition(r.value) {
		return r
	}
	return Fail[T](errorDescription)
}

// OtherwiseFailIf re-stamps a failed r with errorDescription when failCondition
// holds. A successful r is returned as is.
func (r Result[T]) OtherwiseFailIf(failCondition func(T) bool, errorDescription string) Result[T] {
	if r.isSuccess {
		return r
	}
	if failCondition(r.value) {
		return Fail[T](errorDescription)
	}
	return r
}
