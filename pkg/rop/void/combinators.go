package void

// ThenIf continues a successful r with SuccessIf(predicate, errorDescription).
// A failed r is returned as is and predicate is not called.
func (r Result) ThenIf(predicate func() bool, errorDescription string) Result {
	if r.isSuccess {
		return SuccessIf(predicate, errorDescription)
	}
	return r
}

// ThenFailIf continues a successful r with FailIf(negativePredicate, errorDescription).
// A failed r is returned as is and negativePredicate is not called.
func (r Result) ThenFailIf(negativePredicate func() bool, errorDescription string) Result {
	if r.isSuccess {
		return FailIf(negativePredicate, errorDescription)
	}
	return r
}

// OtherwiseIf continues a failed r with SuccessIf(predicate, errorDescription),
// so a failure whose predicate holds comes back as a new success.
// A successful r is returned as is.
func (r Result) OtherwiseIf(predicate func() bool, errorDescription string) Result {
	if !r.isSuccess {
		return SuccessIf(predicate, errorDescription)
	}
	return r
}

// OtherwiseFailIf continues a failed r with FailIf(negativePredicate, errorDescription).
// A successful r is returned as is.
func (r Result) OtherwiseFailIf(negativePredicate func() bool, errorDescription string) Result {
	if !r.isSuccess {
		return FailIf(negativePredicate, errorDescription)
	}
	return r
}
