// Package result provides the two-case outcome type every service operation
// returns instead of raising errors for expected failure conditions.
package result

// Result holds either a success value or an error message, never both.
type Result[T any] struct {
	value   T
	err     string
	success bool
}

// Success creates a successful result carrying value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, success: true}
}

// Failure creates a failed result carrying the error message.
func Failure[T any](err string) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) IsSuccess() bool { return r.success }
func (r Result[T]) IsFailure() bool { return !r.success }

// Value returns the success value. Calling it on a failed result is a
// programming error and panics.
func (r Result[T]) Value() T {
	if !r.success {
		panic("result: Value called on a failed result")
	}
	return r.value
}

// Error returns the error message. Calling it on a successful result is a
// programming error and panics.
func (r Result[T]) Error() string {
	if r.success {
		panic("result: Error called on a successful result")
	}
	return r.err
}

// Match invokes exactly one of the callbacks depending on the outcome.
func (r Result[T]) Match(onSuccess func(T), onFailure func(string)) {
	if r.success {
		onSuccess(r.value)
		return
	}
	onFailure(r.err)
}

// Unit is the payload of operations that succeed with no value.
type Unit struct{}

// Empty is a result whose success carries no payload.
type Empty = Result[Unit]

// Ok creates a successful Empty result.
func Ok() Empty { return Success(Unit{}) }

// Fail creates a failed Empty result.
func Fail(err string) Empty { return Failure[Unit](err) }
