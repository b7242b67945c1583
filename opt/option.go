// Package opt holds a value-or-error pair for streaming results over channels.
package opt

// Result carries either a value or the error that prevented producing it.
type Result[T any] struct {
	Ok  T
	Err error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		Ok:  v,
		Err: nil,
	}
}

func Err[T any](err error) Result[T] {
	//nolint:exhaustruct
	return Result[T]{
		Err: err,
	}
}

// Get unpacks the result.
func (r Result[T]) Get() (T, error) {
	return r.Ok, r.Err
}
