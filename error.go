package zerobuf

const (
	ErrAllocationFailure Error = "allocation_failure"
	ErrBufferFull        Error = "buffer_full"
	ErrEndOfInput        Error = "end_of_input"
	ErrInvalidRange      Error = "invalid_range"
	ErrIndexOutOfRange   Error = "index_out_of_range"
	ErrInvalidArgument   Error = "invalid_argument"
	ErrNotFound          Error = "not_found"
)

type Error string

func (o Error) Error() string {
	return string(o)
}

// IOError reports a failure of the external byte source or sink.
type IOError struct {
	Cause error
}

func (o *IOError) Error() string {
	return "io_failure: " + o.Cause.Error()
}

func (o *IOError) Unwrap() error {
	return o.Cause
}
