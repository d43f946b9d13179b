package client

const (
	ErrNotFound      Error = "not_found"
	ErrOutOfCapacity Error = "out_of_capacity"
	ErrUnavailable   Error = "unavailable"
)

type Error string

func (o Error) Error() string {
	return string(o)
}
