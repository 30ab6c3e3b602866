package grpcutil

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorCode extracts a gRPC error code from an error. If the error is not a
// gRPC error, it returns codes.Unknown.
func ErrorCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}

	if st, ok := status.FromError(err); ok {
		return st.Code()
	}

	return codes.Unknown
}

// IsNotFound reports whether the node rejected the request because the named
// entity does not exist.
func IsNotFound(err error) bool {
	return ErrorCode(err) == codes.NotFound
}

// IsAlreadyExists reports whether the node rejected the request because of a
// duplicate name or UUID.
func IsAlreadyExists(err error) bool {
	return ErrorCode(err) == codes.AlreadyExists
}

func IsCanceled(err error) bool {
	return ErrorCode(err) == codes.Canceled
}
