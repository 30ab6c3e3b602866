package grpcutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorCode(t *testing.T) {
	err := status.New(codes.NotFound, "").Err()

	assert.Equal(t, codes.OK, ErrorCode(nil))
	assert.Equal(t, codes.NotFound, ErrorCode(err))
	assert.Equal(t, codes.Unknown, ErrorCode(assert.AnError))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(status.New(codes.NotFound, "").Err()))
	assert.False(t, IsNotFound(status.New(codes.AlreadyExists, "").Err()))
	assert.False(t, IsNotFound(nil))
}

func TestIsAlreadyExists(t *testing.T) {
	assert.True(t, IsAlreadyExists(status.New(codes.AlreadyExists, "").Err()))
	assert.False(t, IsAlreadyExists(assert.AnError))
}
