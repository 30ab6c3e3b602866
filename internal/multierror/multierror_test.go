package multierror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiError_Error(t *testing.T) {
	m := New[string]()
	m.Add("10.0.0.1", errors.New("connection refused"))
	assert.Equal(t, "10.0.0.1: connection refused", m.Error())
}

func TestMultiError_Combined(t *testing.T) {
	m := New[string]()
	assert.Nil(t, m.Combined())

	m.Add("10.0.0.1", errors.New("connection refused"))
	assert.NotNil(t, m.Combined())
	assert.Equal(t, 1, m.Len())
}

func TestMultiError_AddReplaces(t *testing.T) {
	m := New[int]()
	m.Add(0, errors.New("first"))
	m.Add(0, errors.New("second"))

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, "0: second", m.Error())
}

func TestMultiError_Unwrap(t *testing.T) {
	wrapped := errors.New("wrapped")

	m := New[string]()
	m.Add("key", wrapped)

	assert.Equal(t, []error{wrapped}, m.Unwrap())
}
