package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Err
	}{
		{name: "nil", err: nil, want: ""},
		{name: "bare", err: Transport, want: Transport},
		{name: "with desc", err: New(InvalidInput, "invalid url", nil), want: InvalidInput},
		{
			name: "exhausted over cause",
			err:  New(RetriesExhausted, "", StatusErr{Code: 503}),
			want: RetriesExhausted,
		},
		{
			name: "wrapped",
			err:  fmt.Errorf("fetch: %w", New(Rejected, "", StatusErr{Code: 404})),
			want: Rejected,
		},
		{name: "foreign", err: errors.New("boom"), want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}

func TestErrWithDesc_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := New(Transport, "dial", cause)

	require.ErrorIs(t, err, Transport)
	require.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, Rejected)
	assert.Equal(t, "transport_error, desc:dial, cause:connection refused", err.Error())
}

func TestStatusErr(t *testing.T) {
	err := New(RetriesExhausted, "", StatusErr{Code: 503, Body: "busy"})

	assert.ErrorIs(t, err, BadStatusCode)
	assert.ErrorIs(t, err, ServiceNA)

	var se StatusErr
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 503, se.Code)
	assert.Equal(t, "busy", se.Body)

	assert.NotErrorIs(t, StatusErr{Code: 500}, ServiceNA)
}
