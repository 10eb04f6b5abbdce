package main

import (
	"errors"
	"testing"

	"github.com/rglass4/rematch/internal/assert"
)

func TestFirstError(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	tests := []struct {
		name string
		errs []error
		want error
	}{
		{
			name: "All Nil",
			errs: []error{nil, nil, nil},
			want: nil,
		},
		{
			name: "First Error Wins",
			errs: []error{nil, errA, errB},
			want: errA,
		},
		{
			name: "Empty Batch",
			errs: []error{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, firstError(tt.errs...), tt.want)
		})
	}
}
