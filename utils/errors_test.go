package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "validation", err: ValidationError("bad input"), want: KindValidation},
		{name: "not found", err: NotFoundError("missing"), want: KindNotFound},
		{name: "conflict", err: ConflictError("taken"), want: KindConflict},
		{name: "storage", err: StorageError("db down", errors.New("conn refused")), want: KindStorage},
		{name: "upstream", err: UpstreamError("stripe down", errors.New("timeout")), want: KindUpstream},
		{name: "wrapped keeps its kind", err: fmt.Errorf("outer: %w", ConflictError("taken")), want: KindConflict},
		{name: "raw error counts as storage", err: errors.New("anything"), want: KindStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := StorageError("insert failed", errors.New("duplicate key"))
	assert.Equal(t, "insert failed: duplicate key", err.Error())
	assert.Equal(t, "slot taken", ConflictError("slot taken").Error())
}
