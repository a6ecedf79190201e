package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationErrorMatchesSentinel(t *testing.T) {
	var err error = &OperationError{
		Network:  "bitcoin-cash",
		Kind:     "transaction",
		BasePath: "https://polygonscan.com",
	}
	wrapped := fmt.Errorf("building link: %w", err)

	assert.True(t, errors.Is(wrapped, ErrUnsupportedOperation))
	assert.False(t, errors.Is(wrapped, ErrUnsupportedNetwork))

	var opErr *OperationError
	if assert.True(t, errors.As(wrapped, &opErr)) {
		assert.Equal(t, "bitcoin-cash", opErr.Network)
		assert.Equal(t, "transaction", opErr.Kind)
	}
}

func TestOperationErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{
			name: "network and kind only",
			err:  &OperationError{Network: "sui", Kind: "account"},
			want: "account links are not supported on sui",
		},
		{
			name: "with explorer and reason",
			err: &OperationError{
				Network:  "ethereum",
				Kind:     "transaction",
				BasePath: "https://opensea.io",
				Reason:   "opensea does not show individual transactions",
			},
			want: "transaction links are not supported on ethereum with explorer https://opensea.io: opensea does not show individual transactions",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
