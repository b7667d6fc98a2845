package queries_test

import (
	"testing"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDriverPerformanceQuery_Valid(t *testing.T) {
	query, err := queries.NewGetDriverPerformanceQuery(5)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 5, query.Limit())
}

func TestNewGetDriverPerformanceQuery_InvalidLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
	}{
		{"zero limit", 0},
		{"negative limit", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewGetDriverPerformanceQuery(tt.limit)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestGetDriverPerformanceQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDriverPerformanceQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDriverPerformanceQueryIsNotConstructed)
}
