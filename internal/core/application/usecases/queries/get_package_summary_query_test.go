package queries_test

import (
	"testing"

	"courier/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPackageSummaryQuery_Valid(t *testing.T) {
	query := queries.NewGetPackageSummaryQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetPackageSummaryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPackageSummaryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPackageSummaryQueryIsNotConstructed)
}
