package queries_test

import (
	"testing"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/packages"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllPackagesQuery_Valid(t *testing.T) {
	query := queries.NewGetAllPackagesQuery()
	err := query.Validate()
	require.NoError(t, err)

	_, hasFilter := query.StatusFilter()
	assert.False(t, hasFilter)
}

func TestNewGetAllPackagesQueryWithStatus_Valid(t *testing.T) {
	query, err := queries.NewGetAllPackagesQueryWithStatus(packages.StatusPending)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	status, hasFilter := query.StatusFilter()
	assert.True(t, hasFilter)
	assert.Equal(t, packages.StatusPending, status)
}

func TestNewGetAllPackagesQueryWithStatus_InvalidStatus(t *testing.T) {
	_, err := queries.NewGetAllPackagesQueryWithStatus(packages.Status("lost"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetAllPackagesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllPackagesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllPackagesQueryIsNotConstructed)
}
