package queries_test

import (
	"testing"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/driver"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllDriversQuery_Valid(t *testing.T) {
	query := queries.NewGetAllDriversQuery()
	err := query.Validate()
	require.NoError(t, err)

	_, hasFilter := query.StatusFilter()
	assert.False(t, hasFilter)
}

func TestNewGetAllDriversQueryWithStatus_Valid(t *testing.T) {
	query, err := queries.NewGetAllDriversQueryWithStatus(driver.StatusBusy)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	status, hasFilter := query.StatusFilter()
	assert.True(t, hasFilter)
	assert.Equal(t, driver.StatusBusy, status)
}

func TestNewGetAllDriversQueryWithStatus_InvalidStatus(t *testing.T) {
	_, err := queries.NewGetAllDriversQueryWithStatus(driver.Status("sleeping"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetAllDriversQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllDriversQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllDriversQueryIsNotConstructed)
}
