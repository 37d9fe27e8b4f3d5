package queries_test

import (
	"testing"
	"time"

	"sales/internal/core/application/usecases/queries"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewGetSalesReportQuery_ValidRange(t *testing.T) {
	query, err := queries.NewGetSalesReportQuery(strPtr("2025-03-01"), strPtr("2025-03-31"))

	require.NoError(t, err)
	require.NotNil(t, query.Start())
	require.NotNil(t, query.End())
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *query.Start())
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), *query.End())
}

func TestNewGetSalesReportQuery_OpenBounds(t *testing.T) {
	t.Run("no bounds at all", func(t *testing.T) {
		query, err := queries.NewGetSalesReportQuery(nil, nil)

		require.NoError(t, err)
		assert.Nil(t, query.Start())
		assert.Nil(t, query.End())
	})

	t.Run("start only", func(t *testing.T) {
		query, err := queries.NewGetSalesReportQuery(strPtr("2025-03-01"), nil)

		require.NoError(t, err)
		require.NotNil(t, query.Start())
		assert.Nil(t, query.End())
	})

	t.Run("end only", func(t *testing.T) {
		query, err := queries.NewGetSalesReportQuery(nil, strPtr("2025-03-31"))

		require.NoError(t, err)
		assert.Nil(t, query.Start())
		require.NotNil(t, query.End())
	})
}

func TestNewGetSalesReportQuery_EndBeforeStart(t *testing.T) {
	_, err := queries.NewGetSalesReportQuery(strPtr("2025-03-31"), strPtr("2025-03-01"))

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrInvalidRange)

	var rangeErr *queries.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Contains(t, rangeErr.Error(), "2025-03-01")
	assert.Contains(t, rangeErr.Error(), "2025-03-31")
}

func TestNewGetSalesReportQuery_SameDayRangeIsValid(t *testing.T) {
	_, err := queries.NewGetSalesReportQuery(strPtr("2025-03-15"), strPtr("2025-03-15"))

	require.NoError(t, err)
}

func TestNewGetSalesReportQuery_MalformedDates(t *testing.T) {
	testCases := []struct {
		name  string
		start *string
		end   *string
	}{
		{name: "not a date", start: strPtr("yesterday"), end: nil},
		{name: "wrong layout", start: strPtr("01.03.2025"), end: nil},
		{name: "bad end", start: strPtr("2025-03-01"), end: strPtr("2025-13-45")},
		{name: "datetime instead of date", start: strPtr("2025-03-01T10:00:00Z"), end: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := queries.NewGetSalesReportQuery(tc.start, tc.end)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestNoDataError_Message(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	err := queries.NewNoDataError(&start, nil)

	require.ErrorIs(t, err, queries.ErrNoData)
	assert.Contains(t, err.Error(), "2025-03-01")
	assert.Contains(t, err.Error(), "-")
}

func TestGetSalesReportQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.GetSalesReportQuery

	err := query.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetSalesReportQueryIsNotConstructed)
}
