package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderStatusQuery(t *testing.T) {
	t.Run("should create a query for a tracking id", func(t *testing.T) {
		trackingID := order.NewTrackingID()

		query, err := queries.NewGetOrderStatusQuery(trackingID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.TrackingID().IsEqual(trackingID))
	})

	t.Run("should reject an empty tracking id", func(t *testing.T) {
		_, err := queries.NewGetOrderStatusQuery(order.TrackingID{})

		require.Error(t, err)
	})
}

func TestGetOrderStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderStatusQueryIsNotConstructed)
}
