package customerorder_test

import (
	"strings"
	"testing"
	"time"

	"shop/internal/core/domain/model/customerorder"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerOrder(t *testing.T) {
	createTime := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should create order without identity", func(t *testing.T) {
		o, err := customerorder.NewCustomerOrder("AAAAA", &createTime)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(0), o.ID())
		assert.False(t, o.HasID())
		assert.Equal(t, "AAAAA", o.CustomerID())
		assert.True(t, o.CreateTime().Equal(createTime))
	})

	t.Run("should normalize create time to UTC", func(t *testing.T) {
		zone := time.FixedZone("UTC+3", 3*60*60)
		local := time.Date(2021, 1, 1, 3, 0, 0, 0, zone)

		o, err := customerorder.NewCustomerOrder("AAAAA", &local)

		require.NoError(t, err)
		assert.Equal(t, time.UTC, o.CreateTime().Location())
		assert.True(t, o.CreateTime().Equal(createTime))
	})

	t.Run("should accept unknown create time", func(t *testing.T) {
		o, err := customerorder.NewCustomerOrder("AAAAA", nil)

		require.NoError(t, err)
		assert.False(t, o.HasCreateTime())
	})

	t.Run("should keep the zero instant as a known create time", func(t *testing.T) {
		var zero time.Time
		o, err := customerorder.NewCustomerOrder("AAAAA", &zero)

		require.NoError(t, err)
		assert.True(t, o.HasCreateTime())
		assert.True(t, o.CreateTime().IsZero())
	})

	t.Run("should fail with blank customer id", func(t *testing.T) {
		o, err := customerorder.NewCustomerOrder("  ", &createTime)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerId")
	})

	t.Run("should fail with oversized customer id", func(t *testing.T) {
		o, err := customerorder.NewCustomerOrder(strings.Repeat("x", customerorder.MaxCustomerIDLength+1), &createTime)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, o)
	})
}

func TestRestoreCustomerOrder(t *testing.T) {
	t.Run("should keep identity", func(t *testing.T) {
		o, err := customerorder.RestoreCustomerOrder(42, "BBBBB", nil)

		require.NoError(t, err)
		assert.Equal(t, int64(42), o.ID())
		assert.True(t, o.HasID())
	})

	t.Run("should reject non positive identity", func(t *testing.T) {
		for _, id := range []int64{0, -1} {
			o, err := customerorder.RestoreCustomerOrder(id, "BBBBB", nil)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Nil(t, o)
			assert.Contains(t, err.Error(), "is not greater than 0")
		}
	})

	t.Run("should join every violation", func(t *testing.T) {
		_, err := customerorder.RestoreCustomerOrder(0, "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCustomerOrder_Validate(t *testing.T) {
	var zero customerorder.CustomerOrder
	require.ErrorIs(t, zero.Validate(), customerorder.ErrCustomerOrderIsNotConstructed)

	var nilOrder *customerorder.CustomerOrder
	require.ErrorIs(t, nilOrder.Validate(), customerorder.ErrCustomerOrderIsNotConstructed)
}

func TestCustomerOrder_IsEqual(t *testing.T) {
	instant := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := customerorder.RestoreCustomerOrder(1, "AAAAA", &instant)
	require.NoError(t, err)
	shifted := instant.In(time.FixedZone("X", 3600))
	b, err := customerorder.RestoreCustomerOrder(1, "AAAAA", &shifted)
	require.NoError(t, err)
	c, err := customerorder.RestoreCustomerOrder(1, "BBBBB", &instant)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))

	var zero time.Time
	d, err := customerorder.RestoreCustomerOrder(1, "AAAAA", &zero)
	require.NoError(t, err)
	e, err := customerorder.RestoreCustomerOrder(1, "AAAAA", nil)
	require.NoError(t, err)
	assert.False(t, d.IsEqual(e), "a known zero instant differs from an unknown create time")
	assert.False(t, a.IsEqual(nil))
}
