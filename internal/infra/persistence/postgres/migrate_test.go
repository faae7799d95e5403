package postgres

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// foreignKey mirrors one row of sqlite's foreign_key_list pragma.
type foreignKey struct {
	Table    string `gorm:"column:table"`
	From     string `gorm:"column:from"`
	To       string `gorm:"column:to"`
	OnDelete string `gorm:"column:on_delete"`
}

// The foreign keys must live on the child tables: orders references
// customers, sales references orders and products, and the parent tables
// carry no constraints of their own.
func TestMigrate_ForeignKeysOnChildTables(t *testing.T) {
	db := newTestDB(t)

	var orderKeys []foreignKey
	require.NoError(t, db.Raw("PRAGMA foreign_key_list(orders)").Scan(&orderKeys).Error)
	require.Len(t, orderKeys, 1)
	assert.Equal(t, "customers", orderKeys[0].Table)
	assert.Equal(t, "customer_id", orderKeys[0].From)
	assert.Equal(t, "CASCADE", orderKeys[0].OnDelete)

	var saleKeys []foreignKey
	require.NoError(t, db.Raw("PRAGMA foreign_key_list(sales)").Scan(&saleKeys).Error)
	require.Len(t, saleKeys, 2)

	byParent := make(map[string]foreignKey, len(saleKeys))
	for _, key := range saleKeys {
		byParent[key.Table] = key
	}
	require.Contains(t, byParent, "orders")
	assert.Equal(t, "order_id", byParent["orders"].From)
	assert.Equal(t, "CASCADE", byParent["orders"].OnDelete)
	require.Contains(t, byParent, "products")
	assert.Equal(t, "product_id", byParent["products"].From)
	assert.Equal(t, "CASCADE", byParent["products"].OnDelete)

	for _, parent := range []string{"customers", "products"} {
		var keys []foreignKey
		require.NoError(t, db.Raw(fmt.Sprintf("PRAGMA foreign_key_list(%s)", parent)).Scan(&keys).Error)
		assert.Empty(t, keys, "%s must not carry a foreign key", parent)
	}
}
