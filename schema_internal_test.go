package filterset

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=filterset dbname=filterset"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestResolveFieldWithoutVariant(t *testing.T) {
	schema := NewSchema(Field{name: "Broken"})

	_, err := schema.Resolve(newDryRunDB(t).Table("products"), Values{
		"Broken": Present(1),
	})
	require.Error(t, err)

	var configErr *ConfigurationError
	assert.True(t, errors.As(err, &configErr))
	assert.Contains(t, err.Error(), "no filter variant")
}

func TestResolveFieldWithUnknownVariant(t *testing.T) {
	schema := NewSchema(Field{
		name:    "Odd",
		kind:    fieldKind(42),
		columns: []clause.Column{{Table: "products", Name: "id"}},
	})

	_, err := schema.Resolve(newDryRunDB(t).Table("products"), Values{
		"Odd": Present(1),
	})
	require.Error(t, err)

	var configErr *ConfigurationError
	assert.True(t, errors.As(err, &configErr))
	assert.Contains(t, err.Error(), "unknown filter variant")
}

func TestResolveNilArguments(t *testing.T) {
	schema := NewSchema()

	_, err := schema.Resolve(nil, Values{})
	assert.Error(t, err)

	_, err = schema.Resolve(newDryRunDB(t), nil)
	assert.Error(t, err)
}

func TestValueStates(t *testing.T) {
	assert.True(t, Absent().IsAbsent())
	assert.True(t, Value{}.IsAbsent())
	assert.True(t, Null().IsNull())
	assert.Nil(t, Null().Interface())

	v := Present(42)
	assert.True(t, v.IsPresent())
	assert.False(t, v.IsNull())
	assert.Equal(t, 42, v.Interface())

	// Present(nil) is still present, distinct from explicit null.
	assert.True(t, Present(nil).IsPresent())
}
