package record_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/theplant/filterset"
	"github.com/theplant/filterset/record"
)

func jsonMarshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

type Product struct {
	ID     uuid.UUID `gorm:"primaryKey"`
	Name   string    `gorm:"not null"`
	Status string    `gorm:"not null"`
}

type ProductInput struct {
	ProductID record.Opt[uuid.UUID]
	Name      record.Opt[string]
	Status    record.Opt[string]
}

var (
	colProductID     = clause.Column{Table: "products", Name: "id"}
	colProductName   = clause.Column{Table: "products", Name: "name"}
	colProductStatus = clause.Column{Table: "products", Name: "status"}
)

var productFilters = filterset.NewSchema(
	filterset.WhereFilter("ProductID", colProductID),
	filterset.SubstringFilter("Name", colProductName),
	filterset.WhereFilter("Status", colProductStatus).WithDefault("active"),
)

func TestFields(t *testing.T) {
	id := uuid.New()
	in := &ProductInput{
		ProductID: record.Of(id),
		Name:      record.Null[string](),
	}

	values, err := record.Fields(productFilters, in)
	require.NoError(t, err)

	assert.Equal(t, filterset.Present(id), values.Field("ProductID"))
	assert.True(t, values.Field("Name").IsNull())
	assert.True(t, values.Field("Status").IsAbsent())
}

func TestFieldsSkipsUndeclaredStructFields(t *testing.T) {
	type narrowInput struct {
		Name record.Opt[string]
	}

	values, err := record.Fields(productFilters, &narrowInput{Name: record.Of("x")})
	require.NoError(t, err)

	assert.True(t, values.Field("Name").IsPresent())
	assert.True(t, values.Field("ProductID").IsAbsent())
}

func TestFromJSONAppliesDeclaredDefaults(t *testing.T) {
	var in ProductInput
	err := record.FromJSON(productFilters, []byte(`{"Name":"test"}`), &in)
	require.NoError(t, err)

	assert.Equal(t, "test", in.Name.MustGet())
	assert.Equal(t, "active", in.Status.MustGet())
	assert.True(t, in.ProductID.IsAbsent())
}

func TestFromJSONDefaultDoesNotOverrideSuppliedNull(t *testing.T) {
	var in ProductInput
	err := record.FromJSON(productFilters, []byte(`{"Status":null}`), &in)
	require.NoError(t, err)

	assert.True(t, in.Status.IsNull())
}

func TestFromJSONEmptyDocument(t *testing.T) {
	var in ProductInput
	err := record.FromJSON(productFilters, nil, &in)
	require.NoError(t, err)

	assert.True(t, in.Name.IsAbsent())
	assert.Equal(t, "active", in.Status.MustGet())
}

func TestFromProto(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{
		"Name":   "test",
		"Status": nil,
	})
	require.NoError(t, err)

	values := record.FromProto(s)
	assert.Equal(t, filterset.Present("test"), values.Field("Name"))
	assert.True(t, values.Field("Status").IsNull())
	assert.True(t, values.Field("ProductID").IsAbsent())

	assert.Nil(t, record.FromProto(nil))
}

func TestBindAndResolveEndToEnd(t *testing.T) {
	db, err := gorm.Open(postgres.Open("host=localhost user=filterset dbname=filterset"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	var in ProductInput
	require.NoError(t, record.FromJSON(productFilters, []byte(`{"Name":"alp"}`), &in))

	values, err := record.Fields(productFilters, &in)
	require.NoError(t, err)

	q, err := productFilters.Resolve(db.Model(&Product{}), values)
	require.NoError(t, err)
	q = q.Find(&[]*Product{})
	require.NoError(t, q.Error)

	sql := q.Statement.SQL.String()
	assert.Contains(t, sql, `"products"."name" ILIKE $1`)
	assert.Contains(t, sql, `"products"."status" = $2`)
	assert.Equal(t, []any{"%alp%", "active"}, q.Statement.Vars)
}
