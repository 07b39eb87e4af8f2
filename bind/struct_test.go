package bind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	treedec "github.com/treedec/treedec"
	"github.com/treedec/treedec/bind"
)

type address struct {
	City string `json:"city"`
	Zip  string `json:"zip"`
}

type user struct {
	Name    string         `json:"name"`
	Age     int            `json:"age"`
	Email   *string        `json:"email"`
	Tags    []string       `json:"tags"`
	Home    address        `json:"home"`
	Extra   map[string]int `json:"extra"`
	Secret  string         `json:"-"`
	Renamed string         `treedec:"alias"`
	Loose   string         `treedec:",optional"`
}

func TestStruct_FullBinding(t *testing.T) {
	root := treedec.MustFromAny(map[string]any{
		"name":  "alice",
		"age":   30,
		"email": "a@example.com",
		"tags":  []any{"x", "y"},
		"home":  map[string]any{"city": "Kyoto", "zip": "600"},
		"extra": map[string]any{"visits": 3},
		"alias": "r",
		"Loose": "present",
	})
	var u user
	require.NoError(t, bind.Struct(treedec.NewDecoder(root), &u))
	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, 30, u.Age)
	require.NotNil(t, u.Email)
	assert.Equal(t, "a@example.com", *u.Email)
	assert.Equal(t, []string{"x", "y"}, u.Tags)
	assert.Equal(t, address{City: "Kyoto", Zip: "600"}, u.Home)
	assert.Equal(t, map[string]int{"visits": 3}, u.Extra)
	assert.Equal(t, "r", u.Renamed)
	assert.Equal(t, "present", u.Loose)
}

func TestStruct_OptionalKindsAbsent(t *testing.T) {
	root := treedec.MustFromAny(map[string]any{
		"name":  "bob",
		"age":   1,
		"home":  map[string]any{"city": "c", "zip": "z"},
		"alias": "r",
	})
	var u user
	require.NoError(t, bind.Struct(treedec.NewDecoder(root), &u))
	assert.Nil(t, u.Email)
	assert.Nil(t, u.Tags)
	assert.Nil(t, u.Extra)
	assert.Empty(t, u.Loose)
}

func TestStruct_PresentNullPointerField(t *testing.T) {
	root := treedec.MustFromAny(map[string]any{
		"name":  "bob",
		"age":   1,
		"email": nil,
		"home":  map[string]any{"city": "c", "zip": "z"},
		"alias": "r",
	})
	var u user
	require.NoError(t, bind.Struct(treedec.NewDecoder(root), &u))
	assert.Nil(t, u.Email)
}

func TestStruct_RequiredMissing(t *testing.T) {
	root := treedec.MustFromAny(map[string]any{"name": "x"})
	var u user
	err := bind.Struct(treedec.NewDecoder(root), &u)
	de, ok := treedec.AsDecodeError(err)
	require.True(t, ok, "expected DecodeError, got %v", err)
	assert.Equal(t, treedec.CodeKeyNotFound, de.Code)
	assert.Equal(t, "/", de.Path.String())
	assert.Contains(t, de.Hint, "age")
}

func TestStruct_NestedFailurePath(t *testing.T) {
	root := treedec.MustFromAny(map[string]any{
		"name":  "x",
		"age":   1,
		"home":  map[string]any{"city": 42, "zip": "z"},
		"alias": "r",
	})
	var u user
	err := bind.Struct(treedec.NewDecoder(root), &u)
	de, ok := treedec.AsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, treedec.CodeTypeMismatch, de.Code)
	assert.Equal(t, "/home/city", de.Path.String())
}

func TestStruct_WidthOverflow(t *testing.T) {
	type narrow struct {
		N int8 `json:"n"`
	}
	root := treedec.MustFromAny(map[string]any{"n": 1000})
	var v narrow
	err := bind.Struct(treedec.NewDecoder(root), &v)
	de, ok := treedec.AsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, treedec.CodeTypeMismatch, de.Code)
	assert.Equal(t, "/n", de.Path.String())
}

func TestStruct_UnsignedRejectsNegative(t *testing.T) {
	type counts struct {
		N uint16 `json:"n"`
	}
	root := treedec.MustFromAny(map[string]any{"n": -1})
	var v counts
	err := bind.Struct(treedec.NewDecoder(root), &v)
	de, ok := treedec.AsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, treedec.CodeTypeMismatch, de.Code)
}

func TestStruct_EmptyInterfaceField(t *testing.T) {
	type loose struct {
		Raw any `json:"raw" treedec:",optional"`
	}
	root := treedec.MustFromAny(map[string]any{
		"raw": map[string]any{"k": []any{int64(1)}},
	})
	var v loose
	require.NoError(t, bind.Struct(treedec.NewDecoder(root), &v))
	assert.Equal(t, map[string]any{"k": []any{int64(1)}}, v.Raw)
}

type custom struct {
	doubled int
}

func (c *custom) UnmarshalValue(d *treedec.Decoder) error {
	n, err := d.Scalar().Int()
	if err != nil {
		return err
	}
	c.doubled = n * 2
	return nil
}

func TestStruct_UnmarshalerTakesPrecedence(t *testing.T) {
	type wrapper struct {
		C custom `json:"c"`
	}
	root := treedec.MustFromAny(map[string]any{"c": 21})
	var w wrapper
	require.NoError(t, bind.Struct(treedec.NewDecoder(root), &w))
	assert.Equal(t, 42, w.C.doubled)
}

func TestStruct_TargetMustBePointer(t *testing.T) {
	var u user
	err := bind.Struct(treedec.NewDecoder(treedec.Keyed(nil)), u)
	require.Error(t, err)
}
