package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEncoder() *Encoder {
	return NewEncoder(map[string][]string{
		FieldGender:         {"Female", "Male", "Other"},
		FieldSmokingHistory: {"No Info", "current", "ever", "former", "never", "not current"},
	})
}

func TestEncodeKnownCategories(t *testing.T) {
	enc := testEncoder()

	cases := []struct {
		field string
		value string
		code  int
	}{
		{FieldGender, "Female", 0},
		{FieldGender, "Male", 1},
		{FieldGender, "Other", 2},
		{FieldSmokingHistory, "No Info", 0},
		{FieldSmokingHistory, "current", 1},
		{FieldSmokingHistory, "never", 4},
		{FieldSmokingHistory, "not current", 5},
	}

	for _, tc := range cases {
		code, err := enc.Encode(tc.field, tc.value)
		require.NoError(t, err, "%s=%s", tc.field, tc.value)
		assert.Equal(t, tc.code, code, "%s=%s", tc.field, tc.value)
	}
}

func TestEncodeUnknownCategory(t *testing.T) {
	enc := testEncoder()

	// No fallback code: anything outside the fitted vocabulary fails,
	// including case and whitespace variants.
	for _, value := range []string{"maybe", "female", "MALE", " Male", "never ", ""} {
		_, err := enc.Encode(FieldGender, value)
		require.Error(t, err, "value %q", value)

		catErr, ok := err.(*UnknownCategoryError)
		require.True(t, ok, "value %q", value)
		assert.Equal(t, FieldGender, catErr.Field)
		assert.Equal(t, value, catErr.Value)
	}
}

func TestEncodeUnknownField(t *testing.T) {
	enc := testEncoder()

	_, err := enc.Encode("blood_type", "AB")
	require.Error(t, err)
	assert.IsType(t, &UnknownCategoryError{}, err)
}

func TestClassesRoundTrip(t *testing.T) {
	enc := testEncoder()

	classes := enc.Classes(FieldSmokingHistory)
	require.Len(t, classes, 6)
	for want, value := range classes {
		code, err := enc.Encode(FieldSmokingHistory, value)
		require.NoError(t, err)
		assert.Equal(t, want, code)
	}

	assert.Nil(t, enc.Classes("blood_type"))
}
