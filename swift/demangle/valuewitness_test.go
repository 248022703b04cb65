package demangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueWitnessFromCode(t *testing.T) {
	k, ok := ValueWitnessFromCode("et")
	require.True(t, ok)
	assert.Equal(t, GetEnumTagSinglePayload, k)

	_, ok = ValueWitnessFromCode("zz")
	assert.False(t, ok)
	_, ok = ValueWitnessFromCode("")
	assert.False(t, ok)
	_, ok = ValueWitnessFromCode("alx")
	assert.False(t, ok)
}

func TestValueWitnessRoundTrip(t *testing.T) {
	kinds := ValueWitnessKinds()
	require.Len(t, kinds, 24)
	codes := map[string]bool{}
	for _, k := range kinds {
		code := k.Code()
		require.Len(t, code, 2, k.String())
		assert.False(t, codes[code], "duplicate code %q", code)
		codes[code] = true

		got, ok := ValueWitnessFromCode(code)
		require.True(t, ok, code)
		assert.Equal(t, k, got)
		assert.Equal(t, code, got.Code())
	}
}

func TestValueWitnessNames(t *testing.T) {
	cases := []struct {
		code, name, display string
	}{
		{"al", "AllocateBuffer", "allocateBuffer"},
		{"ca", "AssignWithCopy", "assignWithCopy"},
		{"ta", "AssignWithTake", "assignWithTake"},
		{"xx", "Destroy", "destroy"},
		{"Cp", "InitializeBufferWithCopy", "initializeBufferWithCopy"},
		{"tk", "InitializeWithTake", "initializeWithTake"},
		{"et", "GetEnumTagSinglePayload", "getEnumTagSinglePayload"},
		{"st", "StoreEnumTagSinglePayload", "storeEnumTagSinglePayload"},
	}
	for _, tc := range cases {
		k, ok := ValueWitnessFromCode(tc.code)
		require.True(t, ok, tc.code)
		assert.Equal(t, tc.name, k.String())
		assert.Equal(t, tc.display, k.DisplayName())
	}

	bad := ValueWitnessKind(200)
	assert.Equal(t, "", bad.Code())
	assert.Equal(t, "ValueWitnessKind(200)", bad.String())
}
