package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"number", `123.45`, "123.45"},
		{"integer", `500`, "500"},
		{"numeric string", `"42.5"`, "42.5"},
		{"padded numeric string", `" 42.5 "`, "42.5"},
		{"empty string", `""`, "0"},
		{"null", `null`, "0"},
		{"garbage string", `"abc"`, "0"},
		{"negative", `-7.5`, "-7.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.input), &a))
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestAmountMarshalJSON(t *testing.T) {
	data, err := json.Marshal(AmountFromFloat(99.9))
	require.NoError(t, err)
	assert.Equal(t, "99.9", string(data))
}

func TestFlexIDUnmarshalJSON(t *testing.T) {
	var doc struct {
		ID FlexID `json:"id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id": "a-b-c"}`), &doc))
	assert.Equal(t, FlexID("a-b-c"), doc.ID)

	// Records written before string ids carry raw numeric timestamps.
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1717171717171}`), &doc))
	assert.Equal(t, FlexID("1717171717171"), doc.ID)
}
