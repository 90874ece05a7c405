package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexAmountUnmarshal(t *testing.T) {
	cases := []struct {
		name     string
		payload  string
		expected string
	}{
		{"json number", `{"v": 7.5}`, "7.5"},
		{"dot string", `{"v": "7.50"}`, "7.5"},
		{"comma string", `{"v": "7,50"}`, "7.5"},
		{"empty string", `{"v": ""}`, "0"},
		{"null", `{"v": null}`, "0"},
		{"absent", `{}`, "0"},
		{"garbage", `{"v": "abc"}`, "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var doc struct {
				V FlexAmount `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &doc))
			assert.True(t, doc.V.Equal(decimal.RequireFromString(tc.expected)),
				"payload %s parsed to %s, expected %s", tc.payload, doc.V, tc.expected)
		})
	}
}
