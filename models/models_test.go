package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntAcceptsNumbersAndStrings(t *testing.T) {
	cases := map[string]int64{
		`{"weightClass":132}`:     132,
		`{"weightClass":"145"}`:   145,
		`{"weightClass":" 106 "}`: 106,
		`{"weightClass":""}`:      0,
		`{"weightClass":120.0}`:   120,
	}
	for body, want := range cases {
		var in WrestlerInput
		require.NoError(t, json.Unmarshal([]byte(body), &in), body)
		require.NotNil(t, in.WeightClass, body)
		assert.Equal(t, Int(want), *in.WeightClass, body)
	}
}

func TestIntRejectsGarbage(t *testing.T) {
	for _, body := range []string{`{"weightClass":"heavy"}`, `{"weightClass":132.5}`, `{"weightClass":true}`} {
		var in WrestlerInput
		assert.Error(t, json.Unmarshal([]byte(body), &in), body)
	}
}

func TestAbsentFieldsStayNil(t *testing.T) {
	var in WrestlerInput
	require.NoError(t, json.Unmarshal([]byte(`{"lastName":"Lee","weightClass":null}`), &in))
	assert.Nil(t, in.FirstName)
	assert.Nil(t, in.WeightClass)
	require.NotNil(t, in.LastName)
	assert.Equal(t, "Lee", *in.LastName)
}

func TestFloat(t *testing.T) {
	var in WeightInput
	require.NoError(t, json.Unmarshal([]byte(`{"weight":"135.4"}`), &in))
	assert.Equal(t, Float(135.4), in.Weight)

	require.NoError(t, json.Unmarshal([]byte(`{"weight":133}`), &in))
	assert.Equal(t, Float(133), in.Weight)

	assert.Error(t, json.Unmarshal([]byte(`{"weight":"heavy"}`), &in))

	for _, body := range []string{`{"weight":"NaN"}`, `{"weight":"Infinity"}`, `{"weight":"-inf"}`, `{"weight":1e400}`} {
		assert.Error(t, json.Unmarshal([]byte(body), &in), body)
	}
}

func TestLoginCredentials(t *testing.T) {
	code, pw := LoginRequest{Code: " central ", Password: "hunter2"}.Credentials()
	assert.Equal(t, "central", code)
	assert.Equal(t, "hunter2", pw)

	code, pw = LoginRequest{LoginCode: "central", PasswordHash: "hunter2"}.Credentials()
	assert.Equal(t, "central", code)
	assert.Equal(t, "hunter2", pw)
}
