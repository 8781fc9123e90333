package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighroom-backend/testutil"
)

type weightJSON struct {
	ID         int64   `json:"id"`
	WrestlerID int64   `json:"wrestlerId"`
	Name       string  `json:"name"`
	Date       string  `json:"date"`
	Weight     float64 `json:"weight"`
	Type       string  `json:"type"`
}

func history(t *testing.T, env *testEnv, token, query string) []weightJSON {
	t.Helper()
	resp := env.do(t, http.MethodGet, "/api/weights"+query, nil, testutil.Bearer(token))
	testutil.AssertStatus(t, resp, http.StatusOK)

	var body struct {
		Weights []weightJSON `json:"weights"`
	}
	testutil.DecodeJSON(t, resp, &body)
	return body.Weights
}

func TestAddWeightValidation(t *testing.T) {
	env := setup(t)
	school := testutil.CreateTestSchool(t, env.db, "central", "hunter2")
	testutil.CreateTestWrestler(t, env.db, school, "Sam", "Lee", 132, "Male")
	token := env.login(t, "central", "hunter2")

	cases := []struct {
		name    string
		body    map[string]interface{}
		message string
	}{
		{"no weight", map[string]interface{}{"firstName": "Sam", "lastName": "Lee", "date": "2025-01-06", "type": "before"}, "Missing fields"},
		{"no name", map[string]interface{}{"lastName": "Lee", "weight": 135, "date": "2025-01-06"}, "Missing fields"},
		{"bad date", map[string]interface{}{"firstName": "Sam", "lastName": "Lee", "weight": 135, "date": "someday"}, "Invalid date"},
		{"unknown wrestler", map[string]interface{}{"firstName": "Kim", "lastName": "Park", "weight": 121, "date": "2025-01-06"}, "Wrestler not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := env.do(t, http.MethodPost, "/api/weights", tc.body, testutil.Bearer(token))
			testutil.AssertStatus(t, resp, http.StatusBadRequest)
			assert.Equal(t, tc.message, errorBody(t, resp))
		})
	}
	assert.Equal(t, 0, testutil.Count(t, env.db, `SELECT COUNT(*) FROM weights`))
}

func TestWeightsIsolatedPerSchool(t *testing.T) {
	env := setup(t)
	central := testutil.CreateTestSchool(t, env.db, "central", "hunter2")
	testutil.CreateTestSchool(t, env.db, "west", "pw")
	testutil.CreateTestWrestler(t, env.db, central, "Sam", "Lee", 132, "Male")
	centralToken := env.login(t, "central", "hunter2")
	westToken := env.login(t, "west", "pw")

	resp := env.do(t, http.MethodPost, "/api/weights", map[string]interface{}{
		"firstName": "Sam", "lastName": "Lee", "weight": 135.4, "date": "01/06/2025", "type": "before",
	}, testutil.Bearer(westToken))
	testutil.AssertStatus(t, resp, http.StatusBadRequest)

	resp = env.do(t, http.MethodPost, "/api/weights", map[string]interface{}{
		"firstName": "Sam", "lastName": "Lee", "weight": "135.4", "date": "01/06/2025", "type": "before",
	}, testutil.Bearer(centralToken))
	testutil.AssertStatus(t, resp, http.StatusOK)

	assert.Empty(t, history(t, env, westToken, ""))

	records := history(t, env, centralToken, "?wrestler=sam")
	require.Len(t, records, 1)
	assert.Equal(t, "2025-01-06", records[0].Date)
	assert.InDelta(t, 135.4, records[0].Weight, 1e-9)
}

func TestAddWeightRejectsNonFiniteWeight(t *testing.T) {
	env := setup(t)
	school := testutil.CreateTestSchool(t, env.db, "central", "hunter2")
	testutil.CreateTestWrestler(t, env.db, school, "Sam", "Lee", 132, "Male")
	token := env.login(t, "central", "hunter2")

	for _, weight := range []string{"NaN", "Infinity", "-Inf"} {
		resp := env.do(t, http.MethodPost, "/api/weights", map[string]interface{}{
			"firstName": "Sam", "lastName": "Lee", "weight": weight, "date": "2025-01-02", "type": "before",
		}, testutil.Bearer(token))
		testutil.AssertStatus(t, resp, http.StatusBadRequest)
	}
	assert.Equal(t, 0, testutil.Count(t, env.db, `SELECT COUNT(*) FROM weights`))

	assert.Empty(t, history(t, env, token, ""))
}
