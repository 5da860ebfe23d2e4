package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvonet/lnet/request"
)

func TestDecodeValidRequest(t *testing.T) {
	req, err := request.Decode([]byte(`{"action":"check","network":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, "check", req.Action)
	assert.Equal(t, "x", req.Network)
}

func TestDecodeMalformedJSON(t *testing.T) {
	_, err := request.Decode([]byte(`{`))
	require.ErrorIs(t, err, request.ErrParse)
}

func TestSectionIDsParsesDecimalStrings(t *testing.T) {
	req, err := request.Decode([]byte(`{"sections":["1","2","30"]}`))
	require.NoError(t, err)
	ids, err := req.SectionIDs()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 30}, ids)
}

func TestSectionIDsRejectsNonNumeric(t *testing.T) {
	req, err := request.Decode([]byte(`{"sections":["abc"]}`))
	require.NoError(t, err)
	_, err = req.SectionIDs()
	require.ErrorIs(t, err, request.ErrParse)
}

func TestGradesParsesBothKeyAndValue(t *testing.T) {
	req, err := request.Decode([]byte(`{"testGrades":{"0":"7","1":"3"}}`))
	require.NoError(t, err)
	grades, err := req.Grades()
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 7, 1: 3}, grades)
}

func TestLearnerBuildsConditionValuesByIndex(t *testing.T) {
	req, err := request.Decode([]byte(`{"conditions":[["a","b"],[],["c"]]}`))
	require.NoError(t, err)
	learner, err := req.Learner()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, learner.ConditionValues[0])
	assert.NotContains(t, learner.ConditionValues, 1)
	assert.Equal(t, []string{"c"}, learner.ConditionValues[2])
}
