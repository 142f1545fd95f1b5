package admission

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexBoolUnmarshal(t *testing.T) {
	cases := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{`true`, true, false},
		{`false`, false, false},
		{`1`, true, false},
		{`0`, false, false},
		{`"1"`, true, false},
		{`"0"`, false, false},
		{`"TRUE"`, true, false},
		{`"False"`, false, false},
		{`"tRuE"`, true, false},
		{`"yes"`, false, true},
		{`"definitely"`, false, true},
		{`[1]`, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			var b FlexBool
			err := json.Unmarshal([]byte(tc.raw), &b)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, bool(b))
		})
	}
}

func TestFlexIntUnmarshal(t *testing.T) {
	cases := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{`4`, 4, false},
		{`"4"`, 4, false},
		{`""`, 0, false},
		{`" "`, 0, false},
		{`"-2"`, -2, false},
		{`"four"`, 0, true},
		{`{}`, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			var i FlexInt
			err := json.Unmarshal([]byte(tc.raw), &i)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, int(i))
		})
	}
}

func TestSubmitRequestOptionalFields(t *testing.T) {
	payload := `{"jobName":"train","vcName":"research","userName":"alice",
		"resourcegpu":"2","preemptionAllowed":"TRUE","jobPriority":150}`

	var req SubmitRequest
	assert.NoError(t, json.Unmarshal([]byte(payload), &req))
	assert.Nil(t, req.JobID)
	assert.Nil(t, req.JobPath)
	assert.Equal(t, FlexInt(2), *req.ResourceGPU)
	assert.Equal(t, FlexBool(true), *req.PreemptionAllowed)
	assert.Equal(t, FlexInt(150), *req.JobPriority)
}
