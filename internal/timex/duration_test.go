package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "minutes", input: "15m", want: 15 * time.Minute},
		{name: "days", input: "7d", want: 7 * 24 * time.Hour},
		{name: "fractional days", input: "1.5d", want: 36 * time.Hour},
		{name: "composite", input: "1h30m", want: 90 * time.Minute},
		{name: "garbage", input: "7x", wantErr: true},
		{name: "garbage days", input: "xd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Validity Duration `json:"validity"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"validity": "7d"}`), &p))
	assert.Equal(t, Duration(7*24*time.Hour), p.Validity)

	require.NoError(t, json.Unmarshal([]byte(`{"validity": 60000000000}`), &p))
	assert.Equal(t, Duration(time.Minute), p.Validity)

	require.Error(t, json.Unmarshal([]byte(`{"validity": true}`), &p))
	require.Error(t, json.Unmarshal([]byte(`{"validity": "abc"}`), &p))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(15 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"15m0s"`, string(b))
}
