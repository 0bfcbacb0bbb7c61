package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/napalu/shellkit/types"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		kind    types.Kind
		wantErr bool
	}{
		{name: "string accepts anything", token: "anything at all", kind: types.String},
		{name: "valid int", token: "42", kind: types.Int},
		{name: "invalid int", token: "4.2", kind: types.Int, wantErr: true},
		{name: "valid float", token: "4.2", kind: types.Float},
		{name: "invalid float", token: "x", kind: types.Float, wantErr: true},
		{name: "valid bool", token: "true", kind: types.Bool},
		{name: "invalid bool", token: "yep", kind: types.Bool, wantErr: true},
		{name: "valid duration", token: "1h30m", kind: types.Duration},
		{name: "invalid duration", token: "soon", kind: types.Duration, wantErr: true},
		{name: "valid timestamp", token: "2024-06-01", kind: types.Timestamp},
		{name: "invalid timestamp", token: "not-a-date", kind: types.Timestamp, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.token, tt.kind)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeAcceptsCommonFormats(t *testing.T) {
	for _, token := range []string{"2024-06-01", "2024-06-01T12:30:00Z", "June 1, 2024"} {
		value, err := Time(token)
		assert.NoError(t, err, token)
		assert.Equal(t, 2024, value.Year())
		assert.Equal(t, time.June, value.Month())
	}
}

func TestIntAndFloat(t *testing.T) {
	i, err := Int("-7")
	assert.NoError(t, err)
	assert.Equal(t, int64(-7), i)

	f, err := Float("3.14")
	assert.NoError(t, err)
	assert.InDelta(t, 3.14, f, 0.001)
}
