package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_WireFormat(t *testing.T) {
	data, err := Encode(DayMove{DayID: "d1", Index: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"DAY","item":{"id":"d1","index":2}}`, string(data))

	data, err = Encode(ActivityMove{ActivityID: "a1", Index: 0, DayID: "d1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ACTIVITY","item":{"id":"a1","index":0,"dayId":"d1"}}`, string(data))
}

func TestEncode_RejectsInvalid(t *testing.T) {
	_, err := Encode(DayMove{Index: 1})
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, err = Encode(ActivityMove{ActivityID: "a1"})
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, err = Encode(nil)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Payload
		wantErr bool
	}{
		{
			name: "day",
			data: `{"type":"DAY","item":{"id":"d1","index":1}}`,
			want: DayMove{DayID: "d1", Index: 1},
		},
		{
			name: "activity",
			data: `{"type":"ACTIVITY","item":{"id":"a1","index":3,"dayId":"d2"}}`,
			want: ActivityMove{ActivityID: "a1", Index: 3, DayID: "d2"},
		},
		{name: "empty", data: ``, wantErr: true},
		{name: "not json", data: `drag me`, wantErr: true},
		{name: "unknown type", data: `{"type":"TRIP","item":{"id":"t","index":0}}`, wantErr: true},
		{name: "missing id", data: `{"type":"DAY","item":{"index":0}}`, wantErr: true},
		{name: "negative index", data: `{"type":"DAY","item":{"id":"d","index":-1}}`, wantErr: true},
		{name: "activity without day", data: `{"type":"ACTIVITY","item":{"id":"a","index":0}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Kind(), got.Kind())
		})
	}
}
