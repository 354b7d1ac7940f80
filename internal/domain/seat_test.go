package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func TestParseSeatID(t *testing.T) {
	tests := []struct {
		input   string
		want    SeatID
		wantErr bool
	}{
		{input: "1-1", want: SeatID{Row: 1, Number: 1}},
		{input: "12-15", want: SeatID{Row: 12, Number: 15}},
		{input: "0-1", wantErr: true},
		{input: "01-1", wantErr: true},
		{input: "1-01", wantErr: true},
		{input: "001-1", wantErr: true},
		{input: "00-00", wantErr: true},
		{input: "99999-1", wantErr: true},
		{input: "1-0", wantErr: true},
		{input: "1", wantErr: true},
		{input: "a-1", wantErr: true},
		{input: "-1-2", wantErr: true},
		{input: "1-2-3", wantErr: true},
		{input: " 1-2", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeatID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidSeatID))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestSeatCellUnmarshalJSON(t *testing.T) {
	price := decimal.NewFromInt(900)

	tests := []struct {
		name    string
		input   string
		want    SeatCell
		wantErr bool
	}{
		{
			name:  "bare type string",
			input: `"vip"`,
			want:  SeatCell{Type: SeatVIP},
		},
		{
			name:  "object with price",
			input: `{"type": "vip", "price": 900}`,
			want:  SeatCell{Type: SeatVIP, Price: &price},
		},
		{
			name:  "object with string price",
			input: `{"type": "vip", "price": "900"}`,
			want:  SeatCell{Type: SeatVIP, Price: &price},
		},
		{
			name:  "object without type",
			input: `{"price": 900}`,
			want:  SeatCell{Price: &price},
		},
		{
			name:    "number is rejected",
			input:   `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got SeatCell
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, decimalComparer); diff != "" {
				t.Errorf("SeatCell mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	vip := decimal.NewFromInt(800)
	std := decimal.NewFromInt(500)

	layout := Layout{
		{{Type: SeatVIP, Price: &vip}, {Type: SeatVIP, Price: &vip}},
		{{Type: SeatStandard, Price: &std}, {Type: SeatDisabled}},
	}

	raw, err := json.Marshal(layout)
	require.NoError(t, err)

	got, err := ParseLayout(raw)
	require.NoError(t, err)

	if diff := cmp.Diff(layout, got, decimalComparer); diff != "" {
		t.Errorf("layout mismatch after round trip (-want +got):\n%s", diff)
	}
}

func TestParseLayout(t *testing.T) {
	t.Run("null document", func(t *testing.T) {
		got, err := ParseLayout([]byte("null"))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("mixed cell forms", func(t *testing.T) {
		got, err := ParseLayout([]byte(`[["standard", {"type": "vip"}], ["disabled"]]`))
		require.NoError(t, err)
		assert.Equal(t, Layout{
			{{Type: SeatStandard}, {Type: SeatVIP}},
			{{Type: SeatDisabled}},
		}, got)
	})

	t.Run("not a grid", func(t *testing.T) {
		_, err := ParseLayout([]byte(`{"rows": 3}`))
		require.Error(t, err)
	})
}

func TestLayoutFits(t *testing.T) {
	layout := Layout{
		{{Type: SeatStandard}, {Type: SeatStandard}, {Type: SeatStandard}},
		{{Type: SeatStandard}},
	}

	assert.True(t, layout.Fits(2, 3))
	assert.True(t, layout.Fits(5, 10))
	assert.False(t, layout.Fits(1, 3))
	assert.False(t, layout.Fits(2, 2))
}
