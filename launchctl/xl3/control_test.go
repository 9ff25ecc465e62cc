package xl3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlIndexRanges(t *testing.T) {
	tests := []struct {
		class       ControlClass
		count       int
		first, last int
	}{
		{ClassFader, 8, FaderIndexFirst, FaderIndexLast},
		{ClassEncoder, 24, EncoderRow1IndexFirst, EncoderRow3IndexLast},
		{ClassButton, 16, ButtonTopRowIndexFirst, ButtonBottomRowIndexLast},
	}

	seen := map[int]ControlClass{}
	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			for n := 1; n <= tt.count; n++ {
				idx, err := ControlIndex(tt.class, n)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, idx, tt.first)
				assert.LessOrEqual(t, idx, tt.last)

				prev, dup := seen[idx]
				assert.False(t, dup, "index %d of %s %d already used by %s", idx, tt.class, n, prev)
				seen[idx] = tt.class
			}
		})
	}

	// The three classes cover the whole address space exactly once.
	assert.Len(t, seen, NumControlIndices)
	for idx := ControlIndexFirst; idx <= ControlIndexLast; idx++ {
		assert.Contains(t, seen, idx)
	}
}

func TestControlIndexKnownValues(t *testing.T) {
	tests := []struct {
		class ControlClass
		num   int
		want  int
	}{
		{ClassFader, 1, 5},
		{ClassFader, 8, 12},
		{ClassEncoder, 1, 13},
		{ClassEncoder, 9, 21},
		{ClassEncoder, 17, 29},
		{ClassEncoder, 24, 36},
		{ClassButton, 1, 37},
		{ClassButton, 8, 44},
		{ClassButton, 9, 45},
		{ClassButton, 16, 52},
	}
	for _, tt := range tests {
		got, err := ControlIndex(tt.class, tt.num)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %d", tt.class, tt.num)
	}
}

func TestControlIndexOutOfRange(t *testing.T) {
	tests := []struct {
		class ControlClass
		num   int
	}{
		{ClassFader, 0},
		{ClassFader, 9},
		{ClassEncoder, 0},
		{ClassEncoder, 25},
		{ClassButton, 0},
		{ClassButton, 17},
		{ClassButton, -3},
		{ControlClass(7), 1},
	}
	for _, tt := range tests {
		_, err := ControlIndex(tt.class, tt.num)
		assert.ErrorIs(t, err, ErrInvalidIndex, "%s %d", tt.class, tt.num)
	}
}

func TestValidControlIndex(t *testing.T) {
	assert.False(t, ValidControlIndex(4))
	assert.True(t, ValidControlIndex(5))
	assert.True(t, ValidControlIndex(52))
	assert.False(t, ValidControlIndex(53))
}

func TestControlChangeTable(t *testing.T) {
	buttons := []uint8{24, 25, 26, 27, 28, 29, 30, 31, 45, 46, 47, 48, 49, 50, 51, 52}
	for i, want := range buttons {
		con, err := ButtonControl(i + 1)
		require.NoError(t, err)
		cc, err := ControlChange(con)
		require.NoError(t, err)
		assert.Equal(t, want, cc, "button %d", i+1)
	}

	for n := 1; n <= NumEncoders; n++ {
		con, err := EncoderControl(n)
		require.NoError(t, err)
		cc, err := ControlChange(con)
		require.NoError(t, err)
		assert.Equal(t, uint8(12+n), cc, "encoder %d", n)
	}

	for n := 1; n <= NumFaders; n++ {
		con, err := FaderControl(n)
		require.NoError(t, err)
		cc, err := ControlChange(con)
		require.NoError(t, err)
		assert.Equal(t, uint8(4+n), cc, "fader %d", n)
	}

	_, err := ControlChange(ControlInvalid)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestControlsForCC(t *testing.T) {
	// Button 1 shares CC 24 with encoder 12.
	assert.ElementsMatch(t, []Control{ControlEncoderRow2[3], ControlButtonTop[0]}, ControlsForCC(24))
	// Button 8 shares CC 31 with encoder 19, in the third row.
	assert.ElementsMatch(t, []Control{ControlEncoderRow3[2], ControlButtonTop[7]}, ControlsForCC(31))
	assert.Equal(t, []Control{ControlFader[0]}, ControlsForCC(5))
	assert.Equal(t, []Control{ControlButtonBottom[7]}, ControlsForCC(52))
	assert.Empty(t, ControlsForCC(0))
	assert.Empty(t, ControlsForCC(127))
	assert.Empty(t, ControlsForCC(200))
}

func TestInputControlRejectsOutOfRange(t *testing.T) {
	_, err := ButtonControl(17)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = EncoderControl(25)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = FaderControl(0)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestLEDIndex(t *testing.T) {
	for con := Control(0); con < NumControls; con++ {
		idx, err := LEDIndex(con)
		require.NoError(t, err)
		assert.True(t, ValidControlIndex(idx))
	}

	idx, err := LEDIndex(ControlFader[0])
	require.NoError(t, err)
	assert.Equal(t, 5, idx)

	idx, err = LEDIndex(ControlButtonBottom[0])
	require.NoError(t, err)
	assert.Equal(t, 45, idx)

	_, err = LEDIndex(ControlInvalid)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}
