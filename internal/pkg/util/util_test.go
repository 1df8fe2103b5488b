package util

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectSparkline_Empty(t *testing.T) {
	s := ProjectSparkline(nil, 120, 32, 2)
	assert.Empty(t, s.Path)
	assert.Empty(t, s.Coords)
}

func TestProjectSparkline_ConstantValues(t *testing.T) {
	s := ProjectSparkline([]float64{0.5, 0.5, 0.5, 0.5}, 120, 32, 2)
	require.Len(t, s.Coords, 4)
	for _, c := range s.Coords {
		assert.Equal(t, 30.0, c.Y)
	}
	assert.Equal(t, "M2.00,30.00 L40.67,30.00 L79.33,30.00 L118.00,30.00", s.Path)
}

func TestProjectSparkline_MinBottomMaxTop(t *testing.T) {
	s := ProjectSparkline([]float64{0.2, 0.9, 0.2}, 100, 50, 5)
	require.Len(t, s.Coords, 3)

	assert.Equal(t, Coord{X: 5, Y: 45}, s.Coords[0])
	assert.Equal(t, Coord{X: 50, Y: 5}, s.Coords[1])
	assert.Equal(t, Coord{X: 95, Y: 45}, s.Coords[2])
	assert.Equal(t, "M5.00,45.00 L50.00,5.00 L95.00,45.00", s.Path)
}

func TestProjectSparkline_SinglePoint(t *testing.T) {
	s := ProjectSparkline([]float64{0.7}, 100, 20, 2)
	require.Len(t, s.Coords, 1)
	assert.Equal(t, Coord{X: 2, Y: 18}, s.Coords[0])
	assert.Equal(t, "M2.00,18.00", s.Path)
}

func TestHashString_Stable(t *testing.T) {
	a := HashString("user-1:2026-10-15")
	b := HashString("user-1:2026-10-15")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, HashString("user-1:2026-10-16"))
	assert.Equal(t, HashString(fmt.Sprintf("%s:%s", "u", "d")), HashString("u:d"))
}

func TestRuneHelpers(t *testing.T) {
	assert.Equal(t, 3, RuneLen("  日記帳 \n"))
	assert.Equal(t, "日記", TruncateRunes("日記帳", 2))
	assert.Equal(t, "abc", TruncateRunes("abc", 10))
	assert.Equal(t, 20, ClampInt(0, 20, 1, 100))
	assert.Equal(t, 100, ClampInt(500, 20, 1, 100))
	assert.Equal(t, 1, ClampInt(-3, 20, 1, 100))
}

func TestValidateDTO(t *testing.T) {
	type sample struct {
		Name string `validate:"min=2"`
	}
	assert.NoError(t, ValidateDTO(&sample{Name: "ok"}))

	err := ValidateDTO(&sample{Name: "x"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Name", ve.Field)
	assert.Equal(t, "min", ve.Tag)
}
