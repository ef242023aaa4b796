package internal

import (
	"strings"
	"testing"

	"github.com/srwiley/oksvg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconForCode(t *testing.T) {
	assert.Equal(t, IconSun, IconForCode(0))
	assert.Equal(t, IconSunBehindCloud, IconForCode(2))
	assert.Equal(t, IconCloud, IconForCode(45))
	assert.Equal(t, IconRain, IconForCode(63))
	assert.Equal(t, IconSnow, IconForCode(73))
	assert.Equal(t, IconStorm, IconForCode(95))
	assert.Equal(t, IconCloud, IconForCode(1234), "unknown codes fall back to cloud")
}

func TestEveryIconHasValidSVG(t *testing.T) {
	for icon := IconSun; icon <= IconStorm; icon++ {
		svg, ok := iconSVG[icon]
		require.True(t, ok, "icon %d has no glyph", icon)

		_, err := oksvg.ReadIconStream(strings.NewReader(svg))
		assert.NoError(t, err, "icon %d does not parse", icon)
	}
}
