package resources

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconIsCachedPNG(t *testing.T) {
	first, err := Icon(IconActive)
	require.NoError(t, err)
	second, err := Icon(IconActive)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, "tomato_active.png", first.Name())

	img, err := png.Decode(bytes.NewReader(first.Content()))
	require.NoError(t, err)
	assert.Equal(t, iconSize, img.Bounds().Dx())
}

func TestIconVariantsDiffer(t *testing.T) {
	active := MustIcon(IconActive)
	paused := MustIcon(IconPaused)
	assert.NotEqual(t, active.Content(), paused.Content())
}

func TestUnknownIcon(t *testing.T) {
	_, err := Icon("sepia")
	assert.Error(t, err)
	assert.Panics(t, func() { MustIcon("sepia") })
}
