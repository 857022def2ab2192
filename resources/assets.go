package resources

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
)

const iconSize = 64

// IconVariant selects the tint of the generated tomato icon.
type IconVariant string

const (
	IconActive IconVariant = "active"
	IconPaused IconVariant = "paused"
)

var iconCache sync.Map

var bodyColors = map[IconVariant]color.NRGBA{
	IconActive: {R: 224, G: 62, B: 54, A: 255},
	IconPaused: {R: 150, G: 150, B: 150, A: 255},
}

var leafColor = color.NRGBA{R: 76, G: 160, B: 72, A: 255}

// Icon returns the tomato icon for variant as a PNG resource.
func Icon(variant IconVariant) (fyne.Resource, error) {
	if cached, ok := iconCache.Load(variant); ok {
		return cached.(fyne.Resource), nil
	}

	body, ok := bodyColors[variant]
	if !ok {
		return nil, fmt.Errorf("unknown icon variant %q", variant)
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, drawTomato(body)); err != nil {
		return nil, fmt.Errorf("encode icon %s: %w", variant, err)
	}

	resource := fyne.NewStaticResource(fmt.Sprintf("tomato_%s.png", variant), encoded.Bytes())
	iconCache.Store(variant, resource)
	return resource, nil
}

// MustIcon returns the icon or panics on error.
func MustIcon(variant IconVariant) fyne.Resource {
	resource, err := Icon(variant)
	if err != nil {
		panic(err)
	}
	return resource
}

func drawTomato(body color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	center := float64(iconSize) / 2
	radius := center - 4

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - (center + 3)
			if dx*dx+dy*dy <= radius*radius {
				img.SetNRGBA(x, y, body)
			}
		}
	}

	// Leaf: a small diamond on top of the body.
	leafCenterX, leafCenterY, leafHalf := iconSize/2, 8, 7
	for y := leafCenterY - leafHalf/2; y <= leafCenterY+leafHalf/2; y++ {
		for x := leafCenterX - leafHalf; x <= leafCenterX+leafHalf; x++ {
			if abs(x-leafCenterX)+2*abs(y-leafCenterY) <= leafHalf {
				img.SetNRGBA(x, y, leafColor)
			}
		}
	}
	return img
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
