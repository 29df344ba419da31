package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/go-strut/strut/pkg/geometry"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Draw a bar layout to a PNG",
		Long: `Lay out a bar description with its stub widget extents and draw the
resulting geometry to a PNG: one filled rectangle per widget over the
bar bounds, with the consumed total outlined.

Bars are small; pass --zoom to scale the image up for inspection.`,
		Usage: "strut render <bar.yaml> <out.png> [--zoom N]",
		Run:   runRender,
	})
}

// Widget fill colors, cycled in leaf order.
var palette = []color.RGBA{
	{0x4f, 0x9d, 0xd9, 0xff},
	{0xd9, 0x8a, 0x4f, 0xff},
	{0x6f, 0xc2, 0x7a, 0xff},
	{0xc2, 0x6f, 0xb5, 0xff},
	{0xd9, 0xc8, 0x4f, 0xff},
	{0x8a, 0x7a, 0xe0, 0xff},
}

func runRender(args []string) error {
	var positional []string
	zoom := 1
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--zoom":
			if i+1 >= len(args) {
				return fmt.Errorf("--zoom requires a factor")
			}
			i++
			arg = "--zoom=" + args[i]
			fallthrough
		case strings.HasPrefix(arg, "--zoom="):
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "--zoom="))
			if err != nil || n < 1 {
				return fmt.Errorf("invalid zoom factor %q", strings.TrimPrefix(arg, "--zoom="))
			}
			zoom = n
		default:
			positional = append(positional, arg)
		}
	}
	if len(positional) != 2 {
		return fmt.Errorf("config and output paths are required\n\nUsage: strut render <bar.yaml> <out.png> [--zoom N]")
	}

	bar, _, err := loadBar(positional[0])
	if err != nil {
		return err
	}
	res, err := computeBar(bar)
	if err != nil {
		return err
	}

	img := drawLayout(bar.Bounds, res.Widgets, res.Total)
	if zoom > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx()*zoom, img.Bounds().Dy()*zoom))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		img = dst
	}

	f, err := os.Create(positional[1])
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", positional[1], err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", positional[1], img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

// drawLayout paints widget rectangles over the bar bounds. Coordinates
// are shifted so the bar's own origin lands at pixel (0,0).
func drawLayout(bounds geometry.Rect, widgets []geometry.Rect, total geometry.Rect) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bounds.Width, bounds.Height))
	fill(img, image.Rect(0, 0, bounds.Width, bounds.Height), color.RGBA{0x20, 0x20, 0x24, 0xff})

	for i, r := range widgets {
		if r.Empty() {
			continue
		}
		fill(img, pixelRect(r, bounds), palette[i%len(palette)])
	}
	outline(img, pixelRect(total, bounds), color.RGBA{0xf0, 0xf0, 0xf0, 0xff})
	return img
}

func pixelRect(r, bounds geometry.Rect) image.Rectangle {
	return image.Rect(r.X-bounds.X, r.Y-bounds.Y, r.Right()-bounds.X, r.Bottom()-bounds.Y)
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func outline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}
