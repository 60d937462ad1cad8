package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/sheikhrachel/gol-board/model"
)

const (
	labelHeight   = 16
	labelBaseline = 12
	labelPadding  = 4
)

var labelColor = color.RGBA{R: 230, G: 230, B: 235, A: 255}

// PNGRenderer writes one step_NNNN.png image per generation into a fresh
// run directory
type PNGRenderer struct {
	dir      string
	cellSize int
}

// NewPNGRenderer creates a uniquely named run directory under root.
// Each cell is drawn as a cellSize x cellSize square.
func NewPNGRenderer(root string, cellSize int) (*PNGRenderer, error) {
	if cellSize <= 0 {
		return nil, errors.Errorf("[NewPNGRenderer] cell size must be positive, got %d", cellSize)
	}
	dir := filepath.Join(root, uuid.New().String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "[NewPNGRenderer] failed to create directory: %+v", dir)
	}
	return &PNGRenderer{dir: dir, cellSize: cellSize}, nil
}

// Dir returns the directory frames are written to
func (r *PNGRenderer) Dir() string {
	return r.dir
}

// FramePath returns the file a generation is written to
func (r *PNGRenderer) FramePath(generation int) string {
	return filepath.Join(r.dir, fmt.Sprintf("step_%04d.png", generation))
}

// Render writes the frame for one generation
func (r *PNGRenderer) Render(g *model.Grid, generation int) error {
	img := r.Image(g, generation)

	path := r.FramePath(generation)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[PNGRenderer.Render] failed to create file: %+v", path)
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "[PNGRenderer.Render] failed to encode file: %+v", path)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "[PNGRenderer.Render] failed to close file: %+v", path)
	}
	return nil
}

// Image draws the grid below a band labelled with the generation number
func (r *PNGRenderer) Image(g *model.Grid, generation int) *image.RGBA {
	cells := image.NewRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	fillRGBA(cells.Pix, g, AliveColor, DeadColor)

	width, height := g.Cols()*r.cellSize, g.Rows()*r.cellSize
	img := image.NewRGBA(image.Rect(0, 0, width, labelHeight+height))
	draw.Draw(img, image.Rect(0, 0, width, labelHeight), image.Black, image.Point{}, draw.Src)
	xdraw.NearestNeighbor.Scale(img, image.Rect(0, labelHeight, width, labelHeight+height),
		cells, cells.Bounds(), xdraw.Src, nil)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(labelPadding, labelBaseline),
	}
	d.DrawString(fmt.Sprintf("gen %d", generation))
	return img
}
