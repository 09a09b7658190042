package stoolwalk

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FilmConfig defines the visual parameters for capturing walk footage.
type FilmConfig struct {
	Width      int        // Frame width in pixels
	Height     int        // Frame height in pixels
	Scale      float64    // Pixels per model unit
	SeatHeight int        // Seat bar height above the floor, in pixels
	Background color.RGBA // Background color
	Foreground color.RGBA // Stool and label color
	OutputDir  string     // Directory to save film frames
}

// DefaultFilmConfig returns a 640x240 monochrome rig at two pixels per model
// unit, writing frames into "footage".
func DefaultFilmConfig() FilmConfig {
	return FilmConfig{
		Width:      640,
		Height:     240,
		Scale:      2,
		SeatHeight: 120,
		Background: color.RGBA{0, 0, 0, 255},
		Foreground: color.RGBA{255, 255, 255, 255},
		OutputDir:  "footage",
	}
}

// Film renders recorded walks to numbered PNG frames, a side view of the
// stool tracked across the floor. The camera follows the seat's midpoint so
// the stool stays centered however far it walks.
type Film struct {
	config     FilmConfig
	font       font.Face
	frameCount int
}

// NewFilm creates a film rig. The output directory is created if it does not
// exist.
func NewFilm(config FilmConfig) *Film {
	if config.OutputDir != "" {
		os.MkdirAll(config.OutputDir, 0755)
	}
	return &Film{
		config: config,
		font:   basicfont.Face7x13,
	}
}

// FrameCount returns the number of frames captured so far.
func (f *Film) FrameCount() int {
	return f.frameCount
}

// CaptureWalk renders every recorded frame of the trace into sequentially
// numbered PNG files under the configured output directory. Returns the
// total number of frames captured.
func (f *Film) CaptureWalk(trace *Trace) (int, error) {
	for _, frame := range trace.Frames() {
		filename := fmt.Sprintf("%s/frame_%04d.png", f.config.OutputDir, f.frameCount)
		if err := f.CaptureFrame(frame, filename); err != nil {
			return f.frameCount, fmt.Errorf("failed to capture frame %d: %w", f.frameCount, err)
		}
		f.frameCount++
	}
	return f.frameCount, nil
}

// CaptureFrame renders a single pose to a PNG image: the floor, the two leg
// pairs, the seat bar, and a status line with the clock, distance, and tilt.
func (f *Film) CaptureFrame(frame Frame, filename string) error {
	img := image.NewRGBA(image.Rect(0, 0, f.config.Width, f.config.Height))

	// Fill background
	for y := 0; y < f.config.Height; y++ {
		for x := 0; x < f.config.Width; x++ {
			img.Set(x, y, f.config.Background)
		}
	}

	groundY := f.config.Height - 40
	seatY := groundY - f.config.SeatHeight
	if seatY < 20 {
		seatY = 20
	}

	// Camera tracks the seat midpoint
	mid := frame.SeatMidpoint()
	toX := func(pos float64) int {
		return f.config.Width/2 + int((pos-mid)*f.config.Scale)
	}

	// Floor
	f.line(img, 0, groundY, f.config.Width-1, groundY)

	// Legs, seat edge to contact point
	f.line(img, toX(frame.SeatFront), seatY, toX(frame.FrontLeg), groundY)
	f.line(img, toX(frame.SeatBack), seatY, toX(frame.BackLeg), groundY)

	// Seat bar
	f.line(img, toX(frame.SeatBack), seatY, toX(frame.SeatFront), seatY)

	// Status line
	status := fmt.Sprintf("%s  t=%.0f  d=%.2f  tilt=%.5f",
		frame.Phase, frame.Elapsed, frame.Distance, frame.Tilt)
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(f.config.Foreground),
		Face: f.font,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(8 << 6), Y: fixed.Int26_6((f.config.Height - 12) << 6)},
	}
	drawer.DrawString(status)

	// Save to file
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// line plots a straight segment in the foreground color, stepping along the
// longer axis so the segment stays gap-free.
func (f *Film) line(img *image.RGBA, x0, y0, x1, y1 int) {
	dx := x1 - x0
	dy := y1 - y0
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		f.plot(img, x0, y0)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		f.plot(img, x, y)
	}
}

// plot sets one pixel, ignoring anything the camera has panned past.
func (f *Film) plot(img *image.RGBA, x, y int) {
	if x < 0 || x >= f.config.Width || y < 0 || y >= f.config.Height {
		return
	}
	img.Set(x, y, f.config.Foreground)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
