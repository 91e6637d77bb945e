package charts

import (
	"bytes"
	"fmt"
	"image/png"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"
)

// ChartStyle defines the visual style of the frequency chart
type ChartStyle struct {
	Width       int
	Height      int
	Padding     int
	BarSpacing  int
	MaxBars     int
	BarColorRGB [3]float64
}

// FrequencyChartGenerator renders frequency rankings as a bar chart PNG
type FrequencyChartGenerator struct {
	style ChartStyle
}

// NewFrequencyChartGenerator creates a new chart generator with default style
func NewFrequencyChartGenerator() *FrequencyChartGenerator {
	return &FrequencyChartGenerator{
		style: ChartStyle{
			Width:       640,
			Height:      360,
			Padding:     30,
			BarSpacing:  4,
			MaxBars:     20,
			BarColorRGB: [3]float64{0.25, 0.55, 0.95},
		},
	}
}

// Generate renders the top-ranked numbers of a frequency result as a PNG.
// Returns an error when the result has no rankings to draw.
func (g *FrequencyChartGenerator) Generate(game entities.GameType, result *entities.FrequencyResult) ([]byte, error) {
	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			Debug("Frequency chart generation completed")
	}()

	if result == nil || result.Status != entities.AnalysisStatusOK || len(result.Rankings) == 0 {
		return nil, fmt.Errorf("no frequency rankings to chart")
	}

	rankings := result.Rankings
	if len(rankings) > g.style.MaxBars {
		rankings = rankings[:g.style.MaxBars]
	}

	maxCount := rankings[0].Count
	for _, r := range rankings {
		if r.Count > maxCount {
			maxCount = r.Count
		}
	}
	if maxCount == 0 {
		return nil, fmt.Errorf("no frequency rankings to chart")
	}

	dc := gg.NewContext(g.style.Width, g.style.Height)

	// Background gradient
	for y := 0; y < g.style.Height; y++ {
		t := float64(y) / float64(g.style.Height)
		dc.SetRGB(0.04+t*0.03, 0.04+t*0.04, 0.08+t*0.08)
		dc.DrawLine(0, float64(y), float64(g.style.Width), float64(y))
		dc.Stroke()
	}

	titleFace, err := loadFont(gobold.TTF, 15)
	if err != nil {
		return nil, fmt.Errorf("failed to load title font: %w", err)
	}
	labelFace, err := loadFont(gomono.TTF, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}

	// Title
	dc.SetFontFace(titleFace)
	dc.SetRGB(1, 1, 1)
	title := fmt.Sprintf("%s - Hot Numbers (%d draws)", game.DisplayName(), result.DrawsCounted)
	dc.DrawString(title, float64(g.style.Padding), 24)

	plotTop := 46.0
	plotBottom := float64(g.style.Height - g.style.Padding - 14)
	plotHeight := plotBottom - plotTop
	plotWidth := float64(g.style.Width - 2*g.style.Padding)
	barWidth := plotWidth/float64(len(rankings)) - float64(g.style.BarSpacing)

	dc.SetFontFace(labelFace)
	for i, r := range rankings {
		x := float64(g.style.Padding) + float64(i)*(barWidth+float64(g.style.BarSpacing))
		h := plotHeight * float64(r.Count) / float64(maxCount)

		// Bar with a vertical fade
		cr, cg, cb := g.style.BarColorRGB[0], g.style.BarColorRGB[1], g.style.BarColorRGB[2]
		dc.SetRGBA(cr, cg, cb, 0.9)
		dc.DrawRectangle(x, plotBottom-h, barWidth, h)
		dc.Fill()

		// Count above the bar
		dc.SetRGB(0.9, 0.9, 0.95)
		countLabel := fmt.Sprintf("%d", r.Count)
		cw, _ := dc.MeasureString(countLabel)
		dc.DrawString(countLabel, x+barWidth/2-cw/2, plotBottom-h-4)

		// Number below the axis
		numLabel := fmt.Sprintf("%d", r.Number)
		nw, _ := dc.MeasureString(numLabel)
		dc.DrawString(numLabel, x+barWidth/2-nw/2, plotBottom+14)
	}

	// Axis line
	dc.SetRGBA(0.6, 0.6, 0.7, 0.8)
	dc.SetLineWidth(1)
	dc.DrawLine(float64(g.style.Padding), plotBottom, float64(g.style.Width-g.style.Padding), plotBottom)
	dc.Stroke()

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}

	return buf.Bytes(), nil
}

// loadFont loads a font face from TTF byte data
func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:       size,
		DPI:        72,
		Hinting:    font.HintingFull,
		SubPixelsX: 4,
		SubPixelsY: 4,
	})
	return face, nil
}
