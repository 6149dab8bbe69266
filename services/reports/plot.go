package reports

import (
	"context"
	"image/color"
	"path/filepath"

	"github.com/JohnMCMa/maftools/models/summaries"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	highlightColor = color.RGBA{R: 0xb2, G: 0x18, B: 0x2b, A: 0xff}
	defaultColor   = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xb0}
)

const (
	minRadius = 2
	maxRadius = 12
)

// PlotRenderer draws the domain summary as a bubble scatter: mutations on
// x, genes on y, radius growing with the gene count. Highlighted domains
// are labelled.
type PlotRenderer struct {
	Directory string
	Width     vg.Length
	Height    vg.Length
}

func NewPlotRenderer(directory string, widthInches, heightInches float64) *PlotRenderer {
	return &PlotRenderer{
		Directory: directory,
		Width:     vg.Length(widthInches) * vg.Inch,
		Height:    vg.Length(heightInches) * vg.Inch,
	}
}

func DomainPlotPath(directory string, baseName string) string {
	return filepath.Join(directory, baseName+"_domainSummary.png")
}

func (r *PlotRenderer) Render(ctx context.Context, baseName string, report *summaries.Report) error {
	if len(report.Domains) == 0 {
		log.Warn().Msg("no domain carries a mutation; skipping domain plot")
		return nil
	}

	p, err := BuildDomainPlot(report.Domains, report.Highlighted)
	if err != nil {
		return err
	}

	path := DomainPlotPath(r.Directory, baseName)
	if err := p.Save(r.Width, r.Height, path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}

	log.Info().Str("plot", path).Msg("domain plot rendered")
	return ctx.Err()
}

// BuildDomainPlot lays out the bubble scatter without saving it.
func BuildDomainPlot(rows []summaries.DomainSummaryRecord, highlighted []string) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "# mutations"
	p.Y.Label.Text = "# genes"

	xys := make(plotter.XYs, len(rows))
	for i, row := range rows {
		xys[i].X = float64(row.NMuts)
		xys[i].Y = float64(row.NGenes)
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build scatter")
	}

	maxGenes := lo.MaxBy(rows, func(a, b summaries.DomainSummaryRecord) bool {
		return a.NGenes > b.NGenes
	}).NGenes
	isHighlighted := lo.Associate(highlighted, func(label string) (string, bool) {
		return label, true
	})

	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		style := draw.GlyphStyle{
			Color:  defaultColor,
			Radius: vg.Points(minRadius + (maxRadius-minRadius)*float64(rows[i].NGenes)/float64(maxGenes)),
			Shape:  draw.CircleGlyph{},
		}
		if isHighlighted[rows[i].DomainLabel] {
			style.Color = highlightColor
		}
		return style
	}
	p.Add(scatter)

	var (
		labelXYs plotter.XYs
		labels   []string
	)
	for i, row := range rows {
		if isHighlighted[row.DomainLabel] {
			labelXYs = append(labelXYs, xys[i])
			labels = append(labels, row.DomainLabel)
		}
	}
	if len(labels) > 0 {
		textLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labels})
		if err != nil {
			return nil, errors.Wrap(err, "failed to build labels")
		}
		textLabels.Offset = vg.Point{X: vg.Points(maxRadius / 2), Y: 0}
		p.Add(textLabels)
	}

	return p, nil
}
