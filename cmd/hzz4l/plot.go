package main

import (
	"fmt"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"

	"github.com/opendata-hep/hzz4l/ana"
	"github.com/opendata-hep/hzz4l/histio"
)

// drawOverlay plots every category's mass spectrum on shared axes:
// observed data as points with error bars, simulation as colored
// outlines.
func drawOverlay(path string, def histio.Def, results []ana.Result, hists []*hbook.H1D) error {
	p := hplot.New()
	p.Title.Text = "H → ZZ* → 4ℓ"
	p.X.Label.Text = "4-lepton invariant mass (GeV)"
	p.Y.Label.Text = fmt.Sprintf("events / %.1f GeV", (def.Hi-def.Lo)/float64(def.Bins))
	p.X.Tick.Marker = preciseTicks{n: 5}
	p.Y.Tick.Marker = preciseTicks{n: 5}
	p.Legend.Top = true
	p.Legend.Left = true

	for i, res := range results {
		switch res.Category.Kind {
		case ana.KindData:
			h := hplot.NewH1D(hists[i], hplot.WithYErrBars(true))
			h.LineStyle.Width = 0
			p.Add(h)
			p.Legend.Add(res.Category.Name, h)
		default:
			h := hplot.NewH1D(hists[i])
			h.LineStyle.Color = res.Category.Color.NRGBA()
			p.Add(h)
			p.Legend.Add(res.Category.Name, h)
		}
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
