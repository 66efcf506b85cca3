// Package dashview renders the dashboard summary counters and chart widgets.
package dashview

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/nwssu/gymadmin/pkg/adminclient"
)

// Placeholder is shown in each counter until the first fetch lands.
const Placeholder = "—"

// ChartKind selects a widget shape.
type ChartKind string

const (
	// KindLine is the multi-series membership overview.
	KindLine ChartKind = "line"
	// KindBar is the active-by-type bar chart.
	KindBar ChartKind = "bar"
	// KindDoughnut is the status-proportion doughnut.
	KindDoughnut ChartKind = "doughnut"
)

// ChartSpec describes one chart widget to draw.
type ChartSpec struct {
	Kind   ChartKind
	Labels []string
	Series map[string][]int64
}

// Widget is a live chart instance bound to one slot.
type Widget interface {
	Destroy()
}

// WidgetFactory constructs a widget from a spec. The charting backend is
// behind this seam.
type WidgetFactory func(spec ChartSpec) Widget

// Counters is the summary numbers panel.
type Counters struct {
	Total      string
	Active     string
	MostActive string
}

// Renderer paints the dashboard page: three counters plus three chart
// slots, each replaced atomically on re-render.
type Renderer struct {
	client  *adminclient.Client
	factory WidgetFactory
	logger  *zap.SugaredLogger

	counters Counters
	widgets  map[string]Widget
}

// NewRenderer creates a dashboard renderer with placeholder counters.
func NewRenderer(client *adminclient.Client, factory WidgetFactory, logger *zap.SugaredLogger) *Renderer {
	return &Renderer{
		client:  client,
		factory: factory,
		logger:  logger,
		counters: Counters{
			Total:      Placeholder,
			Active:     Placeholder,
			MostActive: Placeholder,
		},
		widgets: make(map[string]Widget),
	}
}

// Counters returns the current counter panel.
func (r *Renderer) Counters() Counters {
	return r.counters
}

// Widget returns the live widget in the named slot, or nil.
func (r *Renderer) Widget(slot string) Widget {
	return r.widgets[slot]
}

// Replace destroys any widget already in the slot before constructing the
// new one, so repeated refreshes never stack duplicate charts.
func (r *Renderer) Replace(slot string, spec ChartSpec) Widget {
	if old, ok := r.widgets[slot]; ok && old != nil {
		old.Destroy()
	}
	widget := r.factory(spec)
	r.widgets[slot] = widget
	return widget
}

// Refresh fetches the dashboard summary once and repaints the counters and
// all three chart slots.
func (r *Renderer) Refresh(ctx context.Context) error {
	data, err := r.client.GetDashboardSummary(ctx)
	if err != nil {
		r.logger.Errorw("dashboard summary fetch failed", "error", err)
		return err
	}

	r.counters = Counters{
		Total:      strconv.FormatInt(data.Summary.Total, 10),
		Active:     strconv.FormatInt(data.Summary.Active, 10),
		MostActive: data.Summary.MostActive,
	}

	r.Replace("overview", ChartSpec{
		Kind:   KindLine,
		Labels: data.OverviewChart.Labels,
		Series: map[string][]int64{
			"students":  data.OverviewChart.Students,
			"faculty":   data.OverviewChart.Faculty,
			"outsiders": data.OverviewChart.Outsiders,
		},
	})
	r.Replace("status", ChartSpec{
		Kind:   KindBar,
		Labels: data.StatusChart.Labels,
		Series: map[string][]int64{"values": data.StatusChart.Values},
	})
	r.Replace("statusOverview", ChartSpec{
		Kind:   KindDoughnut,
		Labels: data.StatusOverview.Labels,
		Series: map[string][]int64{"values": data.StatusOverview.Values},
	})

	return nil
}
