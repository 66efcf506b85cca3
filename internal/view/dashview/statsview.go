package dashview

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nwssu/gymadmin/pkg/adminclient"
)

// RevenuePanel is the statistics page's revenue counters.
type RevenuePanel struct {
	Daily   string
	Monthly string
	Total   string
}

// StatisticsView paints the statistics page: revenue figures, the recent
// activity feed and the registrations chart. Each section fetches on its
// own so one failing endpoint leaves the others populated.
type StatisticsView struct {
	client  *adminclient.Client
	factory WidgetFactory
	logger  *zap.SugaredLogger

	revenue RevenuePanel
	logs    []adminclient.LogEntry
	widgets map[string]Widget
}

// NewStatisticsView creates a statistics view with placeholder figures.
func NewStatisticsView(client *adminclient.Client, factory WidgetFactory, logger *zap.SugaredLogger) *StatisticsView {
	return &StatisticsView{
		client:  client,
		factory: factory,
		logger:  logger,
		revenue: RevenuePanel{Daily: Placeholder, Monthly: Placeholder, Total: Placeholder},
		widgets: make(map[string]Widget),
	}
}

// Revenue returns the current revenue panel.
func (v *StatisticsView) Revenue() RevenuePanel {
	return v.revenue
}

// Logs returns the activity feed rows.
func (v *StatisticsView) Logs() []adminclient.LogEntry {
	return v.logs
}

// Widget returns the live widget in the named slot, or nil.
func (v *StatisticsView) Widget(slot string) Widget {
	return v.widgets[slot]
}

// Refresh runs the three section fetches. A failed section keeps its
// placeholder while the others still render; the first failure is returned.
func (v *StatisticsView) Refresh(ctx context.Context) error {
	var firstErr error

	if stats, err := v.client.GetMembersStatistics(ctx); err != nil {
		v.logger.Errorw("members statistics fetch failed", "error", err)
		firstErr = err
	} else {
		v.revenue = RevenuePanel{
			Daily:   fmt.Sprintf("₱%.2f", stats.Stats.DailyRevenue),
			Monthly: fmt.Sprintf("₱%.2f", stats.Stats.MonthlyRevenue),
			Total:   fmt.Sprintf("₱%.2f", stats.Stats.TotalRevenue),
		}
	}

	if logs, err := v.client.GetMembershipLogs(ctx); err != nil {
		v.logger.Errorw("membership logs fetch failed", "error", err)
		if firstErr == nil {
			firstErr = err
		}
	} else {
		v.logs = logs
	}

	if summary, err := v.client.GetStatisticsSummary(ctx); err != nil {
		v.logger.Errorw("statistics summary fetch failed", "error", err)
		if firstErr == nil {
			firstErr = err
		}
	} else {
		v.replace("registrations", ChartSpec{
			Kind:   KindLine,
			Labels: summary.OverviewChart.Labels,
			Series: map[string][]int64{
				"students":  summary.OverviewChart.Students,
				"faculty":   summary.OverviewChart.Faculty,
				"outsiders": summary.OverviewChart.Outsiders,
			},
		})
	}

	return firstErr
}

func (v *StatisticsView) replace(slot string, spec ChartSpec) {
	if old, ok := v.widgets[slot]; ok && old != nil {
		old.Destroy()
	}
	v.widgets[slot] = v.factory(spec)
}
