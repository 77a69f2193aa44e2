package notifier

import (
	"fmt"
	"strings"

	"BacktestDesk/internal/model"
)

// FormatSnapshot renders a snapshot as a plain-text report.
func FormatSnapshot(snap *model.Snapshot) string {
	if snap == nil {
		return ""
	}
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 %s | %s | %s\n\n",
		snap.Symbol, snap.Interval.Label(), snap.CreatedAt.Format("2006-01-02 15:04")))

	st := snap.Stats
	arrow := "▼"
	if st.IsUp {
		arrow = "▲"
	}
	b.WriteString(fmt.Sprintf("Price: %.2f %s %+.2f (%+.2f%%)\n", st.CurrentPrice, arrow, st.Change, st.ChangePercent))
	b.WriteString(fmt.Sprintf("%d-bar high: %.2f | low: %.2f\n", st.Window, st.WindowHigh, st.WindowLow))
	b.WriteString(fmt.Sprintf("Avg volume: %.0f\n", st.AvgVolume))
	b.WriteString(fmt.Sprintf("Range position: %.0f%%\n", st.Position*100))

	if len(snap.Results) > 0 {
		b.WriteString("\n📈 Indicators:\n")
		for _, res := range snap.Results {
			b.WriteString("  " + resultLabel(res) + ":")
			for _, l := range res.Lines {
				b.WriteString(fmt.Sprintf(" %s=%.2f", l.Name, l.Last()))
			}
			b.WriteString("\n")
		}
	}

	if rd := snap.Readout; rd != nil && len(rd.Items) > 0 {
		b.WriteString("\n🔎 Readout:\n")
		for _, it := range rd.Items {
			b.WriteString(fmt.Sprintf("  %s %.2f: %s\n", it.Name, it.Value, it.Commentary))
		}
		if rd.WarningMsg != "" {
			b.WriteString(fmt.Sprintf("\n⚠️ %s\n", rd.WarningMsg))
		}
	}

	return b.String()
}

func resultLabel(res model.IndicatorResult) string {
	if res.Period > 0 {
		return fmt.Sprintf("%s(%d)", res.Type, res.Period)
	}
	return string(res.Type)
}
