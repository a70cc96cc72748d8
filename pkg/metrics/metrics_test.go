package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/PatiFroNati/shot-plot-app/pkg/metrics"
)

// gather returns the metric families currently exposed on the global registry.
func gather() map[string]float64 {
	families, err := metrics.GetRegistry().Gather()
	So(err, ShouldBeNil)

	out := make(map[string]float64)
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				out[fam.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[fam.GetName()] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				out[fam.GetName()] += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return out
}

func TestRecordShot(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		before := gather()

		Convey("When recording a scoring shot", func() {
			metrics.RecordShot(9)
			after := gather()

			Convey("Then the shot counter and score histogram advance", func() {
				So(after["shotplot_range_shots_recorded_total"], ShouldEqual, before["shotplot_range_shots_recorded_total"]+1)
				So(after["shotplot_range_shot_score"], ShouldEqual, before["shotplot_range_shot_score"]+1)
				So(after["shotplot_range_shots_off_target_total"], ShouldEqual, before["shotplot_range_shots_off_target_total"])
			})
		})

		Convey("When recording a miss", func() {
			metrics.RecordShot(0)
			after := gather()

			Convey("Then the off-target counter advances too", func() {
				So(after["shotplot_range_shots_off_target_total"], ShouldEqual, before["shotplot_range_shots_off_target_total"]+1)
			})
		})
	})
}

func TestLifecycleCounters(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		before := gather()

		Convey("When recording log lifecycle events", func() {
			metrics.RecordLogClear()
			metrics.RecordTargetSwitch()
			metrics.RecordExport(5)
			metrics.RecordExportEmpty()
			after := gather()

			Convey("Then each counter advances once", func() {
				So(after["shotplot_range_log_clears_total"], ShouldEqual, before["shotplot_range_log_clears_total"]+1)
				So(after["shotplot_range_target_switches_total"], ShouldEqual, before["shotplot_range_target_switches_total"]+1)
				So(after["shotplot_range_exports_total"], ShouldEqual, before["shotplot_range_exports_total"]+1)
				So(after["shotplot_range_exports_empty_total"], ShouldEqual, before["shotplot_range_exports_empty_total"]+1)
				So(after["shotplot_range_export_rows"], ShouldEqual, before["shotplot_range_export_rows"]+1)
			})
		})

		Convey("When session and catalog gauges change", func() {
			metrics.RecordSessionCreated()
			metrics.RecordSessionEvicted()
			metrics.UpdateActiveSessions(3)
			metrics.UpdateCatalogTargets(2)
			after := gather()

			Convey("Then the gauges report the latest values", func() {
				So(after["shotplot_range_sessions_created_total"], ShouldEqual, before["shotplot_range_sessions_created_total"]+1)
				So(after["shotplot_range_sessions_evicted_total"], ShouldEqual, before["shotplot_range_sessions_evicted_total"]+1)
				So(after["shotplot_range_sessions_active"], ShouldEqual, 3)
				So(after["shotplot_range_catalog_targets"], ShouldEqual, 2)
			})
		})
	})
}

func TestHTTPAndSystemMetrics(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording HTTP and error metrics", func() {
			So(func() {
				metrics.RecordHTTPRequest("targets", "GET", "200")
				metrics.RecordHTTPRequestDuration("targets", "GET", "200", 1.5)
				metrics.RecordErrorByType("not_found", "low")
				metrics.RecordErrorByEndpoint("sessions", "POST", "store_full")
			}, ShouldNotPanic)
		})

		Convey("When recording system metrics", func() {
			So(func() {
				metrics.UpdateSystemMemoryUsage(1 << 20)
				metrics.UpdateSystemGoroutineCount(12)
				metrics.RecordSystemGCPauseTime(0.2)
			}, ShouldNotPanic)
		})
	})
}

func TestNewManagerWithCustomRegistry(t *testing.T) {
	Convey("Given a private registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When constructing a manager on it", func() {
			m := metrics.NewManager(
				metrics.WithPrometheusRegistry(reg),
				metrics.WithNamespace("testing"),
				metrics.WithSubsystem("plotter"),
			)

			Convey("Then the metrics land on that registry", func() {
				So(m, ShouldNotBeNil)

				families, err := reg.Gather()
				So(err, ShouldBeNil)

				names := make(map[string]bool, len(families))
				for _, fam := range families {
					names[fam.GetName()] = true
				}
				So(names["testing_plotter_shots_recorded_total"], ShouldBeTrue)
				So(names["testing_plotter_sessions_active"], ShouldBeTrue)
			})
		})
	})
}
