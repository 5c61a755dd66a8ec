package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given a metrics manager on a fresh registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithRegistry(registry))

		Convey("When recording pipeline activity", func() {
			m.documentsLoaded.Inc()
			m.recordsExtracted.Add(4)
			m.linesClassified.WithLabelValues("module_record").Add(4)
			m.storedRecords.Set(4)

			Convey("Then the registry should expose the values", func() {
				So(testutil.ToFloat64(m.documentsLoaded), ShouldAlmostEqual, 1.0)
				So(testutil.ToFloat64(m.recordsExtracted), ShouldAlmostEqual, 4.0)
				So(testutil.ToFloat64(m.linesClassified.WithLabelValues("module_record")), ShouldAlmostEqual, 4.0)
				So(testutil.ToFloat64(m.storedRecords), ShouldAlmostEqual, 4.0)
			})
		})

		Convey("When applying options", func() {
			custom := NewManager(
				WithRegistry(prometheus.NewRegistry()),
				WithNamespace("custom"),
				WithSubsystem("svc"),
				WithHistogramBuckets([]float64{1, 10, 100}),
				WithEnabled(false),
			)

			Convey("Then the manager should carry them", func() {
				So(custom.namespace, ShouldEqual, "custom")
				So(custom.subsystem, ShouldEqual, "svc")
				So(custom.histogramBuckets, ShouldResemble, []float64{1, 10, 100})
				So(custom.enabled, ShouldBeFalse)
			})
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When calling the package-level helpers", func() {
			before := testutil.ToFloat64(globalManager.documentsLoaded)

			RecordDocumentLoaded()
			RecordDocumentLoadError()
			ObserveExtractionDuration(12.5)
			RecordRecordsExtracted(3)
			RecordRecordsExtracted(0) // no-op
			RecordLinesClassified("tier_header", 2)
			UpdateStoredRecords(3)
			UpdatePeopleCount(1)
			RecordHTTPRequest("records", "GET", "200")
			RecordHTTPRequestDuration("records", "GET", "200", 2.5)

			Convey("Then the counters should move accordingly", func() {
				So(testutil.ToFloat64(globalManager.documentsLoaded), ShouldAlmostEqual, before+1)
				So(testutil.ToFloat64(globalManager.storedRecords), ShouldAlmostEqual, 3.0)
				So(testutil.ToFloat64(globalManager.storedPeople), ShouldAlmostEqual, 1.0)
			})
		})

		Convey("When gathering the served registry", func() {
			families, err := GetRegistry().Gather()

			Convey("Then the tracker metrics should be registered", func() {
				So(err, ShouldBeNil)
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["mga_tracker_documents_loaded_total"], ShouldBeTrue)
				So(names["mga_tracker_stored_records"], ShouldBeTrue)
				So(names["mga_tracker_http_requests_total"], ShouldBeTrue)
			})
		})
	})
}
