package extract_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/adapters/source"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/classify"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/extract"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/model"
)

func page(lines ...string) source.Page {
	return source.Page{Number: 1, Lines: lines}
}

func TestExtract(t *testing.T) {
	Convey("Given an extractor", t, func() {
		e := extract.New()
		ctx := context.Background()

		Convey("When extracting a minimal single-person document", func() {
			records, report := e.Extract(ctx, []source.Page{page(
				"Hans Muster",
				"Ziel der modularen Grundlagenausbildung ist die Einsatzfähigkeit.",
				"MGA - QS1",
				"MGA - M1.1 Basics T: 1:00/1:00 Absolviert",
			)})

			Convey("Then exactly one fully attributed record should be emitted", func() {
				So(records, ShouldHaveLength, 1)
				So(records[0].PersonName, ShouldEqual, "Hans Muster")
				So(records[0].QSLevel, ShouldEqual, "QS1")
				So(records[0].ModuleID, ShouldEqual, "M1.1")
				So(records[0].Title, ShouldEqual, "Basics")
				So(records[0].Status, ShouldEqual, model.StatusCompleted)
				So(records[0].TIst, ShouldAlmostEqual, 1.0)
				So(records[0].TSoll, ShouldAlmostEqual, 1.0)
				So(records[0].PIst, ShouldAlmostEqual, 0.0)
			})

			Convey("And the report should account for every non-blank line", func() {
				So(report.Lines, ShouldEqual, 4)
				So(report.RecordsTotal, ShouldEqual, 1)
				So(report.PeopleFound, ShouldEqual, 1)
				So(report.ByKind[classify.ModuleRecord], ShouldEqual, 1)
				So(report.ByKind[classify.Unrecognized], ShouldEqual, 1) // the name line
			})
		})

		Convey("When a module line appears before any boundary marker", func() {
			records, _ := e.Extract(ctx, []source.Page{page(
				"MGA - M1.1 Basics T: 1:00/1:00 Absolviert",
			)})

			Convey("Then the record should fall into the unknown buckets", func() {
				So(records, ShouldHaveLength, 1)
				So(records[0].PersonName, ShouldEqual, model.UnknownPerson)
				So(records[0].QSLevel, ShouldEqual, model.DefaultTier)
			})
		})

		Convey("When metadata precedes several module lines", func() {
			records, _ := e.Extract(ctx, []source.Page{page(
				"Hans Muster",
				"Ziel der modularen Grundlagenausbildung ist die Einsatzfähigkeit.",
				"Ausbildung in Erster Hilfe Bestanden 12.03.2022",
				"MGA - M1.1 Basics T: 1:00/1:00 Absolviert",
				"MGA - M1.2 Geräte T: 1:00/1:00 Absolviert",
				"Ausbildung in Erster Hilfe Bestanden 01.01.2024",
				"MGA - M1.3 Knoten T: 1:00/1:00 In Arbeit",
			)})

			Convey("Then the first two records should share the first snapshot", func() {
				So(records, ShouldHaveLength, 3)
				So(records[0].Meta[model.MetaFirstAid], ShouldEqual, "Ausbildung in Erster Hilfe Bestanden 12.03.2022")
				So(records[1].Meta[model.MetaFirstAid], ShouldEqual, "Ausbildung in Erster Hilfe Bestanden 12.03.2022")
			})

			Convey("And only the third record should carry the overwritten value", func() {
				So(records[2].Meta[model.MetaFirstAid], ShouldEqual, "Ausbildung in Erster Hilfe Bestanden 01.01.2024")
				So(records[0].Meta[model.MetaFirstAid], ShouldEqual, "Ausbildung in Erster Hilfe Bestanden 12.03.2022")
			})
		})

		Convey("When a new person boundary follows a person with tier and metadata", func() {
			records, report := e.Extract(ctx, []source.Page{
				page(
					"Hans Muster",
					"Ziel der modularen Grundlagenausbildung ist die Einsatzfähigkeit.",
					"Atemschutzgeräteträgerlehrgang Bestanden 09.04.2016",
					"MGA - QS2",
					"MGA - M2.1 Löscheinsatz T: 1:00/1:00 Absolviert",
				),
				page(
					"Anna Schmidt",
					"Ziel der modularen Grundlagenausbildung ist die Einsatzfähigkeit.",
					"MGA - M1.1 Basics T: 0:30/1:00 In Arbeit",
				),
			})

			Convey("Then the second person's record should start from clean context", func() {
				So(records, ShouldHaveLength, 2)
				So(records[1].PersonName, ShouldEqual, "Anna Schmidt")
				So(records[1].QSLevel, ShouldEqual, model.DefaultTier)
				So(records[1].Meta, ShouldBeEmpty)
			})

			Convey("And the first person's record should keep its context", func() {
				So(records[0].PersonName, ShouldEqual, "Hans Muster")
				So(records[0].QSLevel, ShouldEqual, "QS2")
				So(records[0].Meta[model.MetaBreathingApparatus], ShouldNotBeEmpty)
				So(report.PeopleFound, ShouldEqual, 2)
			})
		})

		Convey("When the boundary marker has no preceding non-blank line", func() {
			records, report := e.Extract(ctx, []source.Page{page(
				"",
				"Ziel der modularen Grundlagenausbildung ist die Einsatzfähigkeit.",
				"MGA - M1.1 Basics T: 1:00/1:00 Absolviert",
			)})

			Convey("Then the person should stay unresolved", func() {
				So(records, ShouldHaveLength, 1)
				So(records[0].PersonName, ShouldEqual, model.UnknownPerson)
				So(report.PeopleFound, ShouldEqual, 0)
			})
		})

		Convey("When the name sits several blank lines above the marker", func() {
			records, _ := e.Extract(ctx, []source.Page{page(
				"Hans Muster",
				"",
				"",
				"Ziel der modularen Grundlagenausbildung ist die Einsatzfähigkeit.",
				"MGA - M1.1 Basics T: 1:00/1:00 Absolviert",
			)})

			Convey("Then the backward scan should skip the blanks", func() {
				So(records[0].PersonName, ShouldEqual, "Hans Muster")
			})
		})

		Convey("When the same module line repeats for one person", func() {
			records, _ := e.Extract(ctx, []source.Page{page(
				"Hans Muster",
				"Ziel der modularen Grundlagenausbildung ist die Einsatzfähigkeit.",
				"MGA - M1.1 Basics T: 1:00/1:00 Absolviert",
				"MGA - M1.1 Basics T: 1:00/1:00 Absolviert",
			)})

			Convey("Then both occurrences should be kept", func() {
				So(records, ShouldHaveLength, 2)
			})
		})
	})
}

func TestExtractLookbackBound(t *testing.T) {
	Convey("Given an extractor with a bounded backward scan", t, func() {
		e := extract.New(extract.WithMaxLookback(1))

		Convey("When the name sits beyond the bound", func() {
			records, _ := e.Extract(context.Background(), []source.Page{{Number: 1, Lines: []string{
				"Hans Muster",
				"",
				"Ziel der modularen Grundlagenausbildung ist die Einsatzfähigkeit.",
				"MGA - M1.1 Basics T: 1:00/1:00 Absolviert",
			}}})

			Convey("Then the person should stay unresolved", func() {
				So(records, ShouldHaveLength, 1)
				So(records[0].PersonName, ShouldEqual, model.UnknownPerson)
			})
		})
	})
}

func TestExtractPageIsolation(t *testing.T) {
	Convey("Given a boundary marker at the top of a page", t, func() {
		e := extract.New()

		Convey("When the previous page ends with a name-like line", func() {
			records, _ := e.Extract(context.Background(), []source.Page{
				{Number: 1, Lines: []string{"Hans Muster"}},
				{Number: 2, Lines: []string{
					"Ziel der modularen Grundlagenausbildung ist die Einsatzfähigkeit.",
					"MGA - M1.1 Basics T: 1:00/1:00 Absolviert",
				}},
			})

			Convey("Then the scan should not cross the page boundary", func() {
				So(records, ShouldHaveLength, 1)
				So(records[0].PersonName, ShouldEqual, model.UnknownPerson)
			})
		})
	})
}
