package testdocs_test

import (
	"context"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/adapters/source"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/extract"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/testdocs"
)

func TestGenerate(t *testing.T) {
	Convey("Given the document generator", t, func() {
		cfg := testdocs.DefaultConfig()

		Convey("When generating twice with the same seed", func() {
			a := testdocs.Render(testdocs.Generate(cfg))
			b := testdocs.Render(testdocs.Generate(cfg))

			Convey("Then the documents should be identical", func() {
				So(a, ShouldEqual, b)
			})
		})

		Convey("When generating with a different seed", func() {
			other := cfg
			other.Seed = cfg.Seed + 1

			Convey("Then the document should differ", func() {
				So(testdocs.Render(testdocs.Generate(other)), ShouldNotEqual, testdocs.Render(testdocs.Generate(cfg)))
			})
		})

		Convey("When generating an invalid shape", func() {
			pages := testdocs.Generate(testdocs.Config{People: 0, ModulesPerTier: -1, Seed: 1})

			Convey("Then the generator should fall back to a minimal shape", func() {
				So(pages, ShouldHaveLength, 1)
			})
		})
	})
}

func TestGeneratedDocumentsExtract(t *testing.T) {
	Convey("Given a generated document", t, func() {
		cfg := testdocs.Config{People: 3, ModulesPerTier: 4, Seed: 7}
		pages := testdocs.Generate(cfg)

		Convey("When extracting the pages directly", func() {
			records, report := extract.New().Extract(context.Background(), pages)

			Convey("Then every person and module line should be recovered", func() {
				So(report.PeopleFound, ShouldEqual, cfg.People)
				So(records, ShouldHaveLength, cfg.People*cfg.ModulesPerTier*2)
			})

			Convey("And both tiers should appear", func() {
				tiers := make(map[string]bool)
				for _, r := range records {
					tiers[r.QSLevel] = true
				}
				So(tiers["QS1"], ShouldBeTrue)
				So(tiers["QS2"], ShouldBeTrue)
			})
		})

		Convey("When rendering and re-reading through the text source", func() {
			rendered := testdocs.Render(pages)
			reread, err := source.NewText(strings.NewReader(rendered)).Pages(context.Background())

			Convey("Then the round trip should preserve the page structure", func() {
				So(err, ShouldBeNil)
				So(reread, ShouldHaveLength, len(pages))
				So(reread[0].Lines, ShouldResemble, pages[0].Lines)
			})
		})
	})
}
