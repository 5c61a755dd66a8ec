package source_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/adapters/source"
)

func TestTextSource(t *testing.T) {
	Convey("Given a plain-text document source", t, func() {
		ctx := context.Background()

		Convey("When reading a two-page document", func() {
			doc := "Hans Muster\n\nMGA - QS1\fAnna Schmidt\nMGA - QS2"
			pages, err := source.NewText(strings.NewReader(doc)).Pages(ctx)

			Convey("Then pages should split on form feeds with blank lines preserved", func() {
				So(err, ShouldBeNil)
				So(pages, ShouldHaveLength, 2)
				So(pages[0].Number, ShouldEqual, 1)
				So(pages[0].Lines, ShouldResemble, []string{"Hans Muster", "", "MGA - QS1"})
				So(pages[1].Number, ShouldEqual, 2)
				So(pages[1].Lines, ShouldResemble, []string{"Anna Schmidt", "MGA - QS2"})
			})
		})

		Convey("When reading a document with Windows line endings", func() {
			pages, err := source.NewText(strings.NewReader("a\r\nb")).Pages(ctx)

			Convey("Then lines should be normalized", func() {
				So(err, ShouldBeNil)
				So(pages[0].Lines, ShouldResemble, []string{"a", "b"})
			})
		})

		Convey("When the underlying reader fails", func() {
			_, err := source.NewText(iotest.ErrReader(errors.New("disk gone"))).Pages(ctx)

			Convey("Then a single unreadable-document error should surface", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, source.ErrUnreadable), ShouldBeTrue)
			})
		})

		Convey("When the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := source.NewText(strings.NewReader("x")).Pages(cancelled)

			Convey("Then the cancellation should surface", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})
}

func TestPDFSourceUnreadable(t *testing.T) {
	Convey("Given a PDF source over garbage bytes", t, func() {
		data := strings.NewReader("definitely not a pdf")

		Convey("When reading pages", func() {
			_, err := source.NewPDF(data, int64(data.Len())).Pages(context.Background())

			Convey("Then a single unreadable-document error should surface", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, source.ErrUnreadable), ShouldBeTrue)
			})
		})
	})
}
