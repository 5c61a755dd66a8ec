package repository_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/adapters/repository"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/model"
)

func TestMemStore(t *testing.T) {
	Convey("Given an in-memory store", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()

		Convey("When nothing has been loaded", func() {
			Convey("Then reads should reflect the empty snapshot", func() {
				So(store.Records(ctx), ShouldBeEmpty)
				So(store.People(ctx), ShouldBeEmpty)
				So(store.Count(ctx), ShouldEqual, 0)

				_, ok := store.DocumentID(ctx)
				So(ok, ShouldBeFalse)

				_, err := store.ByPerson(ctx, "Hans Muster")
				So(errors.Is(err, repository.ErrPersonNotFound), ShouldBeTrue)
			})
		})

		Convey("When a snapshot is stored", func() {
			records := []model.TrainingRecord{
				{PersonName: "Hans Muster", ModuleID: "M1.1"},
				{PersonName: "Anna Schmidt", ModuleID: "M1.1"},
				{PersonName: "Hans Muster", ModuleID: "M1.2"},
				{PersonName: model.UnknownPerson, ModuleID: "M9.9"},
			}
			store.Replace(ctx, "doc-1", records)

			Convey("Then the snapshot should be queryable", func() {
				So(store.Count(ctx), ShouldEqual, 4)
				So(store.Records(ctx), ShouldHaveLength, 4)

				id, ok := store.DocumentID(ctx)
				So(ok, ShouldBeTrue)
				So(id, ShouldEqual, "doc-1")
			})

			Convey("Then people should be sorted and include the unknown sentinel", func() {
				So(store.People(ctx), ShouldResemble, []string{"Anna Schmidt", "Hans Muster", model.UnknownPerson})
			})

			Convey("Then per-person lookup should keep document order", func() {
				got, err := store.ByPerson(ctx, "Hans Muster")
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 2)
				So(got[0].ModuleID, ShouldEqual, "M1.1")
				So(got[1].ModuleID, ShouldEqual, "M1.2")
			})

			Convey("Then an unknown name should yield the not-found error", func() {
				_, err := store.ByPerson(ctx, "Nobody")
				So(errors.Is(err, repository.ErrPersonNotFound), ShouldBeTrue)
			})

			Convey("Then mutating the caller's slice should not alter the snapshot", func() {
				records[0].PersonName = "mutated"
				got := store.Records(ctx)
				So(got[0].PersonName, ShouldEqual, "Hans Muster")
			})

			Convey("Then mutating a read result should not alter the snapshot", func() {
				got := store.Records(ctx)
				got[0].ModuleID = "mutated"
				So(store.Records(ctx)[0].ModuleID, ShouldEqual, "M1.1")
			})

			Convey("When a second document replaces the snapshot", func() {
				store.Replace(ctx, "doc-2", []model.TrainingRecord{
					{PersonName: "Lena Fischer", ModuleID: "M2.1"},
				})

				Convey("Then the previous snapshot should be gone", func() {
					So(store.Count(ctx), ShouldEqual, 1)
					So(store.People(ctx), ShouldResemble, []string{"Lena Fischer"})

					id, _ := store.DocumentID(ctx)
					So(id, ShouldEqual, "doc-2")

					_, err := store.ByPerson(ctx, "Hans Muster")
					So(errors.Is(err, repository.ErrPersonNotFound), ShouldBeTrue)
				})
			})
		})
	})
}
