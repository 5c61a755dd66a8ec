package model_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/model"
)

func TestMetaKeys(t *testing.T) {
	Convey("Given the fixed metadata categories", t, func() {
		Convey("Then the enumeration order should be stable", func() {
			So(model.MetaKeys, ShouldResemble, []model.MetaKey{
				model.MetaFirstAid,
				model.MetaReadiness,
				model.MetaTeamMember,
				model.MetaTeamLeader,
				model.MetaBreathingApparatus,
				model.MetaRadioOperator,
			})
		})
	})
}

func TestCloneMeta(t *testing.T) {
	Convey("Given a record with a metadata snapshot", t, func() {
		rec := model.TrainingRecord{
			Meta: map[model.MetaKey]string{model.MetaFirstAid: "Ausbildung in Erster Hilfe Bestanden"},
		}

		Convey("When cloning and mutating the clone", func() {
			clone := rec.CloneMeta()
			clone[model.MetaFirstAid] = "changed"

			Convey("Then the record's snapshot should be untouched", func() {
				So(rec.Meta[model.MetaFirstAid], ShouldEqual, "Ausbildung in Erster Hilfe Bestanden")
			})
		})

		Convey("When the record carries no metadata", func() {
			Convey("Then the clone should be nil", func() {
				So(model.TrainingRecord{}.CloneMeta(), ShouldBeNil)
			})
		})
	})
}
