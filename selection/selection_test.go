package selection

import (
	"testing"

	"github.com/duet-cli/duet/filesystem"
	"github.com/duet-cli/duet/remote"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestStore(t *testing.T) {
	Convey("Given a selection store", t, func() {
		filesystem.SetMemMapFs()
		store := NewStore("/config/selection.conf")

		Convey("Load on a missing record yields an empty selection", func() {
			sel, err := store.Load()
			So(err, ShouldBeNil)
			So(sel.Empty(), ShouldBeTrue)
		})

		Convey("Save then Load round-trips both paths", func() {
			So(store.Save(Selection{Master: "a.mp4", Slave: "b.mp4"}), ShouldBeNil)

			sel, err := store.Load()
			So(err, ShouldBeNil)
			So(sel.Master, ShouldEqual, "a.mp4")
			So(sel.Slave, ShouldEqual, "b.mp4")
			So(sel.Complete(), ShouldBeTrue)
		})

		Convey("Save is a whole-record overwrite", func() {
			So(store.Save(Selection{Master: "a.mp4", Slave: "b.mp4"}), ShouldBeNil)
			So(store.Save(Selection{Master: "c.mp4"}), ShouldBeNil)

			sel, err := store.Load()
			So(err, ShouldBeNil)
			So(sel.Master, ShouldEqual, "c.mp4")
			So(sel.Slave, ShouldBeEmpty)
		})

		Convey("Absent keys default to empty strings", func() {
			So(filesystem.API().WriteFile("/config/selection.conf", []byte("masterPath=only.mp4\n"), 0666), ShouldBeNil)

			sel, err := store.Load()
			So(err, ShouldBeNil)
			So(sel.Master, ShouldEqual, "only.mp4")
			So(sel.Slave, ShouldBeEmpty)
			So(sel.Complete(), ShouldBeFalse)
		})
	})

	Convey("PathFor maps roles to their paths", t, func() {
		sel := Selection{Master: "a.mp4", Slave: "b.mp4"}
		So(sel.PathFor(remote.RoleMaster), ShouldEqual, "a.mp4")
		So(sel.PathFor(remote.RoleSlave), ShouldEqual, "b.mp4")
	})
}
