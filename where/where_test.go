package where

import (
	"strings"
	"testing"

	"github.com/duet-cli/duet/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Selection()", func() {
			path := Selection()
			So(path, ShouldNotBeEmpty)
			So(strings.HasPrefix(path, Config()), ShouldBeTrue)
		})

		Convey("Trails live under Logs()", func() {
			So(strings.HasPrefix(Actions(), Logs()), ShouldBeTrue)
			So(strings.HasPrefix(Failures(), Logs()), ShouldBeTrue)
		})
	})
}
