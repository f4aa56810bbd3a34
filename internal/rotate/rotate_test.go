package rotate

import (
	"strings"
	"testing"

	"github.com/duet-cli/duet/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRotate(t *testing.T) {
	Convey("Given a trail file", t, func() {
		filesystem.SetMemMapFs()
		path := "/logs/actions.log"

		Convey("A small file is left untouched", func() {
			So(filesystem.API().WriteFile(path, []byte("line one\nline two\n"), 0644), ShouldBeNil)

			rotate(path)

			content, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, "line one\nline two\n")
		})

		Convey("An oversized file is truncated to its newest complete lines", func() {
			line := strings.Repeat("x", 127) + "\n"
			oversized := strings.Repeat(line, maxTrailSize/len(line)+16)
			So(filesystem.API().WriteFile(path, []byte(oversized), 0644), ShouldBeNil)

			rotate(path)

			content, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(len(content), ShouldBeLessThanOrEqualTo, keepSize)
			So(len(content)%len(line), ShouldEqual, 0)
		})
	})
}
