package tuple_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "github.com/flier/artree/pkg/tuple"
)

func TestTuple2(t *testing.T) {
	Convey("Given a Tuple2", t, func() {
		tp := New2("hello", 42)

		Convey("Then unpack the tuple", func() {
			v0, v1 := tp.Unpack()
			So(v0, ShouldEqual, "hello")
			So(v1, ShouldEqual, 42)
		})
	})
}
