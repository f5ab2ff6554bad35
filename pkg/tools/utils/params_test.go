package utils

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	. "github.com/smartystreets/goconvey/convey"
)

func TestArgsFrom(t *testing.T) {
	Convey("Given a request without arguments", t, func() {
		args := ArgsFrom(mcp.CallToolRequest{})

		Convey("It should return an empty, usable map", func() {
			So(args, ShouldNotBeNil)
			So(args.Has("anything"), ShouldBeFalse)
		})
	})
}

func TestScalars(t *testing.T) {
	Convey("Given decoded JSON arguments", t, func() {
		args := Args{
			"name":   "unipile",
			"empty":  "",
			"null":   nil,
			"limit":  25.0,
			"ratio":  0.5,
			"count":  3,
			"unread": true,
		}

		Convey("Has should treat null as absent", func() {
			So(args.Has("name"), ShouldBeTrue)
			So(args.Has("null"), ShouldBeFalse)
		})

		Convey("String should enforce presence only when required", func() {
			s, err := args.String("name", true)
			So(err, ShouldBeNil)
			So(s, ShouldEqual, "unipile")

			s, err = args.String("missing", false)
			So(err, ShouldBeNil)
			So(s, ShouldBeEmpty)

			_, err = args.String("missing", true)
			So(err.Error(), ShouldEqual, "missing required parameter: 'missing'")

			_, err = args.String("empty", true)
			So(err.Error(), ShouldEqual, "parameter 'empty' must not be empty")

			_, err = args.String("limit", false)
			So(err.Error(), ShouldEqual, "parameter 'limit' must be a string")
		})

		Convey("Int should accept whole numbers only", func() {
			n, err := args.Int("limit", true)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 25)

			n, err = args.Int("count", true)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 3)

			_, err = args.Int("ratio", true)
			So(err.Error(), ShouldEqual, "parameter 'ratio' must be an integer")

			_, err = args.Int("name", true)
			So(err.Error(), ShouldEqual, "parameter 'name' must be a number")
		})

		Convey("Bool should reject non-booleans", func() {
			b, err := args.Bool("unread", true)
			So(err, ShouldBeNil)
			So(b, ShouldBeTrue)

			_, err = args.Bool("name", false)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLists(t *testing.T) {
	Convey("Given array arguments", t, func() {
		args := Args{
			"ids":     []any{"a", "b"},
			"typed":   []string{"c"},
			"none":    []any{},
			"mixed":   []any{"a", 1.0},
			"degrees": []any{1.0, 2},
			"objects": []any{map[string]any{"email": "x@example.com"}},
			"range":   map[string]any{"min": 1.0},
		}

		Convey("Strings should accept both decoded and typed slices", func() {
			list, err := args.Strings("ids", true)
			So(err, ShouldBeNil)
			So(list, ShouldResemble, []string{"a", "b"})

			list, err = args.Strings("typed", true)
			So(err, ShouldBeNil)
			So(list, ShouldResemble, []string{"c"})

			_, err = args.Strings("mixed", false)
			So(err.Error(), ShouldEqual, "parameter 'mixed' item 1 must be a string")
		})

		Convey("A required list should not be empty", func() {
			_, err := args.Strings("none", true)
			So(err.Error(), ShouldEqual, "parameter 'none' must not be empty")

			list, err := args.Strings("none", false)
			So(err, ShouldBeNil)
			So(list, ShouldBeEmpty)
		})

		Convey("Ints should convert JSON numbers", func() {
			list, err := args.Ints("degrees", true)
			So(err, ShouldBeNil)
			So(list, ShouldResemble, []int{1, 2})
		})

		Convey("Objects and Map should require objects", func() {
			objects, err := args.Objects("objects", true)
			So(err, ShouldBeNil)
			So(objects[0]["email"], ShouldEqual, "x@example.com")

			_, err = args.Objects("ids", true)
			So(err, ShouldNotBeNil)

			m, err := args.Map("range", true)
			So(err, ShouldBeNil)
			So(m["min"], ShouldEqual, 1.0)

			_, err = args.Map("ids", true)
			So(err.Error(), ShouldEqual, "parameter 'ids' must be an object")
		})
	})
}
