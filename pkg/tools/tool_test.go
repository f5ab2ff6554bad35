package tools

import (
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

func text(result *mcp.CallToolResult) string {
	content, ok := result.Content[0].(mcp.TextContent)
	So(ok, ShouldBeTrue)

	return content.Text
}

func TestNewOutcomeResult(t *testing.T) {
	Convey("Given gateway outcomes", t, func() {
		Convey("Structured bodies should be rendered as indented JSON", func() {
			result := NewOutcomeResult(unipile.Structured{Value: json.RawMessage(`{"items":[1,2]}`)})

			So(result.IsError, ShouldBeFalse)
			So(text(result), ShouldEqual, "{\n  \"items\": [\n    1,\n    2\n  ]\n}")
		})

		Convey("Unparseable bodies should be wrapped as raw_response", func() {
			result := NewOutcomeResult(unipile.Raw{RawResponse: "<html>"})

			So(result.IsError, ShouldBeFalse)
			So(text(result), ShouldContainSubstring, `"raw_response": "<html>"`)
		})

		Convey("HTML in bodies should not be escaped", func() {
			result := NewOutcomeResult(unipile.Structured{Value: json.RawMessage(`{"body_html":"<p>a & b</p>"}`)})

			So(text(result), ShouldContainSubstring, `"body_html": "<p>a & b</p>"`)
			So(text(result), ShouldNotContainSubstring, `\u003c`)
			So(text(result), ShouldNotEndWith, "\n")
		})

		Convey("Failures should be flagged but keep the status", func() {
			result := NewOutcomeResult(unipile.Failure{Error: "denied", StatusCode: 403})

			So(result.IsError, ShouldBeTrue)

			var failure map[string]any
			So(json.Unmarshal([]byte(text(result)), &failure), ShouldBeNil)
			So(failure, ShouldResemble, map[string]any{"error": "denied", "status_code": 403.0})
		})

		Convey("Local errors should carry no status", func() {
			result := NewOutcomeResult(unipile.LocalError("bad input"))

			So(result.IsError, ShouldBeTrue)
			So(text(result), ShouldNotContainSubstring, "status_code")
		})
	})
}

func TestBaseTool(t *testing.T) {
	Convey("Given a base tool", t, func() {
		tool := NewBaseTool("list_widgets", mcp.NewTool("list_widgets",
			mcp.WithDescription("List the widgets"),
			mcp.WithString("zeta", mcp.Required(), mcp.Description("last")),
			mcp.WithString("alpha", mcp.Required(), mcp.Description("first")),
			mcp.WithNumber("limit", mcp.Description("page size")),
		))

		Convey("It should expose its name and definition", func() {
			So(tool.Name(), ShouldEqual, "list_widgets")
			So(tool.Handle().Description, ShouldEqual, "List the widgets")
		})

		Convey("ToOpenAITool should sort the required fields", func() {
			params := tool.ToOpenAITool().Function.Value.Parameters.Value

			So(params["required"], ShouldResemble, []string{"alpha", "zeta"})
			So(params["properties"], ShouldContainKey, "limit")
		})
	})
}
