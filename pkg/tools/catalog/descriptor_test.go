package catalog

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/theapemachine/mcp-server-unipile/pkg/tools"
	"github.com/theapemachine/mcp-server-unipile/pkg/tools/utils"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

var testOptions = Options{
	BaseURL:           "https://api8.unipile.com:13851/api/v1",
	LinkedInAccountID: "li-default",
	EmailAccountID:    "mail-default",
}

func descriptor(name string) Descriptor {
	for _, d := range Descriptors() {
		if d.Name == name {
			return d
		}
	}

	panic("no descriptor named " + name)
}

func assemble(name string, args utils.Args) (unipile.Call, error) {
	return descriptor(name).Assemble(args, testOptions)
}

func TestDescriptors(t *testing.T) {
	Convey("Given the full catalog", t, func() {
		descriptors := Descriptors()

		Convey("It should hold 94 uniquely named tools", func() {
			So(len(descriptors), ShouldEqual, 94)

			seen := map[string]bool{}
			for _, d := range descriptors {
				So(seen[d.Name], ShouldBeFalse)
				seen[d.Name] = true
			}
		})

		Convey("Every path placeholder should have a matching path parameter", func() {
			placeholder := regexp.MustCompile(`\{([a-z_]+)\}`)

			for _, d := range descriptors {
				declared := map[string]bool{}
				for _, p := range d.Params {
					if p.In == InPath {
						declared[p.Name] = true
					}
				}

				matches := placeholder.FindAllStringSubmatch(d.Path, -1)
				So(len(matches), ShouldEqual, len(declared))

				for _, m := range matches {
					So(declared[m[1]], ShouldBeTrue)
				}
			}
		})

		Convey("Every tool should describe itself and use a known verb", func() {
			verbs := []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

			for _, d := range descriptors {
				So(d.Description, ShouldNotBeBlank)
				So(verbs, ShouldContain, d.Method)
				So(strings.HasPrefix(d.Path, "/"), ShouldBeTrue)
			}
		})

		Convey("Only the download tools should be binary", func() {
			var binary []string
			for _, d := range descriptors {
				if d.Mode == Binary {
					binary = append(binary, d.Name)
				}
			}

			So(binary, ShouldResemble, []string{
				"get_message_attachment",
				"get_attendee_picture",
				"get_email_attachment",
				"get_applicant_resume",
			})
		})
	})
}

func TestAssembleScopes(t *testing.T) {
	Convey("Given tools of each account scope", t, func() {
		Convey("A global tool should carry no account id", func() {
			call, err := assemble("list_accounts", utils.Args{})
			So(err, ShouldBeNil)
			So(call.Method, ShouldEqual, http.MethodGet)
			So(call.Path, ShouldEqual, "/accounts")
			So(call.AccountID, ShouldBeEmpty)
			So(call.Body, ShouldBeNil)
		})

		Convey("A LinkedIn tool should always use the configured LinkedIn account", func() {
			call, err := assemble("get_my_profile", utils.Args{"account_id": "ignored"})
			So(err, ShouldBeNil)
			So(call.AccountID, ShouldEqual, "li-default")
		})

		Convey("An explicit-scope tool should send nothing unless asked", func() {
			call, err := assemble("list_chats", utils.Args{})
			So(err, ShouldBeNil)
			So(call.AccountID, ShouldBeEmpty)

			call, err = assemble("list_chats", utils.Args{"account_id": "wa-1"})
			So(err, ShouldBeNil)
			So(call.AccountID, ShouldEqual, "wa-1")
		})

		Convey("A messaging tool should fall back to the LinkedIn account", func() {
			call, err := assemble("list_followers", utils.Args{})
			So(err, ShouldBeNil)
			So(call.AccountID, ShouldEqual, "li-default")

			call, err = assemble("list_followers", utils.Args{"account_id": "li-other"})
			So(err, ShouldBeNil)
			So(call.AccountID, ShouldEqual, "li-other")
		})

		Convey("A mail tool should fall back to the email account", func() {
			call, err := assemble("list_calendars", utils.Args{})
			So(err, ShouldBeNil)
			So(call.AccountID, ShouldEqual, "mail-default")
		})

		Convey("A non-string account id should be rejected", func() {
			_, err := assemble("list_emails", utils.Args{"account_id": 7.0})
			So(errors.Is(err, tools.ErrInvalidParams), ShouldBeTrue)
		})
	})
}

func TestAssembleParams(t *testing.T) {
	Convey("Given argument handling", t, func() {
		Convey("Pagination should default the limit and drop an empty cursor", func() {
			call, err := assemble("get_chat_messages", utils.Args{"chat_id": "c1", "cursor": ""})
			So(err, ShouldBeNil)
			So(call.Path, ShouldEqual, "/chats/c1/messages")
			So(call.Query, ShouldResemble, map[string]any{"limit": 50})
		})

		Convey("unread_only should only appear as unread=true", func() {
			call, err := assemble("list_chats", utils.Args{"unread_only": false})
			So(err, ShouldBeNil)
			So(call.Query, ShouldNotContainKey, "unread")
			So(call.Query, ShouldNotContainKey, "unread_only")

			call, err = assemble("list_chats", utils.Args{"unread_only": true})
			So(err, ShouldBeNil)
			So(call.Query["unread"], ShouldEqual, "true")
		})

		Convey("Emails should default to a page of 100", func() {
			call, err := assemble("list_emails", utils.Args{"folder": "inbox"})
			So(err, ShouldBeNil)
			So(call.Query, ShouldResemble, map[string]any{"limit": 100, "folder": "inbox"})
			So(call.AccountID, ShouldEqual, "mail-default")
		})

		Convey("Attendee listings should clamp at 250", func() {
			call, err := assemble("list_attendees", utils.Args{"limit": 1000.0})
			So(err, ShouldBeNil)
			So(call.Query["limit"], ShouldEqual, 250)
		})

		Convey("Path segments should be escaped", func() {
			call, err := assemble("get_chat", utils.Args{"chat_id": "a/b c"})
			So(err, ShouldBeNil)
			So(call.Path, ShouldEqual, "/chats/a%2Fb%20c")
		})

		Convey("A missing required argument should be an input error", func() {
			_, err := assemble("send_message", utils.Args{"chat_id": "c1"})
			So(errors.Is(err, tools.ErrInvalidParams), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "'text'")
		})

		Convey("A fractional limit should be rejected", func() {
			_, err := assemble("list_relations", utils.Args{"limit": 2.5})
			So(errors.Is(err, tools.ErrInvalidParams), ShouldBeTrue)
		})

		Convey("A wrong-typed list item should be rejected", func() {
			_, err := assemble("start_chat", utils.Args{"attendees_ids": []any{"a", 3.0}, "text": "hi"})
			So(errors.Is(err, tools.ErrInvalidParams), ShouldBeTrue)
		})

		Convey("A body-less POST should send no body", func() {
			call, err := assemble("restart_account", utils.Args{"account_id": "acc-1"})
			So(err, ShouldBeNil)
			So(call.Path, ShouldEqual, "/accounts/acc-1/restart")
			So(call.Body, ShouldBeNil)
		})

		Convey("A partial update should send an empty body when nothing changes", func() {
			call, err := assemble("edit_job", utils.Args{"job_id": "j1"})
			So(err, ShouldBeNil)
			So(call.Body, ShouldNotBeNil)
			So(call.Body, ShouldBeEmpty)
		})

		Convey("Renamed arguments should use their wire names", func() {
			call, err := assemble("solve_job_checkpoint", utils.Args{"draft_id": "d1", "input_value": "123456"})
			So(err, ShouldBeNil)
			So(call.Body, ShouldResemble, map[string]any{"input": "123456"})
		})

		Convey("Download tools should ask for a binary response", func() {
			call, err := assemble("get_email_attachment", utils.Args{"email_id": "e1", "attachment_id": "a1"})
			So(err, ShouldBeNil)
			So(call.Binary, ShouldBeTrue)
			So(call.Path, ShouldEqual, "/emails/e1/attachments/a1")
		})
	})
}

func TestAssembleShaping(t *testing.T) {
	Convey("Given tools whose bodies are reshaped", t, func() {
		Convey("reconnect_account should point the hosted flow at the API root", func() {
			call, err := assemble("reconnect_account", utils.Args{"account_id": "acc-1"})
			So(err, ShouldBeNil)
			So(call.AccountID, ShouldBeEmpty)
			So(call.Body, ShouldResemble, map[string]any{
				"type":              "reconnect",
				"reconnect_account": "acc-1",
				"expiresOn":         reconnectExpiry,
				"api_url":           "https://api8.unipile.com:13851",
			})
		})

		Convey("send_email should wrap recipients and build tracking options", func() {
			call, err := assemble("send_email", utils.Args{
				"to":             []any{"a@example.com"},
				"cc":             []any{"b@example.com", "c@example.com"},
				"subject":        "Hello",
				"body":           "<p>Hi</p>",
				"reply_to":       "mail-9",
				"track_opens":    true,
				"tracking_label": "job-app",
			})
			So(err, ShouldBeNil)
			So(call.AccountID, ShouldEqual, "mail-default")
			So(call.Body["to"], ShouldResemble, []map[string]any{{"identifier": "a@example.com"}})
			So(call.Body["cc"], ShouldResemble, []map[string]any{
				{"identifier": "b@example.com"},
				{"identifier": "c@example.com"},
			})
			So(call.Body, ShouldNotContainKey, "bcc")
			So(call.Body["in_reply_to"], ShouldEqual, "mail-9")
			So(call.Body["tracking_options"], ShouldResemble, map[string]any{"opens": true, "label": "job-app"})
			So(call.Body, ShouldNotContainKey, "track_opens")
		})

		Convey("send_email without tracking should omit tracking options", func() {
			call, err := assemble("send_email", utils.Args{
				"to":             []any{"a@example.com"},
				"subject":        "Hello",
				"body":           "Hi",
				"tracking_label": "unused",
			})
			So(err, ShouldBeNil)
			So(call.Body, ShouldNotContainKey, "tracking_options")
		})

		Convey("create_event should build start and end objects", func() {
			call, err := assemble("create_event", utils.Args{
				"calendar_id":     "cal-1",
				"title":           "Sync",
				"start_date_time": "2026-03-01T10:00:00",
				"start_time_zone": "Asia/Kolkata",
				"end_date_time":   "2026-03-01T11:00:00",
				"end_time_zone":   "Asia/Kolkata",
				"attendees":       []any{map[string]any{"email": "x@example.com"}},
			})
			So(err, ShouldBeNil)
			So(call.Path, ShouldEqual, "/calendars/cal-1/events")
			So(call.Body["start"], ShouldResemble, map[string]any{"date_time": "2026-03-01T10:00:00", "time_zone": "Asia/Kolkata"})
			So(call.Body["end"], ShouldResemble, map[string]any{"date_time": "2026-03-01T11:00:00", "time_zone": "Asia/Kolkata"})
			So(call.Body, ShouldNotContainKey, "notify")
			So(call.Body, ShouldNotContainKey, "start_date_time")
		})

		Convey("create_event should only send notify when it is switched off", func() {
			call, err := assemble("create_event", utils.Args{
				"calendar_id":     "cal-1",
				"title":           "Sync",
				"start_date_time": "2026-03-01T10:00:00",
				"start_time_zone": "UTC",
				"end_date_time":   "2026-03-01T11:00:00",
				"end_time_zone":   "UTC",
				"notify":          false,
			})
			So(err, ShouldBeNil)
			So(call.Body["notify"], ShouldEqual, false)
		})

		Convey("create_event should require the full time window", func() {
			_, err := assemble("create_event", utils.Args{"calendar_id": "cal-1", "title": "Sync"})
			So(errors.Is(err, tools.ErrInvalidParams), ShouldBeTrue)
		})

		Convey("edit_event should send only the edges it was given", func() {
			call, err := assemble("edit_event", utils.Args{
				"calendar_id":     "cal-1",
				"event_id":        "ev-1",
				"start_time_zone": "UTC",
				"attendees":       []any{},
			})
			So(err, ShouldBeNil)
			So(call.Body["start"], ShouldResemble, map[string]any{"time_zone": "UTC"})
			So(call.Body, ShouldNotContainKey, "end")
			So(call.Body["attendees"], ShouldResemble, []map[string]any{})
		})

		Convey("search_people should fix the API and clamp the limit", func() {
			call, err := assemble("search_people", utils.Args{"keywords": "golang", "limit": 80.0, "network_distance": []any{1.0, 2.0}})
			So(err, ShouldBeNil)
			So(call.Method, ShouldEqual, http.MethodPost)
			So(call.Path, ShouldEqual, "/linkedin/search")
			So(call.AccountID, ShouldEqual, "li-default")
			So(call.Query, ShouldBeEmpty)
			So(call.Body, ShouldResemble, map[string]any{
				"api":              "classic",
				"category":         "people",
				"keywords":         "golang",
				"limit":            50,
				"network_distance": []int{1, 2},
			})
		})

		Convey("search_people_sales_nav should clamp at 100", func() {
			call, err := assemble("search_people_sales_nav", utils.Args{"limit": 150.0, "changed_jobs": true})
			So(err, ShouldBeNil)
			So(call.Body["api"], ShouldEqual, "sales_navigator")
			So(call.Body["limit"], ShouldEqual, 100)
			So(call.Body["changed_jobs"], ShouldEqual, true)
		})

		Convey("search_companies should fold the headcount bounds", func() {
			call, err := assemble("search_companies", utils.Args{"headcount_min": 10.0})
			So(err, ShouldBeNil)
			So(call.Body["category"], ShouldEqual, "companies")
			So(call.Body["headcount"], ShouldResemble, map[string]any{"min": 10})
			So(call.Body["limit"], ShouldEqual, 25)
		})

		Convey("get_search_params should upper-case the type", func() {
			call, err := assemble("get_search_params", utils.Args{"param_type": "location", "query": "berlin"})
			So(err, ShouldBeNil)
			So(call.Query, ShouldResemble, map[string]any{"type": "LOCATION", "q": "berlin"})
		})

		Convey("get_profile should join the sections", func() {
			call, err := assemble("get_profile", utils.Args{"provider_id": "p1", "sections": []any{"experience", "skills"}})
			So(err, ShouldBeNil)
			So(call.Path, ShouldEqual, "/users/p1")
			So(call.Query["sections"], ShouldEqual, "experience,skills")
		})

		Convey("send_inmail should flag the chat as InMail", func() {
			call, err := assemble("send_inmail", utils.Args{"attendees_ids": []any{"p1"}, "subject": "Hi", "text": "Hello"})
			So(err, ShouldBeNil)
			So(call.Path, ShouldEqual, "/chats")
			So(call.Body["linkedin"], ShouldResemble, map[string]any{"inmail": true})
		})

		Convey("perform_linkedin_action should default the API", func() {
			call, err := assemble("perform_linkedin_action", utils.Args{"user_id": "u1", "action": "follow"})
			So(err, ShouldBeNil)
			So(call.Body, ShouldResemble, map[string]any{"action": "follow", "api": "LINKEDIN"})
			So(call.AccountID, ShouldEqual, "li-default")
		})

		Convey("create_webhook should default the format to json", func() {
			call, err := assemble("create_webhook", utils.Args{
				"name":        "hook",
				"request_url": "https://example.com/hook",
				"account_ids": []any{"acc-1"},
				"events":      []any{"mail_opened"},
			})
			So(err, ShouldBeNil)
			So(call.Body["format"], ShouldEqual, "json")
			So(call.AccountID, ShouldBeEmpty)
		})
	})
}

func TestInvitationLength(t *testing.T) {
	Convey("Given send_invitation", t, func() {
		Convey("A 300 character message should pass, counted in characters", func() {
			call, err := assemble("send_invitation", utils.Args{"provider_id": "p1", "message": strings.Repeat("é", 300)})
			So(err, ShouldBeNil)
			So(call.Body["message"], ShouldEqual, strings.Repeat("é", 300))
		})

		Convey("A 301 character message should be refused", func() {
			_, err := assemble("send_invitation", utils.Args{"provider_id": "p1", "message": strings.Repeat("a", 301)})
			So(errors.Is(err, ErrInvitationTooLong), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "invitation message exceeds 300 characters")
		})
	})
}
