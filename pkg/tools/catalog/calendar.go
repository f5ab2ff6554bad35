package catalog

import (
	"net/http"

	"github.com/theapemachine/mcp-server-unipile/pkg/tools/utils"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

var calendarDescriptors = []Descriptor{
	{
		Name:        "list_calendars",
		Description: "List all calendars from connected accounts (Google Calendar, Outlook).",
		Method:      http.MethodGet,
		Path:        "/calendars",
		Scope:       ScopeMail,
	},
	{
		Name:        "get_calendar",
		Description: "Get details for a specific calendar.",
		Method:      http.MethodGet,
		Path:        "/calendars/{calendar_id}",
		Params:      []Param{pathParam("calendar_id", "The calendar ID")},
		Scope:       ScopeMail,
	},
	{
		Name:        "list_events",
		Description: "List events from a calendar with id, title, start/end times, attendees and location.",
		Method:      http.MethodGet,
		Path:        "/calendars/{calendar_id}/events",
		Params:      params([]Param{pathParam("calendar_id", "The calendar ID")}, page()),
		Scope:       ScopeMail,
	},
	{
		Name:        "create_event",
		Description: "Create a calendar event (works with Google Calendar and Outlook).",
		Method:      http.MethodPost,
		Path:        "/calendars/{calendar_id}/events",
		Params: params(
			[]Param{
				pathParam("calendar_id", "The calendar ID"),
				requiredBody("title", "Event title"),
				{Name: "start_date_time", Type: TypeString, In: Local, Required: true, Description: "Start time (ISO8601, e.g. 2026-03-01T10:00:00)"},
				{Name: "start_time_zone", Type: TypeString, In: Local, Required: true, Description: "Start timezone (e.g. Asia/Kolkata)"},
				{Name: "end_date_time", Type: TypeString, In: Local, Required: true, Description: "End time (ISO8601)"},
				{Name: "end_time_zone", Type: TypeString, In: Local, Required: true, Description: "End timezone"},
			},
			eventDetails(false),
			[]Param{
				bodyStrings("recurrence", "Recurrence rules (RFC 5545 format)"),
				{Name: "conference", Type: TypeObject, In: InBody, Item: Conference{}, Description: "Conference details {provider, url}"},
				{Name: "notify", Type: TypeBoolean, In: Local, Default: true, Description: "Send notifications to attendees (default true)"},
			},
		),
		Scope: ScopeMail,
		Shape: chain(eventWindow, silentEvent),
	},
	{
		Name:        "get_event",
		Description: "Get details of a calendar event: title, body, start/end, attendees, organizer, conference, recurrence, visibility and transparency.",
		Method:      http.MethodGet,
		Path:        "/calendars/{calendar_id}/events/{event_id}",
		Params: []Param{
			pathParam("calendar_id", "The calendar ID"),
			pathParam("event_id", "The event ID"),
		},
		Scope: ScopeMail,
	},
	{
		Name:        "edit_event",
		Description: "Edit a calendar event. Only the fields provided are changed.",
		Method:      http.MethodPatch,
		Path:        "/calendars/{calendar_id}/events/{event_id}",
		Params: params(
			[]Param{
				pathParam("calendar_id", "The calendar ID"),
				pathParam("event_id", "The event ID"),
				bodyParam("title", "Updated title"),
				{Name: "start_date_time", Type: TypeString, In: Local, Description: "Updated start time (ISO8601)"},
				{Name: "start_time_zone", Type: TypeString, In: Local, Description: "Updated start timezone"},
				{Name: "end_date_time", Type: TypeString, In: Local, Description: "Updated end time (ISO8601)"},
				{Name: "end_time_zone", Type: TypeString, In: Local, Description: "Updated end timezone"},
			},
			eventDetails(true),
		),
		Scope: ScopeMail,
		Shape: eventWindow,
	},
	{
		Name:        "delete_event",
		Description: "Delete a calendar event.",
		Method:      http.MethodDelete,
		Path:        "/calendars/{calendar_id}/events/{event_id}",
		Params: []Param{
			pathParam("calendar_id", "The calendar ID"),
			pathParam("event_id", "The event ID to delete"),
		},
		Scope: ScopeMail,
	},
}

// eventDetails are the optional fields shared by create and edit. An edit may
// clear the attendee list, so an empty list is sent as is.
func eventDetails(clearable bool) []Param {
	return []Param{
		bodyParam("body", "Event description"),
		bodyParam("location", "Event location"),
		{
			Name:        "attendees",
			Type:        TypeObjects,
			In:          InBody,
			Item:        EventAttendee{},
			KeepEmpty:   clearable,
			Description: "Attendees [{email, display_name}]",
		},
		{Name: "visibility", Type: TypeString, In: InBody, Enum: []string{"default", "public", "private"}, Description: "default, public or private"},
		{Name: "transparency", Type: TypeString, In: InBody, Enum: []string{"opaque", "transparent"}, Description: "opaque or transparent"},
	}
}

// eventWindow folds the flat start and end arguments into {date_time, time_zone} objects.
func eventWindow(args utils.Args, call *unipile.Call, _ Options) error {
	for _, edge := range []string{"start", "end"} {
		moment := map[string]any{}

		if v, _ := args.String(edge+"_date_time", false); v != "" {
			moment["date_time"] = v
		}

		if v, _ := args.String(edge+"_time_zone", false); v != "" {
			moment["time_zone"] = v
		}

		if len(moment) > 0 {
			call.Body[edge] = moment
		}
	}

	return nil
}

// silentEvent only sends notify when notifications are switched off.
func silentEvent(args utils.Args, call *unipile.Call, _ Options) error {
	notify, err := args.Bool("notify", false)
	if err != nil {
		return err
	}

	if args.Has("notify") && !notify {
		call.Body["notify"] = false
	}

	return nil
}
