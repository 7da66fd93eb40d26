// Package calendar reads availability from and books events on Google
// Calendar.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voice-bridge/internal/observability"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var ErrNotConfigured = errors.New("calendar client not configured")

// Busy is a time range during which the calendar is unavailable
type Busy struct {
	Start time.Time
	End   time.Time
}

type Event struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Link        string
}

type Client struct {
	service *gcal.Service
	logger  *observability.Logger
}

// NewClient builds a client from service account credentials. Extra options
// are appended after the credentials.
func NewClient(ctx context.Context, credentialsJSON string, logger *observability.Logger, opts ...option.ClientOption) (*Client, error) {
	if credentialsJSON != "" {
		opts = append([]option.ClientOption{option.WithCredentialsJSON([]byte(credentialsJSON))}, opts...)
	}
	if len(opts) == 0 {
		return nil, ErrNotConfigured
	}

	service, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: service, logger: logger}, nil
}

// FreeBusy returns the busy ranges of calendarID within [from, to)
func (c *Client) FreeBusy(ctx context.Context, calendarID string, from, to time.Time) ([]Busy, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}

	resp, err := c.service.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: calendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to query free/busy: %w", err)
	}

	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return nil, nil
	}
	if len(cal.Errors) > 0 {
		return nil, fmt.Errorf("failed to query free/busy: %s", cal.Errors[0].Reason)
	}

	busy := make([]Busy, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, fmt.Errorf("failed to parse busy start: %w", err)
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, fmt.Errorf("failed to parse busy end: %w", err)
		}
		busy = append(busy, Busy{Start: start, End: end})
	}
	return busy, nil
}

// CreateEvent books an event and returns it as stored by Google
func (c *Client) CreateEvent(ctx context.Context, calendarID string, event Event, timezone string) (Event, error) {
	if c == nil {
		return Event{}, ErrNotConfigured
	}

	created, err := c.service.Events.Insert(calendarID, &gcal.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start:       &gcal.EventDateTime{DateTime: event.Start.Format(time.RFC3339), TimeZone: timezone},
		End:         &gcal.EventDateTime{DateTime: event.End.Format(time.RFC3339), TimeZone: timezone},
	}).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("failed to create calendar event: %w", err)
	}

	c.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "calendar_id", Value: calendarID},
		observability.Field{Key: "event_id", Value: created.Id},
	), "calendar event created")

	return fromAPIEvent(created)
}

// ListEvents returns single events starting within [from, to) ordered by start
func (c *Client) ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]Event, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}

	resp, err := c.service.Events.List(calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		ev, err := fromAPIEvent(item)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func fromAPIEvent(e *gcal.Event) (Event, error) {
	out := Event{
		ID:          e.Id,
		Summary:     e.Summary,
		Description: e.Description,
		Link:        e.HtmlLink,
	}
	var err error
	if out.Start, err = parseEventTime(e.Start); err != nil {
		return Event{}, err
	}
	if out.End, err = parseEventTime(e.End); err != nil {
		return Event{}, err
	}
	return out, nil
}

// parseEventTime handles both timed and all-day events
func parseEventTime(dt *gcal.EventDateTime) (time.Time, error) {
	if dt == nil {
		return time.Time{}, nil
	}
	if dt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, dt.DateTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse event time: %w", err)
		}
		return t, nil
	}
	if dt.Date != "" {
		t, err := time.Parse("2006-01-02", dt.Date)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse event date: %w", err)
		}
		return t, nil
	}
	return time.Time{}, nil
}
