package capabilities

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"voice-bridge/internal/clients/calendar"
)

const defaultAppointmentMinutes = 30

type calendarToolset struct {
	calendar  CalendarService
	sms       SMSSender
	defaultTZ string
}

type slotArgs struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string `json:"time" validate:"required,datetime=15:04"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=5,max=480"`
}

type appointmentArgs struct {
	slotArgs
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
	Notes string `json:"notes"`
}

type dayArgs struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

func calendarTools(cal CalendarService, sms SMSSender, defaultTZ string) []Tool {
	t := &calendarToolset{calendar: cal, sms: sms, defaultTZ: defaultTZ}
	slotProperties := map[string]any{
		"date":             map[string]any{"type": "string", "description": "Date in YYYY-MM-DD format"},
		"time":             map[string]any{"type": "string", "description": "Start time in HH:MM 24-hour format"},
		"duration_minutes": map[string]any{"type": "integer", "description": "Length of the appointment in minutes, default 30"},
	}

	appointmentProperties := map[string]any{
		"name":  map[string]any{"type": "string", "description": "Caller's full name"},
		"phone": map[string]any{"type": "string", "description": "Phone number for the confirmation text, defaults to the caller"},
		"email": map[string]any{"type": "string", "description": "Optional email address"},
		"notes": map[string]any{"type": "string", "description": "Anything the business should know"},
	}
	for k, v := range slotProperties {
		appointmentProperties[k] = v
	}

	return []Tool{
		{
			Name:        "check_availability",
			Description: "Check whether a time slot is free on the business calendar before offering it to the caller.",
			Parameters: map[string]any{
				"type":       "object",
				"properties": slotProperties,
				"required":   []string{"date", "time"},
			},
			Handler: t.checkAvailability,
		},
		{
			Name:        "create_appointment",
			Description: "Book an appointment on the business calendar once the caller has confirmed the time and given their name.",
			Parameters: map[string]any{
				"type":       "object",
				"properties": appointmentProperties,
				"required":   []string{"date", "time", "name"},
			},
			Handler: t.createAppointment,
		},
		{
			Name:        "list_appointments",
			Description: "List the appointments already booked on a given day.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"date": map[string]any{"type": "string", "description": "Date in YYYY-MM-DD format"},
				},
				"required": []string{"date"},
			},
			Handler: t.listAppointments,
		},
	}
}

func (t *calendarToolset) location(call CallContext) (*time.Location, string, error) {
	tz := call.Timezone
	if tz == "" {
		tz = t.defaultTZ
	}
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load timezone %s: %w", tz, err)
	}
	return loc, tz, nil
}

func (t *calendarToolset) slot(call CallContext, args slotArgs) (time.Time, time.Time, string, error) {
	loc, tz, err := t.location(call)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", args.Date+" "+args.Time, loc)
	if err != nil {
		return time.Time{}, time.Time{}, "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	minutes := args.DurationMinutes
	if minutes == 0 {
		minutes = defaultAppointmentMinutes
	}
	return start, start.Add(time.Duration(minutes) * time.Minute), tz, nil
}

func calendarID(call CallContext) string {
	if call.CalendarID == "" {
		return "primary"
	}
	return call.CalendarID
}

func (t *calendarToolset) checkAvailability(ctx context.Context, call CallContext, raw json.RawMessage) (any, error) {
	args, err := decodeArgs[slotArgs](raw)
	if err != nil {
		return nil, err
	}
	start, end, _, err := t.slot(call, args)
	if err != nil {
		return nil, err
	}

	busy, err := t.calendar.FreeBusy(ctx, calendarID(call), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to check calendar: %w", err)
	}
	if len(busy) > 0 {
		return map[string]any{
			"available": false,
			"message":   fmt.Sprintf("That time is not available. There are %d conflicting appointments.", len(busy)),
		}, nil
	}
	return map[string]any{
		"available": true,
		"message":   fmt.Sprintf("%s at %s is available", args.Date, args.Time),
	}, nil
}

func (t *calendarToolset) createAppointment(ctx context.Context, call CallContext, raw json.RawMessage) (any, error) {
	args, err := decodeArgs[appointmentArgs](raw)
	if err != nil {
		return nil, err
	}
	start, end, tz, err := t.slot(call, args.slotArgs)
	if err != nil {
		return nil, err
	}

	busy, err := t.calendar.FreeBusy(ctx, calendarID(call), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to check calendar: %w", err)
	}
	if len(busy) > 0 {
		return map[string]any{
			"success": false,
			"message": "That time was just taken. Offer the caller another slot.",
		}, nil
	}

	phone := args.Phone
	if phone == "" {
		phone = call.CallerNumber
	}
	var description strings.Builder
	fmt.Fprintf(&description, "Phone: %s\n", phone)
	if args.Email != "" {
		fmt.Fprintf(&description, "Email: %s\n", args.Email)
	}
	fmt.Fprintf(&description, "Booked by phone agent on call %s", call.CallSid)
	if args.Notes != "" {
		fmt.Fprintf(&description, "\n\n%s", args.Notes)
	}

	event, err := t.calendar.CreateEvent(ctx, calendarID(call), calendar.Event{
		Summary:     "Appointment with " + args.Name,
		Description: description.String(),
		Start:       start,
		End:         end,
	}, tz)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	confirmed := false
	if t.sms != nil && phone != "" && call.DialedNumber != "" {
		body := fmt.Sprintf("Your appointment%s is booked for %s at %s.", withBusiness(call.AgentName),
			start.Format("Mon Jan 2"), start.Format("3:04 PM"))
		if _, err := t.sms.SendSMS(ctx, call.DialedNumber, phone, body); err == nil {
			confirmed = true
		}
	}

	return map[string]any{
		"success":           true,
		"event_id":          event.ID,
		"message":           fmt.Sprintf("Appointment created for %s at %s", args.Date, args.Time),
		"confirmation_sent": confirmed,
	}, nil
}

func (t *calendarToolset) listAppointments(ctx context.Context, call CallContext, raw json.RawMessage) (any, error) {
	args, err := decodeArgs[dayArgs](raw)
	if err != nil {
		return nil, err
	}
	start, _, _, err := t.slot(call, slotArgs{Date: args.Date, Time: "00:00"})
	if err != nil {
		return nil, err
	}

	events, err := t.calendar.ListEvents(ctx, calendarID(call), start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	appointments := make([]map[string]string, 0, len(events))
	for _, e := range events {
		appointments = append(appointments, map[string]string{
			"start":   e.Start.In(start.Location()).Format("15:04"),
			"end":     e.End.In(start.Location()).Format("15:04"),
			"summary": e.Summary,
		})
	}
	return map[string]any{"date": args.Date, "count": len(appointments), "appointments": appointments}, nil
}

func withBusiness(name string) string {
	if name == "" {
		return ""
	}
	return " with " + name
}
