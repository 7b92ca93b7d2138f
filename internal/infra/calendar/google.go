package calendar

import (
	"context"
	"errors"
	"time"

	"slotly/internal/domain/schedule"
	"slotly/internal/infra"
	"slotly/internal/pkg/config"
	"slotly/internal/usecase"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const defaultCalendarID = "primary"

// GoogleProvider talks to Google Calendar with each host's own OAuth token.
// A service client is built per call: tokens differ per host and refresh
// mid-flight, so there is nothing safe to share.
type GoogleProvider struct {
	oauth   *oauth2.Config
	timeout time.Duration
}

func NewGoogleProvider(cfg config.CalendarConfig) *GoogleProvider {
	return &GoogleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			Scopes:       []string{calendar.CalendarEventsScope},
			Endpoint:     google.Endpoint,
		},
		timeout: cfg.CallTimeout,
	}
}

func (p *GoogleProvider) ListBusyIntervals(ctx context.Context, identity usecase.ProviderIdentity, from, to time.Time) ([]schedule.BusyInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	srv, err := p.service(ctx, identity)
	if err != nil {
		return nil, err
	}

	calID := calendarID(identity)
	resp, err := srv.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: calID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, p.mapErr("failed to query free/busy", err)
	}

	cal, ok := resp.Calendars[calID]
	if !ok {
		return nil, infra.WrapProviderErr(infra.ProviderRejected, "free/busy response missing requested calendar", nil)
	}

	var busy []schedule.BusyInterval
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, infra.WrapProviderErr(infra.ProviderRejected, "unparseable busy interval start", err)
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, infra.WrapProviderErr(infra.ProviderRejected, "unparseable busy interval end", err)
		}
		busy = append(busy, schedule.BusyInterval{Start: start, End: end})
	}
	return busy, nil
}

func (p *GoogleProvider) CreateEvent(ctx context.Context, identity usecase.ProviderIdentity, input usecase.EventInput) (*usecase.CreatedEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	srv, err := p.service(ctx, identity)
	if err != nil {
		return nil, err
	}

	event := &calendar.Event{
		Summary:     input.Title,
		Description: input.Description,
		Start:       &calendar.EventDateTime{DateTime: input.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: input.End.Format(time.RFC3339)},
		Attendees: []*calendar.EventAttendee{
			{Email: input.GuestEmail, DisplayName: input.GuestName},
		},
	}
	insert := srv.Events.Insert(calendarID(identity), event)
	if input.ConferencingProvider == "google-meet" {
		event.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId:             input.Start.Format("20060102T150405") + "-" + identity.HostID.String(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		}
		insert = insert.ConferenceDataVersion(1)
	}

	created, err := insert.Context(ctx).Do()
	if err != nil {
		return nil, p.mapErr("failed to create calendar event", err)
	}

	return &usecase.CreatedEvent{
		RemoteEventID: created.Id,
		JoinURL:       joinURL(created),
	}, nil
}

func (p *GoogleProvider) DeleteEvent(ctx context.Context, identity usecase.ProviderIdentity, remoteEventID string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	srv, err := p.service(ctx, identity)
	if err != nil {
		return err
	}

	if err := srv.Events.Delete(calendarID(identity), remoteEventID).Context(ctx).Do(); err != nil {
		return p.mapErr("failed to delete calendar event", err)
	}
	return nil
}

func (p *GoogleProvider) ListEvents(ctx context.Context, identity usecase.ProviderIdentity, from, to time.Time) ([]usecase.RemoteEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	srv, err := p.service(ctx, identity)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Events.List(calendarID(identity)).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		Context(ctx).Do()
	if err != nil {
		return nil, p.mapErr("failed to list calendar events", err)
	}

	var out []usecase.RemoteEvent
	for _, item := range resp.Items {
		start, startOK := eventInstant(item.Start)
		end, endOK := eventInstant(item.End)
		if !startOK || !endOK {
			// All-day and malformed entries have no instant; skip them.
			continue
		}
		remote := usecase.RemoteEvent{
			ID:          item.Id,
			Title:       item.Summary,
			Description: item.Description,
			Start:       start,
			End:         end,
			JoinURL:     joinURL(item),
		}
		for _, attendee := range item.Attendees {
			remote.GuestEmails = append(remote.GuestEmails, attendee.Email)
		}
		out = append(out, remote)
	}
	return out, nil
}

func (p *GoogleProvider) service(ctx context.Context, identity usecase.ProviderIdentity) (*calendar.Service, error) {
	token := &oauth2.Token{
		AccessToken:  identity.AccessToken,
		RefreshToken: identity.RefreshToken,
		Expiry:       identity.TokenExpiry,
	}
	client := p.oauth.Client(ctx, token)

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, infra.WrapProviderErr(infra.ProviderUnavailable, "failed to build calendar client", err)
	}
	return srv, nil
}

// mapErr translates transport outcomes into provider error kinds. Timeouts
// and 5xx stay distinct from not-found: the callers treat "could not reach
// the calendar" very differently from "the calendar answered no".
func (p *GoogleProvider) mapErr(msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return infra.WrapProviderErr(infra.ProviderTimeout, msg, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 404 || apiErr.Code == 410:
			return infra.WrapProviderErr(infra.ProviderNotFound, msg, err)
		case apiErr.Code >= 500 || apiErr.Code == 429:
			return infra.WrapProviderErr(infra.ProviderUnavailable, msg, err)
		default:
			return infra.WrapProviderErr(infra.ProviderRejected, msg, err)
		}
	}

	return infra.WrapProviderErr(infra.ProviderUnavailable, msg, err)
}

func calendarID(identity usecase.ProviderIdentity) string {
	if identity.CalendarID == "" {
		return defaultCalendarID
	}
	return identity.CalendarID
}

func eventInstant(edt *calendar.EventDateTime) (time.Time, bool) {
	if edt == nil || edt.DateTime == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, edt.DateTime)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func joinURL(event *calendar.Event) string {
	if event.HangoutLink != "" {
		return event.HangoutLink
	}
	if event.ConferenceData != nil {
		for _, entry := range event.ConferenceData.EntryPoints {
			if entry.EntryPointType == "video" {
				return entry.Uri
			}
		}
	}
	return ""
}
