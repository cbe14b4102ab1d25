package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/calendar"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/oauth"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const graphEventsURL = "https://graph.microsoft.com/v1.0/me/events"

type CalendarServiceImpl struct {
	calendar.ConnectionRepository
	google    oauth.GoogleService
	microsoft oauth.MicrosoftService
}

func NewCalendarService(connectionRepository calendar.ConnectionRepository, googleService oauth.GoogleService, microsoftService oauth.MicrosoftService) calendar.CalendarService {
	return &CalendarServiceImpl{
		ConnectionRepository: connectionRepository,
		google:               googleService,
		microsoft:            microsoftService,
	}
}

// ConnectURL implements calendar.CalendarService.
func (s *CalendarServiceImpl) ConnectURL(ctx context.Context, userID string, provider calendar.Provider, userAgent string) (string, string, error) {
	switch provider {
	case calendar.ProviderGoogle:
		if s.google.Config().ClientID == "" {
			return "", "", calendar.ErrProviderNotEnabled
		}
		state := s.google.GenerateState(userAgent)
		return s.google.RedirectURL(state), state, nil
	case calendar.ProviderMicrosoft:
		if s.microsoft.Config().ClientID == "" {
			return "", "", calendar.ErrProviderNotEnabled
		}
		state := s.microsoft.GenerateState(userAgent)
		return s.microsoft.RedirectURL(state), state, nil
	}
	return "", "", calendar.ErrUnsupportedProvider
}

// HandleCallback implements calendar.CalendarService.
func (s *CalendarServiceImpl) HandleCallback(ctx context.Context, userID string, provider calendar.Provider, code string) (calendar.Connection, error) {
	switch provider {
	case calendar.ProviderGoogle:
		token, err := s.google.VerifyToken(ctx, code)
		if err != nil {
			return calendar.Connection{}, fmt.Errorf("failed to exchange google code: %w", err)
		}
		return s.Upsert(ctx, calendar.Connection{
			UserID:   userID,
			Provider: provider,
			Token:    *token,
		})
	case calendar.ProviderMicrosoft:
		token, err := s.microsoft.VerifyToken(ctx, code)
		if err != nil {
			return calendar.Connection{}, fmt.Errorf("failed to exchange microsoft code: %w", err)
		}
		return s.Upsert(ctx, calendar.Connection{
			UserID:   userID,
			Provider: provider,
			Token:    *token,
		})
	}
	return calendar.Connection{}, calendar.ErrUnsupportedProvider
}

// ListConnections implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListConnections(ctx context.Context, userID string) ([]calendar.ConnectionResponse, error) {
	conns, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar connections: %w", err)
	}

	responses := make([]calendar.ConnectionResponse, 0, len(conns))
	for _, conn := range conns {
		responses = append(responses, calendar.ConnectionResponse{
			Provider:    string(conn.Provider),
			ConnectedAt: conn.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

// Disconnect implements calendar.CalendarService.
func (s *CalendarServiceImpl) Disconnect(ctx context.Context, userID string, provider calendar.Provider) error {
	return s.Delete(ctx, userID, provider)
}

// PushEvent implements calendar.CalendarService. Every connected provider
// gets the event; the first failure aborts so the caller can log it.
func (s *CalendarServiceImpl) PushEvent(ctx context.Context, userID string, event calendar.Event) error {
	conns, err := s.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list calendar connections: %w", err)
	}

	for _, conn := range conns {
		switch conn.Provider {
		case calendar.ProviderGoogle:
			err = s.pushGoogleEvent(ctx, conn, event)
		case calendar.ProviderMicrosoft:
			err = s.pushMicrosoftEvent(ctx, conn, event)
		}
		if err != nil {
			return fmt.Errorf("failed to push event to %s: %w", conn.Provider, err)
		}
	}
	return nil
}

func (s *CalendarServiceImpl) pushGoogleEvent(ctx context.Context, conn calendar.Connection, event calendar.Event) error {
	client := s.google.Config().Client(ctx, &conn.Token)

	srv, err := gcalendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("failed to create calendar service: %w", err)
	}

	_, err = srv.Events.Insert("primary", &gcalendar.Event{
		Summary:  event.Title,
		Location: event.Location,
		Start:    &gcalendar.EventDateTime{DateTime: event.StartTime.Format(time.RFC3339)},
		End:      &gcalendar.EventDateTime{DateTime: event.EndTime.Format(time.RFC3339)},
	}).Context(ctx).Do()
	return err
}

type graphDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type graphEvent struct {
	Subject  string        `json:"subject"`
	Start    graphDateTime `json:"start"`
	End      graphDateTime `json:"end"`
	Location *struct {
		DisplayName string `json:"displayName"`
	} `json:"location,omitempty"`
}

func (s *CalendarServiceImpl) pushMicrosoftEvent(ctx context.Context, conn calendar.Connection, event calendar.Event) error {
	client := s.microsoft.Config().Client(ctx, &conn.Token)

	payload := graphEvent{
		Subject: event.Title,
		Start:   graphDateTime{DateTime: event.StartTime.UTC().Format("2006-01-02T15:04:05"), TimeZone: "UTC"},
		End:     graphDateTime{DateTime: event.EndTime.UTC().Format("2006-01-02T15:04:05"), TimeZone: "UTC"},
	}
	if event.Location != "" {
		payload.Location = &struct {
			DisplayName string `json:"displayName"`
		}{DisplayName: event.Location}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode graph event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, graphEventsURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("graph api returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}
