package grocy

import (
	"context"
	"time"
)

// SystemService exposes server version, time, configuration, and the
// calendar export.
type SystemService struct {
	client *Client
}

// Info returns the server version and environment information.
func (s *SystemService) Info(ctx context.Context) (*SystemInfoResponse, error) {
	var resp SystemInfoResponse
	if err := s.client.get(ctx, "system/info", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Time returns the server time and timezone.
func (s *SystemService) Time(ctx context.Context) (*SystemTimeResponse, error) {
	var resp SystemTimeResponse
	if err := s.client.get(ctx, "system/time", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Config returns the server configuration including feature flags.
func (s *SystemService) Config(ctx context.Context) (*SystemConfigResponse, error) {
	var resp SystemConfigResponse
	if err := s.client.get(ctx, "system/config", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LastDBChanged returns the time of the last database change, useful for
// cheap client-side change polling.
func (s *SystemService) LastDBChanged(ctx context.Context) (time.Time, error) {
	var resp struct {
		ChangedTime Time `json:"changed_time"`
	}
	if err := s.client.get(ctx, "system/db-changed-time", nil, &resp); err != nil {
		return time.Time{}, err
	}
	return resp.ChangedTime.Time, nil
}

// CalendarICal returns the household calendar as an iCal document.
func (s *SystemService) CalendarICal(ctx context.Context) (string, error) {
	return s.client.getText(ctx, "calendar/ical")
}

// CalendarSharingLink returns the public sharing URL of the calendar.
func (s *SystemService) CalendarSharingLink(ctx context.Context) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := s.client.get(ctx, "calendar/ical/sharing-link", nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}
