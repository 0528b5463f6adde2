package grocy

import (
	"context"
	"fmt"
	"time"
)

// Battery is the domain view of a battery. A summary listing populates
// only the identifier and charge schedule times; hydration or
// BatteryService.Get fills in the entity and tracking fields.
type Battery struct {
	ID                      int
	Name                    string
	Description             string
	UsedIn                  string
	ChargeIntervalDays      int
	ChargeCyclesCount       int
	LastCharged             time.Time
	LastTrackedTime         time.Time
	NextEstimatedChargeTime time.Time
	Created                 time.Time
	Userfields              map[string]any
}

func batteryFromCurrent(resp CurrentBatteryResponse) *Battery {
	return &Battery{
		ID:                      int(resp.ID),
		LastTrackedTime:         resp.LastTrackedTime.Time,
		NextEstimatedChargeTime: resp.NextEstimatedChargeTime.Time,
	}
}

func batteryFromDetails(resp BatteryDetailsResponse) *Battery {
	battery := &Battery{ID: int(resp.Battery.ID)}
	battery.applyDetails(resp)
	return battery
}

// applyDetails merges a detail response into b, keeping the identifier
// and any summary schedule times the detail payload does not restate.
func (b *Battery) applyDetails(resp BatteryDetailsResponse) {
	b.Name = resp.Battery.Name
	b.Description = resp.Battery.Description
	b.UsedIn = resp.Battery.UsedIn
	b.ChargeIntervalDays = int(resp.Battery.ChargeIntervalDays)
	b.Created = resp.Battery.RowCreatedTimestamp.Time
	b.Userfields = resp.Battery.Userfields
	b.ChargeCyclesCount = int(resp.ChargeCyclesCount)
	b.LastCharged = resp.LastCharged.Time
	if !resp.LastTrackedTime.IsZero() {
		b.LastTrackedTime = resp.LastTrackedTime.Time
	}
	if !resp.NextEstimatedChargeTime.IsZero() {
		b.NextEstimatedChargeTime = resp.NextEstimatedChargeTime.Time
	}
}

// BatteryService manages batteries and their charge cycle tracking.
type BatteryService struct {
	client *Client
}

// List returns all batteries. With getDetails, each battery is hydrated
// with one extra detail request; identifiers and ordering match the plain
// listing.
func (s *BatteryService) List(ctx context.Context, getDetails bool, filters ...string) ([]*Battery, error) {
	var raw []CurrentBatteryResponse
	if err := s.client.get(ctx, "batteries", filters, &raw); err != nil {
		return nil, err
	}
	batteries := make([]*Battery, 0, len(raw))
	for _, resp := range raw {
		batteries = append(batteries, batteryFromCurrent(resp))
	}
	if getDetails {
		for _, battery := range batteries {
			var details BatteryDetailsResponse
			if err := s.client.get(ctx, fmt.Sprintf("batteries/%d", battery.ID), nil, &details); err != nil {
				return nil, err
			}
			battery.applyDetails(details)
		}
	}
	return batteries, nil
}

// Get returns full details for one battery.
func (s *BatteryService) Get(ctx context.Context, batteryID int) (*Battery, error) {
	var resp BatteryDetailsResponse
	if err := s.client.get(ctx, fmt.Sprintf("batteries/%d", batteryID), nil, &resp); err != nil {
		return nil, err
	}
	return batteryFromDetails(resp), nil
}

// Charge records a charge cycle. A zero trackedTime means now.
func (s *BatteryService) Charge(ctx context.Context, batteryID int, trackedTime time.Time) error {
	if trackedTime.IsZero() {
		trackedTime = time.Now()
	}
	body := map[string]any{"tracked_time": formatTimestamp(trackedTime)}
	return s.client.post(ctx, fmt.Sprintf("batteries/%d/charge", batteryID), body, nil)
}

// Undo reverts a charge cycle.
func (s *BatteryService) Undo(ctx context.Context, chargeCycleID int) error {
	return s.client.post(ctx, fmt.Sprintf("batteries/charge-cycles/%d/undo", chargeCycleID), map[string]any{}, nil)
}
