package grocy

import (
	"context"
	"fmt"
	"time"
)

// Equipment is the domain view of a piece of household equipment.
type Equipment struct {
	ID                        int
	Name                      string
	Description               string
	InstructionManualFileName string
	Created                   time.Time
	Userfields                map[string]any
}

func equipmentFromData(data EquipmentData) *Equipment {
	return &Equipment{
		ID:                        int(data.ID),
		Name:                      data.Name,
		Description:               data.Description,
		InstructionManualFileName: data.InstructionManualFileName,
		Created:                   data.RowCreatedTimestamp.Time,
		Userfields:                data.Userfields,
	}
}

// EquipmentService manages household equipment records.
type EquipmentService struct {
	client *Client
}

// List returns all equipment items, optionally filtered server-side.
func (s *EquipmentService) List(ctx context.Context, filters ...string) ([]*Equipment, error) {
	var raw []EquipmentData
	if err := s.client.get(ctx, "objects/"+EntityEquipment.String(), filters, &raw); err != nil {
		return nil, err
	}
	items := make([]*Equipment, 0, len(raw))
	for _, data := range raw {
		items = append(items, equipmentFromData(data))
	}
	return items, nil
}

// Get returns one equipment item.
func (s *EquipmentService) Get(ctx context.Context, equipmentID int) (*Equipment, error) {
	var data EquipmentData
	if err := s.client.get(ctx, fmt.Sprintf("objects/%s/%d", EntityEquipment, equipmentID), nil, &data); err != nil {
		return nil, err
	}
	return equipmentFromData(data), nil
}
