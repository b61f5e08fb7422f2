package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Group is a named, orderable collection of notes
type Group struct {
	ID        ID
	Name      string
	CreatedAt time.Time
}

type groupJSON struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// MarshalJSON encodes the group in its persisted shape
func (g Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(groupJSON{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: FormatTime(g.CreatedAt),
	})
}

// UnmarshalJSON decodes the persisted shape
func (g *Group) UnmarshalJSON(data []byte) error {
	var in groupJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	created, err := ParseTime(in.CreatedAt)
	if err != nil {
		return fmt.Errorf("group %d createdAt: %w", in.ID, err)
	}
	*g = Group{ID: in.ID, Name: in.Name, CreatedAt: created}
	return nil
}
