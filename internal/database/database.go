package database

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Chip types as understood by the programmer firmware.
const (
	TypeEPROM = 1
	TypeSRAM  = 2
)

// EPROM holds the programmer parameters for one chip. The JSON tags are the
// wire field names: everything except the presentation-only fields (name,
// manufacturer, verified) is embedded into the command envelope as-is.
type EPROM struct {
	Name         string         `json:"name"`
	Manufacturer string         `json:"manufacturer"`
	Verified     bool           `json:"verified"`
	MemorySize   int            `json:"memory-size"`
	PinCount     int            `json:"pin-count"`
	Type         int            `json:"type"`
	CanErase     bool           `json:"can-erase"`
	HasChipID    bool           `json:"has-chip-id"`
	ChipID       uint32         `json:"chip-id"`
	VPP          float64        `json:"vpp"`
	PulseDelay   int            `json:"pulse-delay"`
	BusConfig    map[string]any `json:"bus-config,omitempty"`
}

// CommandFields returns the chip parameters stripped of presentation-only
// fields, ready to be merged into a command envelope.
func (e *EPROM) CommandFields() (map[string]any, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	delete(m, "name")
	delete(m, "manufacturer")
	delete(m, "verified")
	return m, nil
}

// Get looks up a chip by name, case-insensitively.
func Get(name string) (*EPROM, error) {
	for i := range eproms {
		if strings.EqualFold(eproms[i].Name, name) {
			e := eproms[i]
			return &e, nil
		}
	}
	return nil, fmt.Errorf("eprom %s not found", name)
}

// Search returns every chip whose name contains text, case-insensitively.
func Search(text string) []*EPROM {
	text = strings.ToLower(text)
	var found []*EPROM
	for i := range eproms {
		if strings.Contains(strings.ToLower(eproms[i].Name), text) {
			e := eproms[i]
			found = append(found, &e)
		}
	}
	return found
}

// List returns all chips, optionally restricted to verified entries,
// sorted by name.
func List(verifiedOnly bool) []*EPROM {
	var all []*EPROM
	for i := range eproms {
		if verifiedOnly && !eproms[i].Verified {
			continue
		}
		e := eproms[i]
		all = append(all, &e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}
