package serialport

import (
	"strings"

	"go.bug.st/serial/enumerator"
)

// The programmer is an Arduino UNO, possibly behind an FTDI adapter. Ports
// whose USB descriptor matches either signature are handshake candidates.
var vendorSignatures = []string{"Arduino", "FTDI"}

// USB vendor IDs for the same two vendors, for descriptors that carry no
// usable product string.
var vendorIDs = map[string]bool{
	"2341": true, // Arduino
	"2A03": true, // Arduino (clone boards)
	"0403": true, // FTDI
}

// CandidatePorts enumerates ports worth a handshake attempt: the remembered
// last-good port first (if any), then every system-visible port matching a
// known vendor signature. An empty result means there is nothing to try.
func CandidatePorts(remembered string) []string {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		details = nil
	}
	return candidates(remembered, details)
}

func candidates(remembered string, details []*enumerator.PortDetails) []string {
	var ports []string
	if remembered != "" {
		ports = append(ports, remembered)
	}
	for _, d := range details {
		if !matchesVendor(d) {
			continue
		}
		if d.Name == remembered {
			continue
		}
		ports = append(ports, d.Name)
	}
	return ports
}

func matchesVendor(d *enumerator.PortDetails) bool {
	if !d.IsUSB {
		return false
	}
	if vendorIDs[strings.ToUpper(d.VID)] {
		return true
	}
	for _, sig := range vendorSignatures {
		if strings.Contains(d.Product, sig) {
			return true
		}
	}
	return false
}
