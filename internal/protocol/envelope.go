package protocol

import "encoding/json"

// Envelope is the single-line JSON command sent to the programmer.
// It always carries a "state" field identifying the requested operation;
// operation-specific fields (memory size, address, calibration values) are
// added on top.
type Envelope map[string]any

// NewEnvelope creates an envelope for the given programmer state.
func NewEnvelope(state int) Envelope {
	return Envelope{"state": state}
}

// Set adds an operation-specific field and returns the envelope for chaining.
func (e Envelope) Set(key string, value any) Envelope {
	e[key] = value
	return e
}

// Merge copies all fields from m into the envelope. Existing keys are
// overwritten.
func (e Envelope) Merge(m map[string]any) Envelope {
	for k, v := range m {
		e[k] = v
	}
	return e
}

// Marshal serializes the envelope to its wire form: one line of JSON
// terminated by a newline.
func (e Envelope) Marshal() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
