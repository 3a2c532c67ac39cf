package applications

import (
	"errors"
	"testing"
)

func TestParseEventSource(t *testing.T) {
	valid := map[string]EventSource{
		"channel:1234":            {SourceChannel, "1234"},
		"bridge:bridge-1":         {SourceBridge, "bridge-1"},
		"endpoint:PJSIP/6001":     {SourceEndpoint, "PJSIP/6001"},
		"deviceState:Custom:lamp": {SourceDevice, "Custom:lamp"},
		"channel:with:colon":      {SourceChannel, "with:colon"},
		"endpoint:SIP/alice@pbx":  {SourceEndpoint, "SIP/alice@pbx"},
	}
	for input, expected := range valid {
		source, err := ParseEventSource(input)
		if err != nil {
			t.Errorf("Unexpected error parsing %s: %s", input, err)
			continue
		}
		if source != expected {
			t.Errorf("Parsed %s into %v instead of %v", input, source, expected)
		}
		if source.String() != input {
			t.Errorf("%v serializes into %s instead of %s", source, source.String(), input)
		}
	}

	invalid := []string{
		"",
		"channel",
		"channel:",
		"recording:r1",
		"endpoint:PJSIP",
		"endpoint:/6001",
		"endpoint:PJSIP/",
	}
	for _, input := range invalid {
		_, err := ParseEventSource(input)
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("No invalid error parsing %s: %v", input, err)
		}
	}
}

func TestParseEventSources(t *testing.T) {
	sources, err := ParseEventSources([]string{"channel:c1", "bridge:b1"})
	if err != nil {
		t.Fatalf(err.Error())
	}
	if len(sources) != 2 {
		t.Fatalf("Parsed %d sources instead of 2", len(sources))
	}

	_, err = ParseEventSources([]string{"channel:c1", "bogus"})
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("No invalid error for a list with a malformed source: %v", err)
	}
}
