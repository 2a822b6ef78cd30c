package validation

import (
	"errors"
	"testing"
	"time"
)

func TestValidatePresets(t *testing.T) {
	tests := []struct {
		name    string
		presets []time.Duration
		wantErr error
	}{
		{"defaults", []time.Duration{5 * time.Second, 30 * time.Second, time.Minute}, nil},
		{"single", []time.Duration{time.Millisecond}, nil},
		{"empty", nil, ErrNoDuration},
		{"zero", []time.Duration{time.Second, 0}, ErrNonPositive},
		{"negative", []time.Duration{-time.Second}, ErrNonPositive},
		{"too many", make([]time.Duration, MaxPresets+1), ErrTooManyPresets},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePresets(tt.presets)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePresets() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePresets() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateInterval(t *testing.T) {
	if err := ValidateInterval(16 * time.Millisecond); err != nil {
		t.Errorf("ValidateInterval(16ms) unexpected error: %v", err)
	}
	if err := ValidateInterval(0); !errors.Is(err, ErrIntervalTooShort) {
		t.Errorf("ValidateInterval(0) error = %v, want ErrIntervalTooShort", err)
	}
	if err := ValidateInterval(500 * time.Microsecond); err == nil {
		t.Error("ValidateInterval(500µs) expected error")
	}
}

func TestParseDurations(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []time.Duration
		wantErr  bool
	}{
		{"go duration", []string{"1m30s"}, []time.Duration{90 * time.Second}, false},
		{"bare seconds", []string{"45"}, []time.Duration{45 * time.Second}, false},
		{"several", []string{"5s", " 30 ", "1h"}, []time.Duration{5 * time.Second, 30 * time.Second, time.Hour}, false},
		{"milliseconds", []string{"250ms"}, []time.Duration{250 * time.Millisecond}, false},
		{"none", nil, nil, true},
		{"blank", []string{"  "}, nil, true},
		{"garbage", []string{"soon"}, nil, true},
		{"negative", []string{"-5s"}, nil, true},
		{"zero", []string{"0"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDurations(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDurations(%v) expected error, got %v", tt.args, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDurations(%v) unexpected error: %v", tt.args, err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("ParseDurations(%v) = %v, want %v", tt.args, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("ParseDurations(%v)[%d] = %v, want %v", tt.args, i, got[i], tt.expected[i])
				}
			}
		})
	}
}
