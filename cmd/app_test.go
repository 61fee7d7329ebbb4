package cmd

import (
	"errors"
	"testing"

	portfolio "github.com/jan-milacek/bogglehead-portfolio-simulator"
)

func TestParseBounds(t *testing.T) {
	tests := []struct {
		start, end     string
		wantFrom, want string
		wantErr        bool
	}{
		{"", "", "", "", false},
		{"2020-01-01", "", "2020-01-01", "", false},
		{"", "2020-12-31", "", "2020-12-31", false},
		{"2020-01-01", "2020-12-31", "2020-01-01", "2020-12-31", false},
		{"2020-12-31", "2020-01-01", "", "", true},
		{"not-a-date", "", "", "", true},
	}
	for _, tt := range tests {
		got, err := parseBounds(tt.start, tt.end)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseBounds(%q, %q) error = %v wantErr %v", tt.start, tt.end, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if tt.wantFrom == "" && !got.From.IsZero() {
			t.Errorf("parseBounds(%q, %q).From = %s want open", tt.start, tt.end, got.From)
		}
		if tt.wantFrom != "" && got.From != portfolio.MustParse(tt.wantFrom) {
			t.Errorf("parseBounds(%q, %q).From = %s want %s", tt.start, tt.end, got.From, tt.wantFrom)
		}
		if tt.want == "" && !got.To.IsZero() {
			t.Errorf("parseBounds(%q, %q).To = %s want open", tt.start, tt.end, got.To)
		}
		if tt.want != "" && got.To != portfolio.MustParse(tt.want) {
			t.Errorf("parseBounds(%q, %q).To = %s want %s", tt.start, tt.end, got.To, tt.want)
		}
	}
}

func TestParseSchedule(t *testing.T) {
	s, err := parseSchedule("10000", "500")
	if err != nil {
		t.Fatalf("parseSchedule() error = %v", err)
	}
	if got := s.Initial.String(); got != "$10,000.00" {
		t.Errorf("initial = %s want $10,000.00", got)
	}
	if got := s.Monthly.String(); got != "$500.00" {
		t.Errorf("monthly = %s want $500.00", got)
	}

	if _, err := parseSchedule("-1", "0"); !errors.Is(err, portfolio.ErrInvalidSchedule) {
		t.Errorf("parseSchedule(-1, 0) error = %v want ErrInvalidSchedule", err)
	}
	if _, err := parseSchedule("ten", "0"); err == nil {
		t.Error("parseSchedule(ten, 0) expected an error")
	}
}
