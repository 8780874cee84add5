package format

import (
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "0µs"},
		{750 * time.Microsecond, "750µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatElapsedSeconds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.0000000"},
		{100 * time.Nanosecond, "0.0000001"},
		{3*time.Second + 141592600*time.Nanosecond, "3.1415926"},
	}
	for _, tt := range tests {
		if got := FormatElapsedSeconds(tt.d); got != tt.want {
			t.Errorf("FormatElapsedSeconds(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()
	ts := time.Date(2026, 10, 19, 14, 3, 7, 512000000, time.Local)
	if got := FormatTimestamp(ts); got != "2026-10-19T14:03:07.512" {
		t.Errorf("FormatTimestamp() = %q", got)
	}
	whole := time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)
	if got := FormatTimestamp(whole); got != "2026-01-02T03:04:05" {
		t.Errorf("FormatTimestamp() = %q", got)
	}
}

func TestFormatNumbers(t *testing.T) {
	t.Parallel()
	if got := FormatResult(1.0); got != "1.0000000000" {
		t.Errorf("FormatResult = %q", got)
	}
	if got := FormatPartial(0.25); got != "0.25000000000000" {
		t.Errorf("FormatPartial = %q", got)
	}
	if got := FormatCPUSeconds(1.23456); got != "1.235" {
		t.Errorf("FormatCPUSeconds = %q", got)
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 * 1024 * 1024 * 1024, "3.0 GiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
