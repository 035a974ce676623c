package util

import (
	"strconv"
	"testing"
	"time"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != ts {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}

func TestISOTime(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	if got := ISOTime(ts); got != "2024-03-01T11:00:00.000Z" {
		t.Fatalf("unexpected iso time %s", got)
	}
}

func TestShortHex(t *testing.T) {
	got := ShortHex("0xd8da6bf26964af9d7eed9e03e53415d37aa96045", 6, 4)
	if got != "0xd8da...6045" {
		t.Fatalf("unexpected short hex %s", got)
	}
	if ShortHex("0xabc", 6, 4) != "0xabc" {
		t.Fatalf("short strings should pass through")
	}
	if Prefix("Uniswap", 6) != "Uniswa" || Prefix("0xa", 6) != "0xa" {
		t.Fatalf("unexpected prefix")
	}
}
