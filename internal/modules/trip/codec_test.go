package trip

import (
	"reflect"
	"testing"
)

func TestListCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		items []string
	}{
		{"Empty", []string{}},
		{"Single", []string{"Pack light"}},
		{"Multiple", []string{"Fushimi Inari", "Kinkaku-ji", "Gion"}},
		{"Embedded newline", []string{"Line one\nline two", "plain"}},
		{"Embedded backslash", []string{`C:\maps`, `trailing\`}},
		{"Escape lookalikes", []string{`literal \n text`, "real\nnewline"}},
		{"Empty entries preserved", []string{"", "middle", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeList(encodeList(tt.items))
			if !reflect.DeepEqual(got, tt.items) {
				t.Errorf("round trip = %q, want %q", got, tt.items)
			}
		})
	}
}

func TestListCodec_EmptyBlob(t *testing.T) {
	if got := decodeList(""); len(got) != 0 {
		t.Errorf("expected empty list, got %q", got)
	}
}

func TestBreakdownCodec_RoundTrip(t *testing.T) {
	in := Breakdown{"accommodation": 12000, "food": 4500.5, "transport": 3000}
	got := decodeBreakdown(encodeBreakdown(in))
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip = %v, want %v", got, in)
	}
}

func TestBreakdownCodec_Absent(t *testing.T) {
	if got := encodeBreakdown(nil); got != "" {
		t.Errorf("expected empty blob, got %q", got)
	}
	if got := decodeBreakdown(""); got != nil {
		t.Errorf("expected nil breakdown, got %v", got)
	}
}
