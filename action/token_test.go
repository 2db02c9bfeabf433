package action

import (
	"errors"
	"testing"
)

func TestEncodeNewInstance(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Lock, "ACTION:lock:NEW"},
		{Logout, "ACTION:logout:NEW"},
		{Run, "ACTION:run:NEW"},
		{Search, "ACTION:search:NEW"},
		{ForceQuit, "ACTION:force-quit:NEW"},
		{ConnectServer, "ACTION:connect-server:NEW"},
		{Shutdown, "ACTION:shutdown:NEW"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := Encode(tt.kind, true, 0)
			if err != nil {
				t.Fatalf("Encode(%v, true, 0) error: %v", tt.kind, err)
			}
			if got != tt.want {
				t.Errorf("Encode(%v, true, 0) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestEncodeMove(t *testing.T) {
	got, err := Encode(Shutdown, false, 7)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if got != "ACTION:shutdown:7" {
		t.Errorf("Encode(Shutdown, false, 7) = %q, want ACTION:shutdown:7", got)
	}
}

func TestEncodeInvalidKind(t *testing.T) {
	for _, kind := range []Kind{None, lastKind, Kind(99), Kind(-1)} {
		if _, err := Encode(kind, true, 0); err == nil {
			t.Errorf("Encode(%d) should fail", int(kind))
		} else {
			var invalidErr *InvalidKindError
			if !errors.As(err, &invalidErr) {
				t.Errorf("Encode(%d) error = %T, want *InvalidKindError", int(kind), err)
			}
		}
	}
}

func TestDecodeNewAlwaysNew(t *testing.T) {
	// The index is irrelevant on the encode side of a NEW token
	for k := None + 1; k < lastKind; k++ {
		for _, idx := range []int{0, 5, 1234} {
			token, err := Encode(k, true, idx)
			if err != nil {
				t.Fatalf("Encode(%v, true, %d) error: %v", k, idx, err)
			}
			decoded, err := Decode(token)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", token, err)
			}
			if decoded.Kind != k || !decoded.IsNew {
				t.Errorf("Decode(%q) = %+v, want kind=%v isNew=true", token, decoded, k)
			}
		}
	}
}

func TestDecodeMoveRoundTrip(t *testing.T) {
	token, err := Encode(ForceQuit, false, 3)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	decoded, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode(%q) error: %v", token, err)
	}
	if decoded.Kind != ForceQuit || decoded.IsNew || decoded.SourceIndex != 3 {
		t.Errorf("Decode(%q) = %+v, want kind=force-quit isNew=false index=3", token, decoded)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		token string
		want  DragToken
	}{
		{"ACTION:lock:NEW", DragToken{Kind: Lock, IsNew: true}},
		{"ACTION:shutdown:7", DragToken{Kind: Shutdown, SourceIndex: 7}},
		{"ACTION:Lock:NEW", DragToken{Kind: Lock, IsNew: true}}, // case-insensitive name
		{"ACTION:search:0", DragToken{Kind: Search}},
		{"ACTION:run:42", DragToken{Kind: Run, SourceIndex: 42}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Decode(tt.token)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestDecodeFailures(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"no prefix", "LAUNCHER:lock:NEW"},
		{"empty", ""},
		{"prefix only", "ACTION:"},
		{"missing index segment", "ACTION:lock"},
		{"unknown name", "ACTION:bogus:NEW"},
		{"none is not draggable", "ACTION:none:NEW"},
		{"empty name", "ACTION::NEW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.token)
			if err == nil {
				t.Fatalf("Decode(%q) should fail", tt.token)
			}
			var tokenErr *UnknownTokenError
			if !errors.As(err, &tokenErr) {
				t.Errorf("Decode(%q) error = %T, want *UnknownTokenError", tt.token, err)
			}
		})
	}
}

// The permissive index parse below mirrors the historical strtol behavior of
// the drop target: a numeric prefix wins, anything else silently becomes 0.
// Deliberate, see the parseIndex comment.
func TestDecodeLenientIndex(t *testing.T) {
	tests := []struct {
		token     string
		wantIndex int
	}{
		{"ACTION:shutdown:12abc", 12},
		{"ACTION:shutdown:abc", 0},
		{"ACTION:shutdown:", 0},
		{"ACTION:search:-3", -3},
		{"ACTION:search:+8", 8},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Decode(tt.token)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", tt.token, err)
			}
			if got.IsNew {
				t.Errorf("Decode(%q) should not be a new-instance token", tt.token)
			}
			if got.SourceIndex != tt.wantIndex {
				t.Errorf("Decode(%q).SourceIndex = %d, want %d", tt.token, got.SourceIndex, tt.wantIndex)
			}
		})
	}
}

func TestDecodeIgnoresExtraSegments(t *testing.T) {
	got, err := Decode("ACTION:lock:4:junk")
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got.Kind != Lock || got.IsNew || got.SourceIndex != 4 {
		t.Errorf("Decode = %+v, want kind=lock isNew=false index=4", got)
	}
}
