package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestPayloadFor(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantKind    Kind
		wantMessage string
	}{
		{
			name:        "typed error keeps its kind",
			err:         Errorf(KindSessionNotFound, "session %q not found", "%99"),
			wantKind:    KindSessionNotFound,
			wantMessage: `session "%99" not found`,
		},
		{
			name:        "wrapped typed error still resolves",
			err:         fmt.Errorf("side-pane: %w", Errorf(KindNoSidePane, "tab has a single pane")),
			wantKind:    KindNoSidePane,
			wantMessage: "side-pane: tab has a single pane",
		},
		{
			name:        "plain error falls back to generic kind",
			err:         errors.New("boom"),
			wantKind:    KindError,
			wantMessage: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PayloadFor(tt.err)
			if p.Error != tt.wantKind {
				t.Errorf("kind: got %q, want %q", p.Error, tt.wantKind)
			}
			if p.Message != tt.wantMessage {
				t.Errorf("message: got %q, want %q", p.Message, tt.wantMessage)
			}
		})
	}
}

func TestErrorPayloadJSONShape(t *testing.T) {
	data, err := json.Marshal(PayloadFor(Errorf(KindInvalidControl, "invalid control character")))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := `{"error":"INVALID_CONTROL","message":"invalid control character"}`
	if string(data) != want {
		t.Errorf("payload JSON = %s, want %s", data, want)
	}
}
