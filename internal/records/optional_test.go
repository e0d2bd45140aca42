package records

import (
	"encoding/json"
	"testing"
)

func TestOptionalIntDecode(t *testing.T) {
	cases := []struct {
		raw  string
		set  bool
		want int
	}{
		{`{"order": 0}`, true, 0},
		{`{"order": 5}`, true, 5},
		{`{"order": -2}`, true, -2},
		{`{"order": "3"}`, false, 0},
		{`{"order": null}`, false, 0},
		{`{"order": 1.5}`, false, 0},
		{`{}`, false, 0},
	}
	for _, tc := range cases {
		var body struct {
			Order OptionalInt `json:"order"`
		}
		if err := json.Unmarshal([]byte(tc.raw), &body); err != nil {
			t.Fatalf("%s: unexpected error %v", tc.raw, err)
		}
		if body.Order.Set != tc.set || body.Order.Value != tc.want {
			t.Fatalf("%s: got %+v", tc.raw, body.Order)
		}
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "b", "c"); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
