package hydrate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type playerSnapshot struct {
	Health int      `json:"health"`
	Team   string   `json:"team"`
	Perks  []string `json:"perks"`
}

func TestDecoderDefaultPath(t *testing.T) {
	decoder := NewDecoder[playerSnapshot]()
	ctx := Context{Holder: "player:p1", Expr: "snapshot"}

	result, err := decoder.Decode(ctx, map[string]any{
		"health": 80,
		"team":   "red",
		"perks":  []any{"scout"},
	})
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if result.Health != 80 || result.Team != "red" || len(result.Perks) != 1 {
		t.Fatalf("decoded snapshot mismatch: %+v", result)
	}
}

func TestDecoderNilPayload(t *testing.T) {
	decoder := NewDecoder[playerSnapshot]()
	_, err := decoder.Decode(Context{Holder: "player:p1"}, nil)
	if err == nil {
		t.Fatalf("expected error for nil payload")
	}
	if !strings.Contains(err.Error(), "player:p1") {
		t.Fatalf("expected holder in error, got %v", err)
	}
}

func TestDecoderDisallowUnknownFields(t *testing.T) {
	decoder := NewDecoder[playerSnapshot](WithDisallowUnknownFields[playerSnapshot]())
	_, err := decoder.Decode(Context{Holder: "player:p1"}, map[string]any{
		"health":  80,
		"unknown": true,
	})
	if err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestDecoderPreHookNormalisesPayload(t *testing.T) {
	decoder := NewDecoder[playerSnapshot](WithPreHook[playerSnapshot](
		func(_ Context, payload map[string]any) (map[string]any, error) {
			if raw, ok := payload["team"].(string); ok {
				payload["team"] = strings.ToLower(raw)
			}
			return payload, nil
		},
	))

	result, err := decoder.Decode(Context{Holder: "player:p1"}, map[string]any{"team": "RED"})
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if result.Team != "red" {
		t.Fatalf("expected pre-hook normalisation, got %+v", result)
	}
}

func TestDecoderPreHookDoesNotMutateCaller(t *testing.T) {
	payload := map[string]any{"team": "RED"}
	decoder := NewDecoder[playerSnapshot](WithPreHook[playerSnapshot](
		func(_ Context, current map[string]any) (map[string]any, error) {
			current["team"] = "blue"
			return current, nil
		},
	))

	if _, err := decoder.Decode(Context{Holder: "player:p1"}, payload); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if payload["team"] != "RED" {
		t.Fatalf("expected caller payload untouched, got %v", payload)
	}
}

func TestDecoderPostHookValidates(t *testing.T) {
	decoder := NewDecoder[playerSnapshot](WithPostHook[playerSnapshot](
		func(ctx Context, snapshot *playerSnapshot) error {
			if snapshot.Health < 0 {
				return fmt.Errorf("negative health for %s", ctx.Holder)
			}
			return nil
		},
	))

	if _, err := decoder.Decode(Context{Holder: "player:p1"}, map[string]any{"health": -5}); err == nil {
		t.Fatalf("expected post-hook validation error")
	}
	if _, err := decoder.Decode(Context{Holder: "player:p1"}, map[string]any{"health": 5}); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
}

func TestDecoderCustomDecoder(t *testing.T) {
	sentinel := errors.New("raw snapshot missing")
	decoder := NewDecoder[playerSnapshot](WithCustomDecoder[playerSnapshot](
		func(_ Context, payload map[string]any) (playerSnapshot, error) {
			var zero playerSnapshot
			raw, ok := payload["raw"].(string)
			if !ok {
				return zero, sentinel
			}
			var result playerSnapshot
			if err := json.Unmarshal([]byte(raw), &result); err != nil {
				return zero, err
			}
			return result, nil
		},
	))

	result, err := decoder.Decode(Context{Holder: "player:p1"}, map[string]any{
		"raw": `{"health": 42, "team": "red"}`,
	})
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if result.Health != 42 {
		t.Fatalf("custom decoder mismatch: %+v", result)
	}

	_, err = decoder.Decode(Context{Holder: "player:p1"}, map[string]any{})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected custom decoder error to unwrap, got %v", err)
	}
}

func TestDecoderUseNumber(t *testing.T) {
	type numeric struct {
		Value json.Number `json:"value"`
	}
	decoder := NewDecoder[numeric](WithUseNumber[numeric]())
	result, err := decoder.Decode(Context{Holder: "player:p1"}, map[string]any{"value": 12.5})
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if result.Value.String() != "12.5" {
		t.Fatalf("expected json.Number preserved, got %q", result.Value)
	}
}
