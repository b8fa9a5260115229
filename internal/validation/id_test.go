package validation

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseID(t *testing.T) {
	want := uuid.New()

	id, fields := ParseID("cart_item_id", want.String())
	if fields != nil {
		t.Fatalf("expected no field errors, got %v", fields)
	}
	if id != want {
		t.Fatalf("got %s want %s", id, want)
	}

	id, fields = ParseID("cart_item_id", "  "+want.String()+"  ")
	if fields != nil || id != want {
		t.Fatalf("expected whitespace to be trimmed, got %s / %v", id, fields)
	}

	for _, raw := range []string{"", "not-a-uuid", "123", uuid.Nil.String()} {
		id, fields = ParseID("shipping_address_id", raw)
		if id != uuid.Nil {
			t.Fatalf("raw %q: expected nil id, got %s", raw, id)
		}
		if got := fields["shipping_address_id"]; got != "ID inválido." {
			t.Fatalf("raw %q: got message %q", raw, got)
		}
	}
}
