package ai

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestProductListEnvelope(t *testing.T) {
	// JSON mode replies carry the array under a "products" key
	reply := `{
		"products": [
			{"tier": "Gold", "brand": "CeraVe", "product_name": "Foaming Cleanser", "price_estimate": "$15"},
			{"tier": "Silver", "brand": "Cetaphil", "product_name": "Gentle Cleanser", "price_estimate": "$12"}
		]
	}`

	var list productList
	if err := json.Unmarshal([]byte(reply), &list); err != nil {
		t.Fatalf("failed to parse envelope: %v", err)
	}

	if len(list.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(list.Products))
	}
	if list.Products[0].Tier != TierGold {
		t.Errorf("expected first tier Gold, got %s", list.Products[0].Tier)
	}
	if list.Products[1].Brand != "Cetaphil" {
		t.Errorf("expected second brand Cetaphil, got %s", list.Products[1].Brand)
	}
}

func TestProductListDirective_NamesEnvelopeKey(t *testing.T) {
	// the directive and the envelope tag must agree on the key
	if !strings.Contains(productListDirective, `"products"`) {
		t.Errorf("directive does not mention the envelope key: %q", productListDirective)
	}
}
