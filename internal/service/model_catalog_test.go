package service

import "testing"

func TestModelCatalogListOrder(t *testing.T) {
	want := []string{"gpt-3.5-turbo", "gpt-4", "claude-3", "llama-2"}

	models := ModelCatalog{}.List()
	if len(models) != len(want) {
		t.Fatalf("expected %d models, got %d", len(want), len(models))
	}
	for i, id := range want {
		if models[i].ID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, models[i].ID)
		}
		if models[i].Name == "" || models[i].Provider == "" {
			t.Fatalf("model %q missing name or provider", id)
		}
	}
	if models[2].Provider != "Anthropic" || models[3].Provider != "Meta" {
		t.Fatalf("unexpected providers: %+v", models)
	}
}

func TestModelCatalogListReturnsCopy(t *testing.T) {
	catalog := ModelCatalog{}
	first := catalog.List()
	first[0].ID = "mutated"

	second := catalog.List()
	if second[0].ID != "gpt-3.5-turbo" {
		t.Fatalf("catalog mutated through returned slice: %+v", second[0])
	}
}
