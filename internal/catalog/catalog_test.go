package catalog

import "testing"

func TestRolesAndRanksScopedByGame(t *testing.T) {
	roles := RolesFor("Valorant")
	if len(roles) != 4 || roles[0] != "Duelist" {
		t.Fatalf("unexpected Valorant roles: %v", roles)
	}

	if RolesFor("Dota 2") != nil {
		t.Fatalf("games without a role table must return nil")
	}

	ranks := RanksFor("CS2")
	if len(ranks) != 6 || ranks[len(ranks)-1] != "Global Elite" {
		t.Fatalf("unexpected CS2 ranks: %v", ranks)
	}
}

func TestRankOptionsForSelectedGame(t *testing.T) {
	got := RankOptions("Valorant")
	want := Ranks["Valorant"]
	if len(got) != len(want) {
		t.Fatalf("got %d options, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("option %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRankOptionsUnionHasNoDuplicates(t *testing.T) {
	got := RankOptions("")

	seen := make(map[string]bool)
	for _, rank := range got {
		if seen[rank] {
			t.Fatalf("duplicate rank option %q", rank)
		}
		seen[rank] = true
	}

	// Все ранги всех игр представлены
	for game, ranks := range Ranks {
		for _, rank := range ranks {
			if !seen[rank] {
				t.Fatalf("rank %q (%s) missing from the union", rank, game)
			}
		}
	}

	// Порядок следует порядку игр в справочнике: первые варианты — из Valorant
	if got[0] != "Iron" || got[1] != "Bronze" {
		t.Fatalf("union order does not follow the games table: %v", got[:2])
	}
}

func TestValidation(t *testing.T) {
	if !IsValidGame("Valorant") || IsValidGame("Chess") {
		t.Fatalf("game validation broken")
	}
	if !IsValidRegion("NA East") || IsValidRegion("Moon") {
		t.Fatalf("region validation broken")
	}
	if !IsValidRole("Valorant", "Duelist") || IsValidRole("Valorant", "Top") {
		t.Fatalf("role validation broken")
	}
	if !IsValidRank("CS2", "Global Elite") || IsValidRank("CS2", "Radiant") {
		t.Fatalf("rank validation broken")
	}

	// Игры без справочника ролей/рангов принимают любые значения
	if !IsValidRole("Fortnite", "Builder") || !IsValidRank("Fortnite", "Champion") {
		t.Fatalf("games without tables must accept any value")
	}
}
