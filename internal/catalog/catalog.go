// Package catalog — статические справочники: игры, регионы,
// роли и ранги по играм. Чистые данные, без состояния.
package catalog

var Games = []string{
	"Valorant",
	"League of Legends",
	"CS2",
	"Overwatch 2",
	"Apex Legends",
	"Rocket League",
	"Dota 2",
	"Fortnite",
	"Call of Duty",
	"Rainbow Six Siege",
}

var Regions = []string{
	"NA East",
	"NA West",
	"EU West",
	"EU East",
	"Asia Pacific",
	"Brazil",
	"Latin America",
	"Oceania",
	"Middle East",
	"Africa",
}

var Roles = map[string][]string{
	"Valorant":          {"Duelist", "Initiator", "Controller", "Sentinel"},
	"League of Legends": {"Top", "Jungle", "Mid", "ADC", "Support"},
	"CS2":               {"Entry Fragger", "AWPer", "Support", "IGL", "Lurker"},
	"Overwatch 2":       {"Tank", "Damage", "Support"},
	"Apex Legends":      {"Assault", "Defensive", "Support", "Recon"},
	"Rocket League":     {"Striker", "Midfielder", "Goalkeeper", "All-Around"},
}

var Ranks = map[string][]string{
	"Valorant":          {"Iron", "Bronze", "Silver", "Gold", "Platinum", "Diamond", "Ascendant", "Immortal", "Radiant"},
	"League of Legends": {"Iron", "Bronze", "Silver", "Gold", "Platinum", "Diamond", "Master", "Grandmaster", "Challenger"},
	"CS2":               {"Silver", "Gold Nova", "Master Guardian", "Legendary Eagle", "Supreme", "Global Elite"},
	"Overwatch 2":       {"Bronze", "Silver", "Gold", "Platinum", "Diamond", "Master", "Grandmaster", "Top 500"},
	"Apex Legends":      {"Bronze", "Silver", "Gold", "Platinum", "Diamond", "Master", "Predator"},
	"Rocket League":     {"Bronze", "Silver", "Gold", "Platinum", "Diamond", "Champion", "Grand Champion", "Supersonic Legend"},
}

// RolesFor возвращает роли для игры (nil, если игра без списка ролей)
func RolesFor(game string) []string {
	return Roles[game]
}

// RanksFor возвращает ранги для игры (nil, если игра без рангов)
func RanksFor(game string) []string {
	return Ranks[game]
}

// RankOptions — варианты ранга для панели фильтров: ранги выбранной игры,
// а без выбранной игры — объединение рангов всех игр без дублей,
// в порядке следования игр в справочнике
func RankOptions(game string) []string {
	if game != "" {
		return Ranks[game]
	}

	seen := make(map[string]bool)
	var options []string
	for _, g := range Games {
		for _, rank := range Ranks[g] {
			if !seen[rank] {
				seen[rank] = true
				options = append(options, rank)
			}
		}
	}
	return options
}

func IsValidGame(game string) bool {
	return contains(Games, game)
}

func IsValidRegion(region string) bool {
	return contains(Regions, region)
}

// IsValidRole: у игр без списка ролей любая роль считается допустимой
func IsValidRole(game, role string) bool {
	roles, ok := Roles[game]
	if !ok {
		return true
	}
	return contains(roles, role)
}

func IsValidRank(game, rank string) bool {
	ranks, ok := Ranks[game]
	if !ok {
		return true
	}
	return contains(ranks, rank)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
