// Package catalog holds the static table of games the service knows how to
// track. Adding a game here does not by itself enable live fetching; a
// matching source adapter has to be registered as well.
package catalog

// Game describes one tracked game.
type Game struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Platforms   []string `json:"platforms"`
	NotesURL    string   `json:"release_notes_url"`
	Developer   string   `json:"developer"`
	Description string   `json:"description"`
}

var games = []Game{
	{
		ID:          "cs2",
		Name:        "Counter-Strike 2",
		Platforms:   []string{"PC"},
		NotesURL:    "https://store.steampowered.com/news/app/730",
		Developer:   "Valve",
		Description: "The ultimate competitive FPS experience",
	},
	{
		ID:          "lol",
		Name:        "League of Legends",
		Platforms:   []string{"PC"},
		NotesURL:    "https://www.leagueoflegends.com/en-us/news/game-updates/",
		Developer:   "Riot Games",
		Description: "Strategic team-based MOBA gameplay",
	},
	{
		ID:          "overwatch",
		Name:        "Overwatch 2",
		Platforms:   []string{"PC", "Xbox", "PlayStation", "Nintendo Switch"},
		NotesURL:    "https://overwatch.blizzard.com/en-us/news/patch-notes/",
		Developer:   "Blizzard Entertainment",
		Description: "Team-based hero shooter with diverse characters",
	},
}

// All returns the full catalog.
func All() []Game {
	out := make([]Game, len(games))
	copy(out, games)
	return out
}

// ByID looks a game up by its identifier.
func ByID(id string) (Game, bool) {
	for _, g := range games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// ByPlatform returns the games available on the given platform.
func ByPlatform(platform string) []Game {
	var out []Game
	for _, g := range games {
		for _, p := range g.Platforms {
			if p == platform {
				out = append(out, g)
				break
			}
		}
	}
	return out
}
