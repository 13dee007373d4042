package source

import "time"

// Canned datasets served when a live path fails or does not exist. Each
// adapter owns its table; none of these are mutated after init.

var cs2Fixtures = []Record{
	{
		Title:     "Counter-Strike 2 Update - September 2025",
		Timestamp: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		Body:      "Major gameplay updates including weapon balancing for AK-47 and M4A4, improved anti-cheat system, and map updates for Mirage and Dust2.",
		URL:       "https://store.steampowered.com/news/app/730",
	},
	{
		Title:     "CS2 Patch Notes - August 2025",
		Timestamp: time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
		Body:      "Fixed weapon switching delays, improved network stability, updated smoke grenade mechanics with better visual effects.",
		URL:       "https://store.steampowered.com/news/app/730",
	},
}

var leagueFixtures = []Record{
	{
		Title:     "Patch 14.18 Notes - Arena Returns",
		Timestamp: time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC),
		Body:      "Arena mode returns with new champions and balance changes. Major updates to Azir's kit, new items including Statikk Shiv rework, jungle experience adjustments, and ranked system improvements.",
		URL:       "https://www.leagueoflegends.com/en-us/news/game-updates/",
	},
	{
		Title:     "Patch 14.17 - World Championship Patch",
		Timestamp: time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC),
		Body:      "Preparation for Worlds 2025 with champion balance updates. Jinx base stats adjusted, new champion Briar released, updated ward placements around Dragon pit.",
		URL:       "https://www.leagueoflegends.com/en-us/news/game-updates/",
	},
	{
		Title:     "Patch 14.16 - Mid-Season Updates",
		Timestamp: time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
		Body:      "Mid-season balance updates with significant ADC role changes, support item adjustments, and new Rift Herald mechanics for better team fight dynamics.",
		URL:       "https://www.leagueoflegends.com/en-us/news/game-updates/",
	},
}

var overwatchFixtures = []Record{
	{
		Title:     "Season 12 Update - New Hero Juno",
		Timestamp: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		Body:      "New Support Hero Juno joins the roster with unique space-themed abilities. Competitive skill rating adjustments, Push map balancing updates, and improved ping system with more callouts.",
		URL:       "https://overwatch.blizzard.com/en-us/news/patch-notes/",
	},
	{
		Title:     "Mid-Season 12 Balance Update",
		Timestamp: time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC),
		Body:      "Hero balance changes including Mercy healing output increase, Widowmaker scoped sensitivity options, tank role passive updates, and DPS damage falloff adjustments.",
		URL:       "https://overwatch.blizzard.com/en-us/news/patch-notes/",
	},
	{
		Title:     "Flashpoint Game Mode Launch",
		Timestamp: time.Date(2025, 8, 13, 0, 0, 0, 0, time.UTC),
		Body:      "New limited-time game mode Flashpoint goes live. New Escort map Suravasa added, King's Row visual improvements, and enhanced replay system features.",
		URL:       "https://overwatch.blizzard.com/en-us/news/patch-notes/",
	},
}
