package catalog

// Game is one board_game row. Column/JSON names follow the wire contract
// the existing client depends on.
type Game struct {
	ID            int     `json:"id_bg"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	YearPublished int     `json:"yearpublished"`
	MinPlayers    int     `json:"minplayers"`
	MaxPlayers    int     `json:"maxplayers"`
	PlayingTime   int     `json:"playingtime"`
	MinAge        int     `json:"minage"`
	Owned         int     `json:"owned"`
	Wanting       int     `json:"wanting"`
	ImageURL      *string `json:"img"`
	UsersRated    int     `json:"users_rated"`
	Average       float64 `json:"average"`
}

// Expansion is one bg_expansion row belonging to a game.
type Expansion struct {
	ID   int    `json:"id_bge"`
	Name string `json:"name"`
}

// GameDetails is a Game merged with its relation name lists and expansions,
// as returned by the ad-hoc detail lookup.
type GameDetails struct {
	Game
	Designers  []string    `json:"designers"`
	Publishers []string    `json:"publishers"`
	Categories []string    `json:"categories"`
	Mechanics  []string    `json:"mechanics"`
	Expansions []Expansion `json:"expansions"`
}

// AggregatedDetails is the shape produced by the get_board_game_details
// stored routine: the game row (nil when no match) plus its relation names.
type AggregatedDetails struct {
	Info       *Game    `json:"info"`
	Categories []string `json:"categories"`
	Mechanics  []string `json:"mechanics"`
	Designers  []string `json:"designers"`
	Publishers []string `json:"publishers"`
}

// GameRef is the id/title pair returned by the delete-confirmation probe.
type GameRef struct {
	ID   int    `json:"id_bg"`
	Name string `json:"name"`
}

// Relations carries the four reference-name lists attached to a game.
// Lists are normalized (trimmed, deduplicated) before they reach the
// repository.
type Relations struct {
	Designers  []string
	Publishers []string
	Categories []string
	Mechanics  []string
}
