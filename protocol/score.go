package protocol

// ScoreRequest describes a winning hand. Tiles use mpsz notation or the
// honor letters E S W N P F C; winds are one of E S W N.
type ScoreRequest struct {
	Hand    string     `json:"hand"`     // concealed tiles, winning tile excluded
	Melds   []MeldInfo `json:"melds"`    // called melds and closed kans
	WinTile string     `json:"win_tile"` // the completing tile
	Tsumo   bool       `json:"tsumo"`
	From    string     `json:"from"` // discarder on a ron: kamicha, toimen or shimocha

	RoundWind string `json:"round_wind"`
	SeatWind  string `json:"seat_wind"`

	Riichi       bool `json:"riichi"`
	DoubleRiichi bool `json:"double_riichi"`
	Ippatsu      bool `json:"ippatsu"`
	Rinshan      bool `json:"rinshan"`
	Chankan      bool `json:"chankan"`
	LastTile     bool `json:"last_tile"`
	FirstTurn    bool `json:"first_turn"`

	Dora         string `json:"dora"`     // dora indicators
	UraDora      string `json:"ura_dora"` // ura dora indicators, counted with riichi only
	Discards     string `json:"discards"`
	Furiten      bool   `json:"furiten"`
	Honba        int    `json:"honba"`
	Deposits     int    `json:"deposits"`
	DealerStreak int    `json:"dealer_streak"`
}

type MeldInfo struct {
	Kind  string `json:"kind"` // chi, pon, kan or ankan
	Tiles string `json:"tiles"`
	From  string `json:"from"` // kamicha, toimen or shimocha; ignored for ankan
}

type ScoreResponse struct {
	Code      int      `json:"code"`
	Han       int      `json:"han"`
	Fu        int      `json:"fu"`
	Yakuman   int      `json:"yakuman"`
	Dora      int      `json:"dora"`
	Limit     string   `json:"limit,omitempty"`
	Points    int      `json:"points"`
	Dealer    int      `json:"dealer,omitempty"`     // tsumo share paid by the dealer
	NonDealer int      `json:"non_dealer,omitempty"` // tsumo share paid by each other seat
	Yaku      []string `json:"yaku"`
	Hand      string   `json:"hand"`
	Wait      string   `json:"wait"`
}
