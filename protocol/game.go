package protocol

type CreateGameRequest struct {
	Seed int64 `json:"seed"` // zero picks a random shuffle
}

// GameActionRequest is one move at a table. Action is one of draw, discard,
// riichi, chi, pon, kan, ankan, tsumo, ron, draw_game and next.
type GameActionRequest struct {
	Seat   int    `json:"seat"`
	Action string `json:"action"`
	Tile   string `json:"tile"`  // discard, riichi and ankan
	Tiles  string `json:"tiles"` // the two hand tiles of a chi
}

type GameActionResponse struct {
	Code   int         `json:"code"`
	Tile   string      `json:"tile,omitempty"`   // drawn tile
	Result interface{} `json:"result,omitempty"` // settlement when the hand ended
	State  interface{} `json:"state"`
}

type GameListResponse struct {
	Code  int      `json:"code"`
	Total int      `json:"total"`
	Data  []string `json:"data"`
}
