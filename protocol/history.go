package protocol

type HistoryLite struct {
	Id           int64  `json:"id"`
	GameId       string `json:"game_id"`
	Round        int    `json:"round"`
	RoundWind    int    `json:"round_wind"`
	Dealer       int    `json:"dealer"`
	Honba        int    `json:"honba"`
	Winner       int    `json:"winner"`
	Loser        int    `json:"loser"`
	Han          int    `json:"han"`
	Fu           int    `json:"fu"`
	Points       int    `json:"points"`
	Yaku         string `json:"yaku"`
	BeginAt      int64  `json:"begin_at"`
	BeginAtStr   string `json:"begin_at_str"`
	EndAt        int64  `json:"end_at"`
	ScoreChange0 int    `json:"score_change0"`
	ScoreChange1 int    `json:"score_change1"`
	ScoreChange2 int    `json:"score_change2"`
	ScoreChange3 int    `json:"score_change3"`
}

type History struct {
	HistoryLite
	Snapshot string `json:"snapshot"`
}

type HistoryLiteListResponse struct {
	Code  int           `json:"code"`
	Total int64         `json:"total"`
	Data  []HistoryLite `json:"data"`
	Stats interface{}   `json:"stats"`
}

type HistoryByIDResponse struct {
	Code int      `json:"code"`
	Data *History `json:"data"`
}
