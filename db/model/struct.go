package model

// Game is one table, updated after every settled hand.
type Game struct {
	Id        int64
	Uuid      string `xorm:"not null unique VARCHAR(36) default ''"`
	Round     int    `xorm:"not null INT(11) default 0"`
	RoundWind int    `xorm:"not null TINYINT(4) default 1"`
	Dealer    int    `xorm:"not null TINYINT(4) default 0"`
	Honba     int    `xorm:"not null INT(11) default 0"`
	Score0    int    `xorm:"not null INT(11) default 0"`
	Score1    int    `xorm:"not null INT(11) default 0"`
	Score2    int    `xorm:"not null INT(11) default 0"`
	Score3    int    `xorm:"not null INT(11) default 0"`
	CreatedAt int64  `xorm:"not null BIGINT(20) default 0"`
	UpdatedAt int64  `xorm:"not null BIGINT(20) default 0"`
}

// History is one settled hand. Snapshot holds the full settlement as JSON.
type History struct {
	Id           int64
	GameUuid     string `xorm:"not null index VARCHAR(36) default ''"`
	Round        int    `xorm:"not null INT(11) default 0"`
	RoundWind    int    `xorm:"not null TINYINT(4) default 1"`
	Dealer       int    `xorm:"not null TINYINT(4) default 0"`
	Honba        int    `xorm:"not null INT(11) default 0"`
	Winner       int    `xorm:"not null TINYINT(4) default -1"`
	Loser        int    `xorm:"not null TINYINT(4) default -1"`
	Han          int    `xorm:"not null INT(11) default 0"`
	Fu           int    `xorm:"not null INT(11) default 0"`
	Points       int    `xorm:"not null INT(11) default 0"`
	Yaku         string `xorm:"not null VARCHAR(255) default ''"`
	BeginAt      int64  `xorm:"not null BIGINT(20) default 0"`
	EndAt        int64  `xorm:"not null BIGINT(20) default 0"`
	ScoreChange0 int    `xorm:"not null INT(11) default 0"`
	ScoreChange1 int    `xorm:"not null INT(11) default 0"`
	ScoreChange2 int    `xorm:"not null INT(11) default 0"`
	ScoreChange3 int    `xorm:"not null INT(11) default 0"`
	Snapshot     string `xorm:"TEXT"`
}
