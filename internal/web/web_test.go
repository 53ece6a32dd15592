package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lonng/riichi/internal/game"
	"github.com/lonng/riichi/internal/whitelist"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/lonng/riichi/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tableState struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Turn    int    `json:"turn"`
	Players []struct {
		Hand     []string `json:"hand"`
		Drawn    *string  `json:"drawn"`
		Discards []string `json:"discards"`
	} `json:"players"`
}

func post(t *testing.T, url string, body, out interface{}) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(NewHandler(game.NewManager(nil)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	var pong string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pong))
	assert.Equal(t, "pong", pong)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestScore(t *testing.T) {
	srv := httptest.NewServer(NewHandler(game.NewManager(nil)))
	defer srv.Close()

	var resp protocol.ScoreResponse
	post(t, srv.URL+"/v1/score", &protocol.ScoreRequest{
		Hand:     "123m456m789p23s99s",
		WinTile:  "4s",
		From:     "toimen",
		SeatWind: "S",
		Riichi:   true,
	}, &resp)

	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, 2, resp.Han)
	assert.Equal(t, 30, resp.Fu)
	assert.Equal(t, 2000, resp.Points)
	assert.Len(t, resp.Yaku, 2)

	var fail protocol.ErrorResponse
	post(t, srv.URL+"/v1/score", &protocol.ScoreRequest{
		Hand:     "111m456m789p23s99s",
		WinTile:  "4s",
		From:     "toimen",
		SeatWind: "S",
	}, &fail)
	assert.Equal(t, errutil.Code(errutil.ErrNoYaku), fail.Code)

	for _, req := range []*protocol.ScoreRequest{
		{Hand: "123m456m789p23s99s", WinTile: "4s", Tsumo: true, Riichi: true, Honba: 1 << 60},
		{Hand: "123m456m789p23s99s", WinTile: "4s", Tsumo: true, Riichi: true, Deposits: 1 << 60},
	} {
		fail = protocol.ErrorResponse{}
		post(t, srv.URL+"/v1/score", req, &fail)
		assert.Equal(t, errutil.Code(errutil.ErrInvalidParameter), fail.Code)
	}

	post(t, srv.URL+"/v1/score", &protocol.ScoreRequest{Hand: "12x", WinTile: "4s"}, &fail)
	assert.Equal(t, errutil.Code(errutil.ErrIllegalTile), fail.Code)
}

func TestGame(t *testing.T) {
	srv := httptest.NewServer(NewHandler(game.NewManager(nil)))
	defer srv.Close()

	var created struct {
		Code int        `json:"code"`
		Data tableState `json:"data"`
	}
	post(t, srv.URL+"/v1/game", &protocol.CreateGameRequest{Seed: 42}, &created)
	require.Equal(t, 0, created.Code)
	require.NotEmpty(t, created.Data.ID)
	require.Len(t, created.Data.Players, 4)
	require.NotNil(t, created.Data.Players[0].Drawn)

	action := srv.URL + "/v1/game/" + created.Data.ID + "/action"

	var fail protocol.ErrorResponse
	post(t, action, &protocol.GameActionRequest{Seat: 1, Action: "draw"}, &fail)
	assert.Equal(t, errutil.Code(errutil.ErrNotYourTurn), fail.Code)

	post(t, action, &protocol.GameActionRequest{Seat: 0, Action: "shuffle"}, &fail)
	assert.Equal(t, errutil.Code(errutil.ErrInvalidParameter), fail.Code)

	drawn := *created.Data.Players[0].Drawn
	var moved struct {
		Code  int        `json:"code"`
		State tableState `json:"state"`
	}
	post(t, action, &protocol.GameActionRequest{Seat: 0, Action: "discard", Tile: drawn}, &moved)
	require.Equal(t, 0, moved.Code)
	assert.Equal(t, 1, moved.State.Turn)
	assert.Equal(t, []string{drawn}, moved.State.Players[0].Discards)
	assert.Len(t, moved.State.Players[0].Hand, 13)

	var drew struct {
		Code int    `json:"code"`
		Tile string `json:"tile"`
	}
	post(t, action, &protocol.GameActionRequest{Seat: 1, Action: "draw"}, &drew)
	assert.Equal(t, 0, drew.Code)
	assert.NotEmpty(t, drew.Tile)

	resp, err := http.Get(srv.URL + "/v1/game/" + created.Data.ID)
	require.NoError(t, err)
	defer resp.Body.Close()
	var fetched struct {
		Data tableState `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	assert.Equal(t, created.Data.ID, fetched.Data.ID)
	assert.Equal(t, "playing", fetched.Data.Status)
}

func TestListAndRemoveGame(t *testing.T) {
	m := game.NewManager(nil)
	srv := httptest.NewServer(NewHandler(m))
	defer srv.Close()

	for i := 0; i < 3; i++ {
		_, err := m.Create(int64(i + 1))
		require.NoError(t, err)
	}

	get := func(url string, out interface{}) {
		resp, err := http.Get(url)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	remove := func(id string, out interface{}) {
		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/v1/game/"+id, nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	var list protocol.GameListResponse
	get(srv.URL+"/v1/game?count=2", &list)
	assert.Equal(t, 3, list.Total)
	require.Len(t, list.Data, 2)

	require.NoError(t, whitelist.Setup(nil))
	var fail protocol.ErrorResponse
	remove(list.Data[0], &fail)
	assert.Equal(t, errutil.Code(errutil.ErrPermissionDenied), fail.Code)

	require.NoError(t, whitelist.Setup([]string{"127.0.0.1"}))
	var ok protocol.StringResponse
	remove(list.Data[0], &ok)
	assert.Equal(t, protocol.SuccessResponse, ok)
	assert.Equal(t, 2, m.Len())

	remove(list.Data[0], &fail)
	assert.Equal(t, errutil.Code(errutil.ErrGameNotFound), fail.Code)
}

func TestRecoverPanic(t *testing.T) {
	h := recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("points table out of range")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/score", nil))

	var fail protocol.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&fail))
	assert.Equal(t, errutil.Code(errutil.ErrServerInternal), fail.Code)
	assert.Contains(t, fail.Error, "/v1/score")
	assert.Contains(t, fail.Error, "points table out of range")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	w = httptest.NewRecorder()
	recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"pong"`))
	})).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, `"pong"`, w.Body.String())
}
