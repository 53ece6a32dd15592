package web

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lonng/nex"
	"github.com/lonng/riichi/db"
	"github.com/lonng/riichi/internal/cache"
	"github.com/lonng/riichi/internal/game"
	"github.com/lonng/riichi/internal/game/history"
	"github.com/lonng/riichi/internal/web/api"
	"github.com/lonng/riichi/internal/whitelist"
	"github.com/lonng/riichi/pkg/algoutil"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/lonng/riichi/protocol"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Version is stamped at build time.
var Version = "dev"

var logger = log.WithField("component", "http")

func dbStartup() func() {
	return db.MustStartup(
		viper.GetString("database.driver"),
		viper.GetString("database.dsn"),
		db.MaxIdleConns(viper.GetInt("database.max_idle_conns")),
		db.MaxOpenConns(viper.GetInt("database.max_open_conns")),
		db.ShowSQL(viper.GetBool("database.show_sql")))
}

func cacheStartup() func() {
	if !viper.GetBool("cache.enable") {
		logger.Info("Score cache disabled")
		return func() {}
	}
	return cache.MustBootUp(
		viper.GetString("cache.addr"),
		viper.GetString("cache.password"),
		viper.GetInt("cache.db"),
		viper.GetDuration("cache.ttl"))
}

func version() (*protocol.Version, error) {
	return &protocol.Version{
		Version: Version,
		Rules:   "riichi",
	}, nil
}

func pongHandler() (string, error) {
	return "pong", nil
}

func logRequest(ctx context.Context, r *http.Request) (context.Context, error) {
	if uri := r.RequestURI; uri != "/ping" {
		logger.Debugf("Method=%s, RemoteAddr=%s URL=%s", r.Method, r.RemoteAddr, uri)
	}
	return ctx, nil
}

func encodeError(err error) interface{} {
	return &protocol.ErrorResponse{
		Code:  errutil.Code(err),
		Error: err.Error(),
	}
}

// recoverPanic answers a panicking handler with ErrServerInternal.
func recoverPanic(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				err := errors.Wrapf(errutil.ErrServerInternal, "%s %s: %v", r.Method, r.URL.Path, v)
				logger.Errorf("Handler panic: %v", err)
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(encodeError(err))
			}
		}()

		h.ServeHTTP(w, r)
	})
}

func init() {
	nex.Before(logRequest)
	nex.SetErrorEncoder(encodeError)
}

// NewHandler routes every endpoint. Tables are kept in m.
func NewHandler(m *game.Manager) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/v1/score", api.MakeScoreService())
	mux.Handle("/v1/history/", api.MakeHistoryService())
	games := api.MakeGameService(m)
	mux.Handle("/v1/game", games)
	mux.Handle("/v1/game/", games)
	mux.Handle("/v1/version", nex.Handler(version))
	mux.Handle("/ping", nex.Handler(pongHandler))

	return algoutil.AccessControl(algoutil.OptionControl(recoverPanic(mux)))
}

func Startup() {
	// setup database
	closer := dbStartup()
	defer closer()

	closeCache := cacheStartup()
	defer closeCache()

	if err := whitelist.Setup(viper.GetStringSlice("webserver.whitelist")); err != nil {
		logger.Fatalf("Illegal whitelist: %v", err)
	}

	var opts []game.Option
	if score := viper.GetInt("game.start_score"); score > 0 {
		opts = append(opts, game.WithStartScore(score))
	}
	manager := game.NewManager(history.Recorder{}, opts...)

	addr := viper.GetString("webserver.addr")
	logger.Infof("Web service addr: %s", addr)
	go func() {
		log.Fatal(http.ListenAndServe(addr, NewHandler(manager)))
	}()

	sg := make(chan os.Signal, 1)
	signal.Notify(sg, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	// stop server
	s := <-sg
	log.Infof("got signal: %s", s.String())
}
