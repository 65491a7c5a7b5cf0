package cmd

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/midimml/db"
	"github.com/jsphweid/midimml/midi"
	"github.com/jsphweid/midimml/model"
	"github.com/jsphweid/midimml/song"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// maxUploadBytes caps the size of an uploaded MIDI file.
const maxUploadBytes = 8 << 20

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves conversions over HTTP",
	Long:  `Serves conversions over HTTP. POST a MIDI file to /convert or /songs, fetch stored ones from /songs/{id}.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.log.Sync()
		return serve(cmd.Context(), a)
	},
}

func newStore(a *app) (db.Store, error) {
	if a.cfg.DynamoDBEndpoint == "" {
		return db.NewMemoryStore(), nil
	}
	return db.NewDynamoStore(a.cfg.DynamoDBEndpoint, a.cfg.DynamoDBRegion, a.cfg.DynamoDBTable)
}

func serve(ctx context.Context, a *app) error {
	store, err := newStore(a)
	if err != nil {
		return err
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: a.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(NewRouter(a.log, store, a.opts))
	srv := &http.Server{Addr: a.cfg.Addr, Handler: handler}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	a.log.Infow("Starting HTTP server", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

type songHandler struct {
	log   *zap.SugaredLogger
	store db.Store
	opts  model.SongOptions
}

// NewRouter routes the conversion API. opts are the defaults a request can
// override with auto_boot_velocity, velocity_min and velocity_max query
// parameters.
func NewRouter(log *zap.SugaredLogger, store db.Store, opts model.SongOptions) *mux.Router {
	h := &songHandler{log: log, store: store, opts: opts}
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", h.handleConvert).Methods(http.MethodPost)
	router.HandleFunc("/songs", h.handleCreateSong).Methods(http.MethodPost)
	router.HandleFunc("/songs/{id}", h.handleGetSong).Methods(http.MethodGet)
	return router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func queryOptions(r *http.Request, opts model.SongOptions) (model.SongOptions, error) {
	q := r.URL.Query()
	if v := q.Get("auto_boot_velocity"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.Wrap(err, "auto_boot_velocity")
		}
		opts.AutoBootVelocity = b
	}
	for name, dst := range map[string]*uint8{"velocity_min": &opts.VelocityMin, "velocity_max": &opts.VelocityMax} {
		if v := q.Get(name); v != "" {
			n, err := strconv.ParseUint(v, 10, 8)
			if err != nil {
				return opts, errors.Wrap(err, name)
			}
			*dst = uint8(n)
		}
	}
	return opts, opts.Validate()
}

// convertRequest turns the request body into a conversion, writing the
// error response itself when that fails.
func (h *songHandler) convertRequest(w http.ResponseWriter, r *http.Request) (model.Conversion, bool) {
	opts, err := queryOptions(r, h.opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return model.Conversion{}, false
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return model.Conversion{}, false
	}

	s, err := song.FromBytes(data, opts)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, midi.ErrMalformed) || errors.Is(err, song.ErrTooLong) {
			status = http.StatusBadRequest
		}
		h.log.Infow("Could not convert upload", "error", err, "bytes", len(data))
		writeError(w, status, err)
		return model.Conversion{}, false
	}
	return s.Conversion(), true
}

func (h *songHandler) handleConvert(w http.ResponseWriter, r *http.Request) {
	c, ok := h.convertRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *songHandler) handleCreateSong(w http.ResponseWriter, r *http.Request) {
	c, ok := h.convertRequest(w, r)
	if !ok {
		return
	}
	id, err := h.store.Put(r.Context(), c)
	if err != nil {
		h.log.Errorw("Could not store conversion", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.log.Infow("Stored conversion", "id", id, "tracks", len(c.Tracks))
	writeJSON(w, http.StatusCreated, model.CreateResponse{ID: id})
}

func (h *songHandler) handleGetSong(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	c, err := h.store.Get(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		h.log.Errorw("Could not load conversion", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
