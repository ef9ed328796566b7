package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mmynk/roomiesync/internal/app"
	"github.com/mmynk/roomiesync/internal/assistant"
	"github.com/mmynk/roomiesync/internal/config"
	"github.com/mmynk/roomiesync/internal/models"
	"github.com/mmynk/roomiesync/internal/storage"
	"github.com/mmynk/roomiesync/internal/storage/kv"
	"github.com/mmynk/roomiesync/internal/storage/remote"
	"github.com/mmynk/roomiesync/pkg/logging"
)

// env is everything a command needs: the loaded household and a controller to
// change it.
type env struct {
	cfg   config.Client
	log   *slog.Logger
	local *kv.Store
	store storage.Store
	ctrl  *app.Controller
	state app.State
	out   io.Writer
}

func openEnv(ctx context.Context, out io.Writer) (*env, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.LogLevel)
	log := slog.Default()

	local, err := kv.Open(cfg.DataDir, log)
	if err != nil {
		return nil, err
	}

	var store storage.Store = local
	if cfg.Backend == config.BackendRemote {
		client := remote.New(cfg.APIURL, cfg.RequestTimeout, log)
		if session, err := local.CurrentSession(ctx); err == nil {
			client.SetToken(session.Token)
		}
		store = client
		log.Debug("Using remote backend", "url", cfg.APIURL)
	}

	ai, err := assistant.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	if err != nil {
		log.Warn("Assistant unavailable", "error", err)
		ai = assistant.Disabled{}
	}

	ctrl := app.NewController(store, local, ai, log)
	return &env{
		cfg:   cfg,
		log:   log,
		local: local,
		store: store,
		ctrl:  ctrl,
		state: ctrl.Load(ctx),
		out:   out,
	}, nil
}

func (e *env) close() {
	if e.store != storage.Store(e.local) {
		_ = e.store.Close()
	}
	_ = e.local.Close()
}

// run opens the environment around fn.
func run(fn func(ctx context.Context, e *env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer e.close()
		return fn(cmd.Context(), e, args)
	}
}

func (e *env) printf(format string, args ...any) {
	fmt.Fprintf(e.out, format, args...)
}

// resolveRoommate finds a roommate by ID, by full name or by a unique
// case-insensitive name prefix.
func (e *env) resolveRoommate(ref string) (models.Roommate, error) {
	if r, ok := e.state.Roommate(ref); ok {
		return r, nil
	}
	ref = strings.ToLower(strings.TrimSpace(ref))
	if r, ok := lo.Find(e.state.Roommates, func(r models.Roommate) bool {
		return strings.ToLower(r.Name) == ref
	}); ok {
		return r, nil
	}
	matches := lo.Filter(e.state.Roommates, func(r models.Roommate, _ int) bool {
		return ref != "" && strings.HasPrefix(strings.ToLower(r.Name), ref)
	})
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Roommate{}, fmt.Errorf("%w: %s", app.ErrUnknownRoommate, ref)
	default:
		names := lo.Map(matches, func(r models.Roommate, _ int) string { return r.Name })
		return models.Roommate{}, fmt.Errorf("%q matches %s", ref, strings.Join(names, ", "))
	}
}

func (e *env) resolveRoommates(refs []string) ([]string, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		r, err := e.resolveRoommate(ref)
		if err != nil {
			return nil, err
		}
		ids = append(ids, r.ID)
	}
	return ids, nil
}

// currentUser returns the logged-in roommate or app.ErrNotLoggedIn.
func (e *env) currentUser() (models.Roommate, error) {
	if e.state.CurrentUser == nil {
		return models.Roommate{}, fmt.Errorf("%w: run 'roomie login <name>' first", app.ErrNotLoggedIn)
	}
	return *e.state.CurrentUser, nil
}
