package commands

import (
	"context"
	"fmt"

	"github.com/mitchellh/go-homedir"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/log"
	"tableflip.dev/agenda/pkg/store"
)

// session opens the store once and hands the same service to every
// command of an invocation, or to every line typed into the shell.
type session struct {
	settings *store.Settings
	svc      *app.Service
	// path overrides the configured store location.
	path string
	// interactive keeps the store open between commands.
	interactive bool
}

func (s *session) service(ctx context.Context) (*app.Service, error) {
	if s.svc != nil {
		return s.svc, nil
	}
	settings, err := s.config()
	if err != nil {
		return nil, err
	}

	policy := app.DefaultPolicy()
	if policy.Add, err = app.ParseOverduePolicy(settings.OverdueAdd); err != nil {
		return nil, fmt.Errorf("overdue.add: %w", err)
	}
	if policy.Edit, err = app.ParseOverduePolicy(settings.OverdueEdit); err != nil {
		return nil, fmt.Errorf("overdue.edit: %w", err)
	}

	p, err := store.Load(settings)
	if err != nil {
		return nil, err
	}
	svc := app.New(p, policy, settings.HistoryLimit)
	if err := svc.Open(ctx); err != nil {
		_ = p.Close()
		return nil, err
	}
	s.svc = svc
	return svc, nil
}

func (s *session) config() (*store.Settings, error) {
	if s.settings != nil {
		return s.settings, nil
	}
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log.Init(log.Config{Level: settings.LogLevel, Format: settings.LogFormat})
	if s.path != "" {
		if settings.Path, err = homedir.Expand(s.path); err != nil {
			return nil, fmt.Errorf("path: %w", err)
		}
	}
	s.settings = settings
	return settings, nil
}

// open closes the current store and switches the session to the one at
// path, using the configured backend.
func (s *session) open(ctx context.Context, path string) (*app.Service, error) {
	settings, err := s.config()
	if err != nil {
		return nil, err
	}
	if path, err = homedir.Expand(path); err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}
	if err := s.close(); err != nil {
		return nil, err
	}
	settings.Path = path
	s.path = path
	return s.service(ctx)
}

// release closes the store unless the shell still needs it.
func (s *session) release() error {
	if s.interactive {
		return nil
	}
	return s.close()
}

func (s *session) close() error {
	if s.svc == nil {
		return nil
	}
	svc := s.svc
	s.svc = nil
	if svc.Persistence == nil {
		return nil
	}
	return svc.Persistence.Close()
}
