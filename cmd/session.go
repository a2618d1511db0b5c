package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli"
	"github.com/warpdl/warpcookie/internal/config"
	"github.com/warpdl/warpcookie/pkg/cookiejar"
	"github.com/warpdl/warpcookie/pkg/credman"
	"github.com/warpdl/warpcookie/pkg/credman/keyring"
	"github.com/warpdl/warpcookie/pkg/logger"
)

// session carries what every command needs to reach the jar.
type session struct {
	path string
	log  logger.Logger
	opts []cookiejar.Option
}

var newKeyProvider = func(configDir string, log logger.Logger) keyring.Provider {
	return keyring.NewFallbackProvider(keyring.NewKeyring(), keyring.NewFileKeyStore(configDir), log)
}

// newSession resolves the jar path, logger and store from the global flags.
// The returned action names the step that failed.
func newSession(ctx *cli.Context) (s *session, action string, err error) {
	log, err := newLogger(ctx)
	if err != nil {
		return nil, "log-file", err
	}
	defer func() {
		if err != nil {
			log.Close()
		}
	}()

	path, err := config.JarPath(ctx.GlobalString("jar"))
	if err != nil {
		return nil, "config-dir", err
	}
	var store cookiejar.Store = cookiejar.OSStore()
	if ctx.GlobalBool("sealed") {
		key, err := sealingKey(log)
		if err != nil {
			return nil, "cookie-key", err
		}
		store, err = credman.NewSealedStore(store, key)
		if err != nil {
			return nil, "credman", err
		}
	}
	return &session{
		path: path,
		log:  log,
		opts: []cookiejar.Option{cookiejar.WithStore(store), cookiejar.WithLogger(log)},
	}, "", nil
}

// sealingKey returns the key from config.KeyEnv, else the keyring key,
// creating it on first use.
func sealingKey(log logger.Logger) ([]byte, error) {
	if keyHex := os.Getenv(config.KeyEnv); keyHex != "" {
		return keyring.DecodeKey(keyHex)
	}
	dir, err := config.ConfigDir()
	if err != nil {
		return nil, err
	}
	return keyring.LoadOrCreate(newKeyProvider(dir, log))
}

func newLogger(ctx *cli.Context) (logger.Logger, error) {
	console := logger.NewConsoleLogger(os.Stderr, ctx.GlobalBool("verbose"))
	logFile := ctx.GlobalString("log-file")
	if logFile == "" {
		return console, nil
	}
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return logger.NewMultiLogger(console, logger.NewFileLogger(f)), nil
}

func (s *session) load() (*cookiejar.Jar, error) {
	return cookiejar.Load(s.path, s.opts...)
}

// loadOrNew loads the jar, starting an empty one when the file does not exist yet.
func (s *session) loadOrNew() (*cookiejar.Jar, error) {
	j, err := s.load()
	if errors.Is(err, cookiejar.ErrFileNotFound) {
		s.log.Info("creating cookie jar %s", s.path)
		return cookiejar.New(s.opts...), nil
	}
	return j, err
}

func (s *session) save(j *cookiejar.Jar) error {
	if err := j.Save(s.path); err != nil {
		return err
	}
	s.log.Info("saved %d cookies to %s", j.Len(), s.path)
	return nil
}

func (s *session) close() {
	_ = s.log.Close()
}
