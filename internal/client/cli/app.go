package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/projectboard/internal/client/client"
	"github.com/dmitrijs2005/projectboard/internal/client/config"
	"github.com/dmitrijs2005/projectboard/internal/client/credentials"
	"github.com/dmitrijs2005/projectboard/internal/client/models"
	"github.com/dmitrijs2005/projectboard/internal/client/services"
	"github.com/dmitrijs2005/projectboard/internal/client/session"
	"github.com/dmitrijs2005/projectboard/internal/client/tokens"
	"github.com/dmitrijs2005/projectboard/internal/logging"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// App is driven by a single goroutine: the REPL and the session observer
// it registers both run on it.
type App struct {
	session  *session.Session
	auth     services.AuthService
	projects services.ProjectService
	logger   logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// list is the last project list fetched; current is the open project.
	list    []models.Project
	current *services.ProjectView

	closers []func() error
}

// NewApp opens the token store and builds the session, the API client and
// the services on top of it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	store, err := credentials.OpenSQLite(ctx, c.StorePath, c.DeviceKeyPath)
	if err != nil {
		logger.Error(ctx, "failed to open the token store", "path", c.StorePath, "err", err)
		return nil, err
	}

	sess := session.New(store, logger)

	api, err := client.New(c.ServerBaseURL, sess, client.WithLogger(logger))
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	a := newApp(sess, services.NewAuthService(api, sess), services.NewProjectService(api, logger), logger)
	a.closers = append(a.closers, store.Close)
	return a, nil
}

func newApp(sess *session.Session, auth services.AuthService, projects services.ProjectService, logger logging.Logger) *App {
	a := &App{
		session:  sess,
		auth:     auth,
		projects: projects,
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	unsubscribe := sess.Subscribe(a.onSessionChange)
	a.closers = append(a.closers, func() error { unsubscribe(); return nil })
	return a
}

// onSessionChange drops everything tied to the signed-in user once the
// session is no longer authenticated.
func (a *App) onSessionChange(st session.State) {
	if !st.IsAuthenticated {
		a.list = nil
		a.current = nil
	}
}

// Run restores the session and runs the REPL until the user exits or input
// ends.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Loading...")
	if err := a.session.Initialize(ctx); err != nil {
		return err
	}
	a.warnIfExpired(ctx)

	fmt.Fprintln(a.out, "Welcome to projectboard (type 'help' for commands)")
	runREPL(ctx, a, a.reader, a.out)
	return nil
}

func (a *App) warnIfExpired(ctx context.Context) {
	token, ok := a.session.Token()
	if !ok {
		return
	}
	info, err := tokens.Inspect(token)
	if err != nil || !info.Expired(time.Now()) {
		return
	}
	a.logger.Warn(ctx, "restored token has expired, the server will likely reject it", "expired_at", info.ExpiresAt)
}

// Close releases the token store.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isAuthenticated() bool {
	return a.session.State().IsAuthenticated
}

func (a *App) inProject() bool {
	return a.current != nil
}

func (a *App) prompt() string {
	if a.current != nil {
		return "projectboard/" + a.current.Project.Name
	}
	return "projectboard"
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
