package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/habithero/habitctl/internal/client"
	errorvalues "github.com/habithero/habitctl/internal/error_values"
	"github.com/habithero/habitctl/internal/session"
	"github.com/habithero/habitctl/internal/store"
	"github.com/habithero/habitctl/pkg/config"
	"github.com/habithero/habitctl/pkg/entity"
)

type Context struct {
	Cfg     *config.Config
	Session *session.Session
	Client  *client.Client
	Store   *store.Store
	Out     io.Writer
}

// requireSession restores the stored session and fails with a hint when no
// usable session exists.
func (c *Context) requireSession(ctx context.Context) error {
	_, err := c.Session.Restore(ctx, c.Client)
	if errors.Is(err, errorvalues.ErrNoSession) {
		return errors.New("not logged in, run 'habitctl login' first")
	}
	return err
}

// loadStore restores the session and refreshes the store in one step; every
// data command starts here.
func (c *Context) loadStore(ctx context.Context) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}
	return c.Store.Load(ctx)
}

// userPlaceholder is saved alongside a fresh token until the profile fetch
// fills in the real record.
func userPlaceholder(username string) *entity.User {
	return &entity.User{Username: username}
}

func checkMark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func printHabitRow(w io.Writer, h entity.HabitWithCheckins) {
	fmt.Fprintf(w, "%s %4d  %-30s %-8s %-9s streak %d\n",
		checkMark(h.CompletedToday), h.ID, h.Name, h.Category, h.Frequency, h.Streak)
}
