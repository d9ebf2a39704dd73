package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const commandTimeout = 30 * time.Second

type LoginCmd struct {
	Username string `arg:"" help:"Username or email."`
	Password string `help:"Password. Prompted when omitted." short:"p"`
}

func (cmd *LoginCmd) Run(appCtx *Context) error {
	password, err := resolvePassword(cmd.Password)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	token, err := appCtx.Client.Login(ctx, cmd.Username, password)
	if err != nil {
		return err
	}
	// The profile fetch needs the fresh token attached, so save it first.
	if err := appCtx.Session.Save(token, userPlaceholder(cmd.Username)); err != nil {
		return err
	}
	user, err := appCtx.Client.Profile(ctx)
	if err != nil {
		appCtx.Session.Clear()
		return err
	}
	if err := appCtx.Session.Save(token, user); err != nil {
		return err
	}
	fmt.Fprintf(appCtx.Out, "Logged in as %s\n", user.Username)
	return nil
}

type RegisterCmd struct {
	Username string `arg:"" help:"Username."`
	Email    string `arg:"" help:"Email address."`
	Password string `help:"Password. Prompted when omitted." short:"p"`
}

func (cmd *RegisterCmd) Run(appCtx *Context) error {
	password, err := resolvePassword(cmd.Password)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	user, err := appCtx.Client.Register(ctx, cmd.Username, cmd.Email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(appCtx.Out, "Registered %s, now run 'habitctl login %s'\n", user.Username, user.Username)
	return nil
}

type LogoutCmd struct{}

func (cmd *LogoutCmd) Run(appCtx *Context) error {
	if err := appCtx.Session.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(appCtx.Out, "Logged out")
	return nil
}

type WhoamiCmd struct{}

func (cmd *WhoamiCmd) Run(appCtx *Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	if err := appCtx.requireSession(ctx); err != nil {
		return err
	}
	user := appCtx.Session.User()
	fmt.Fprintf(appCtx.Out, "%s <%s>\n", user.Username, user.Email)
	return nil
}

func resolvePassword(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", errors.New("reading password: " + err.Error())
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("empty password")
	}
	return password, nil
}
