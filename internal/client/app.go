package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/filevault/client-go/internal/logger"
	"github.com/filevault/client-go/internal/service"
)

// App is the terminal front end of the vault client. It runs an
// authentication flow followed by a command loop; every command maps onto a
// single service call and prints that call's message or error.
type App struct {
	auth   service.ClientAuthService
	vault  service.ClientVaultService
	logger *logger.Logger

	in  *bufio.Reader
	out io.Writer

	// readPassword прячет ввод, когда stdin является терминалом.
	readPassword func() (string, error)

	// username of the authenticated user, empty until login succeeds.
	username string
}

func NewApp(services *service.ClientServices, log *logger.Logger) *App {
	a := &App{
		auth:   services.AuthService,
		vault:  services.VaultService,
		logger: log,
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.readPassword = a.readPasswordTerm

	return a
}

// Run implements [Client]. It loops on the auth flow and the command loop
// until the user quits; "logout" drops back to the auth flow.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		quit, err := a.authFlow(ctx)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		logout, err := a.commandLoop(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.auth.Logout()
		a.username = ""
	}
}

func (a *App) authFlow(ctx context.Context) (quit bool, err error) {
	for {
		fmt.Fprintln(a.out, "Commands: login, register, quit")
		line, err := a.readLine("> ")
		if err != nil {
			return false, err
		}

		switch line {
		case "login":
			if a.login(ctx) {
				return false, nil
			}
		case "register":
			a.register(ctx)
		case "quit", "exit":
			return true, nil
		case "":
		default:
			fmt.Fprintf(a.out, "Unknown command: %s\n", line)
		}
	}
}

func (a *App) login(ctx context.Context) (ok bool) {
	email, err := a.readLine("Email: ")
	if err != nil {
		return false
	}
	fmt.Fprint(a.out, "Password: ")
	password, err := a.readPassword()
	if err != nil {
		fmt.Fprintln(a.out, "Could not read password.")
		return false
	}

	msg, err := a.auth.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return false
	}

	a.username = strings.ToLower(email)
	fmt.Fprintln(a.out, msg)

	return true
}

func (a *App) register(ctx context.Context) {
	name, err := a.readLine("Name: ")
	if err != nil {
		return
	}
	email, err := a.readLine("Email: ")
	if err != nil {
		return
	}
	fmt.Fprint(a.out, "Password: ")
	password, err := a.readPassword()
	if err != nil {
		fmt.Fprintln(a.out, "Could not read password.")
		return
	}

	msg, err := a.auth.Register(ctx, name, email, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintln(a.out, msg)
}

func (a *App) commandLoop(ctx context.Context) (logout bool, err error) {
	a.printHelp()

	for {
		line, err := a.readLine(a.username + "> ")
		if err != nil {
			if err == io.EOF {
				return false, nil
			}
			return false, err
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "upload":
			a.upload(ctx, arg)
		case "download":
			a.download(ctx, arg)
		case "list", "ls":
			a.list(ctx)
		case "remove", "rm":
			a.remove(ctx, arg)
		case "help":
			a.printHelp()
		case "logout":
			return true, nil
		case "quit", "exit":
			return false, nil
		case "":
		default:
			fmt.Fprintf(a.out, "Unknown command: %s\n", cmd)
		}
	}
}

func (a *App) upload(ctx context.Context, path string) {
	var content []byte
	if path != "" {
		var err error
		content, err = os.ReadFile(path)
		if err != nil {
			a.logger.Error().Err(err).Str("path", path).Msg("read file for upload")
			fmt.Fprintf(a.out, "Could not read %s.\n", path)
			return
		}
	}

	msg, err := a.vault.Upload(ctx, content, filepath.Base(path), a.username)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintln(a.out, msg)
}

func (a *App) download(ctx context.Context, filename string) {
	path, err := a.vault.Download(ctx, a.username, filename)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintf(a.out, "Saved to %s\n", path)
}

func (a *App) list(ctx context.Context) {
	names, err := a.vault.List(ctx, a.username)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	if len(names) == 0 {
		fmt.Fprintln(a.out, "No files found.")
		return
	}
	for _, name := range names {
		fmt.Fprintln(a.out, name)
	}
}

func (a *App) remove(ctx context.Context, filename string) {
	if err := a.vault.Remove(ctx, a.username, filename); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintf(a.out, "%s removed.\n", filename)
	a.list(ctx)
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, "Commands: upload <path>, download <filename>, list, remove <filename>, logout, quit")
}

func (a *App) readLine(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// readPasswordTerm reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (pipes, tests).
func (a *App) readPasswordTerm() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := a.in.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}

	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}
