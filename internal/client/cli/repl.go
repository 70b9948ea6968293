package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isAuthenticated() bool
	inProject() bool
	prompt() string

	Login(ctx context.Context) error
	SignUp(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error

	ListProjects(ctx context.Context) error
	CreateProject(ctx context.Context) error
	JoinProject(ctx context.Context, code string) error
	OpenProject(ctx context.Context, ref string) error
	Back(ctx context.Context) error

	ShowPosts(ctx context.Context) error
	RefreshPosts(ctx context.Context) error
	ShowPost(ctx context.Context, ref string) error
	NewPost(ctx context.Context) error
	Invite(ctx context.Context, role string) error
}

const (
	helpSignedOut = "Available commands: login, signup, exit"
	helpSignedIn  = "Available commands: projects, create-project, join <code>, open <n|id>, status, logout, exit"
	helpProject   = "Project commands: posts, refresh, post <n>, new-post (admin), invite [admin|guest] (admin), back"
)

// runREPL reads commands from reader until "exit"/"quit" or end of input.
//
// Which commands exist depends only on a.isAuthenticated(). Handler errors
// are printed as one user-facing line and the loop goes on.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "%s> ", a.prompt())

		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			fmt.Fprintln(out)
			return
		}

		parts := strings.Fields(line)
		if len(parts) > 0 {
			cmd, args := parts[0], parts[1:]
			if cmd == "exit" || cmd == "quit" {
				fmt.Fprintln(out, "Bye!")
				return
			}

			var known bool
			if a.isAuthenticated() {
				known = dispatchSignedIn(ctx, a, cmd, args, out)
			} else {
				known = dispatchSignedOut(ctx, a, cmd, out)
			}
			if !known {
				fmt.Fprintln(out, "Unknown command:", cmd)
			}
		}

		if err != nil {
			return
		}
	}
}

func dispatchSignedOut(ctx context.Context, a execIface, cmd string, out io.Writer) bool {
	switch cmd {
	case "help":
		fmt.Fprintln(out, helpSignedOut)
	case "login":
		report(out, a.Login(ctx), "Login failed. Please try again.")
	case "signup", "register":
		report(out, a.SignUp(ctx), "Sign-up failed. Please try again.")
	default:
		return false
	}
	return true
}

func dispatchSignedIn(ctx context.Context, a execIface, cmd string, args []string, out io.Writer) bool {
	switch cmd {
	case "help":
		fmt.Fprintln(out, helpSignedIn)
		if a.inProject() {
			fmt.Fprintln(out, helpProject)
		}
	case "projects", "l":
		report(out, a.ListProjects(ctx), "Could not load projects.")
	case "create-project":
		report(out, a.CreateProject(ctx), "Could not create the project.")
	case "join":
		if len(args) == 0 {
			fmt.Fprintln(out, "Usage: join <code>")
			break
		}
		report(out, a.JoinProject(ctx, args[0]), "Could not join the project.")
	case "open":
		if len(args) == 0 {
			fmt.Fprintln(out, "Usage: open <n|id>")
			break
		}
		report(out, a.OpenProject(ctx, args[0]), "Could not open the project.")
	case "status":
		report(out, a.Status(ctx), "Could not read the session.")
	case "logout":
		report(out, a.Logout(ctx), "Logout failed. Please try again.")
	case "back":
		report(out, a.Back(ctx), "")
	case "posts":
		report(out, a.ShowPosts(ctx), "")
	case "refresh":
		report(out, a.RefreshPosts(ctx), "Could not refresh posts.")
	case "post":
		if len(args) == 0 {
			fmt.Fprintln(out, "Usage: post <n>")
			break
		}
		report(out, a.ShowPost(ctx, args[0]), "")
	case "new-post":
		report(out, a.NewPost(ctx), "Could not create the post.")
	case "invite":
		role := ""
		if len(args) > 0 {
			role = args[0]
		}
		report(out, a.Invite(ctx, role), "Could not create the invitation.")
	default:
		return false
	}
	return true
}

func report(out io.Writer, err error, fallback string) {
	if err == nil {
		return
	}
	if fallback == "" {
		fallback = "Something went wrong."
	}
	fmt.Fprintln(out, describeError(err, fallback))
}
