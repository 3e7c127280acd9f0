package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/studytech/studytech-client/internal/core/domain"
	"github.com/studytech/studytech-client/internal/core/ports"
)

func commands() map[string]command {
	return map[string]command{
		"login":       {name: "login", description: "Authenticate and persist a session", run: runLogin},
		"register":    {name: "register", description: "Create an account and log in", run: runRegister},
		"logout":      {name: "logout", description: "Clear the persisted session", run: runLogout},
		"whoami":      {name: "whoami", description: "Show the current session", run: runWhoami},
		"feed":        {name: "feed", description: "List publications", run: runFeed},
		"post":        {name: "post", description: "Show one publication in full", run: runPost},
		"post-create": {name: "post-create", description: "Publish a post (teacher only)", run: runPostCreate},
		"post-edit":   {name: "post-edit", description: "Edit a post (teacher only)", run: runPostEdit},
		"post-delete": {name: "post-delete", description: "Delete a post (teacher only)", run: runPostDelete},
		"profile":     {name: "profile", description: "Update your own name/email/password", run: runProfile},
		"users":       {name: "users", description: "List accounts (teacher only)", run: runUsers},
		"promote":     {name: "promote", description: "Make an account a teacher", run: runPromote},
		"demote":      {name: "demote", description: "Make an account a student", run: runDemote},
		"user-delete": {name: "user-delete", description: "Delete an account (teacher only)", run: runUserDelete},
	}
}

func runLogin(app *application, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := app.auth.Authenticate(app.ctx, *email, *password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return errors.New("incorrect credentials")
		}
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func runRegister(app *application, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	role := fs.String("role", "student", "account role: student or teacher")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := app.auth.Register(app.ctx, ports.RegisterInput{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     domain.ParseRole(*role),
	})
	if err != nil {
		return err
	}
	fmt.Printf("registered %s (%s)\n", user.Name, user.Role)
	return nil
}

func runLogout(app *application, args []string) error {
	if err := app.auth.Logout(app.ctx); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func runWhoami(app *application, args []string) error {
	user := app.auth.Current()
	if user == nil {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	return nil
}

func runFeed(app *application, args []string) error {
	posts, err := app.posts.Feed(app.ctx)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Println("no publications yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tSUMMARY")
	for _, p := range posts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Author, p.Summary())
	}
	return w.Flush()
}

func runPost(app *application, args []string) error {
	fs := flag.NewFlagSet("post", flag.ContinueOnError)
	id := fs.String("id", "", "post id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	post, err := app.posts.GetPost(app.ctx, *id)
	if err != nil {
		return err
	}
	fmt.Printf("%s\nby %s on %s\n\n%s\n", post.Title, post.Author, post.CreatedAt.Format("2006-01-02 15:04"), post.Description)
	return nil
}

func runPostCreate(app *application, args []string) error {
	fs := flag.NewFlagSet("post-create", flag.ContinueOnError)
	title := fs.String("title", "", "post title")
	description := fs.String("description", "", "post body")
	if err := fs.Parse(args); err != nil {
		return err
	}

	post, err := app.posts.CreatePost(app.ctx, ports.CreatePostInput{Title: *title, Description: *description})
	if err != nil {
		return err
	}
	fmt.Printf("published %s (%s)\n", post.Title, post.ID)
	return nil
}

func runPostEdit(app *application, args []string) error {
	fs := flag.NewFlagSet("post-edit", flag.ContinueOnError)
	id := fs.String("id", "", "post id")
	title := fs.String("title", "", "new title")
	description := fs.String("description", "", "new body")
	if err := fs.Parse(args); err != nil {
		return err
	}

	post, err := app.posts.UpdatePost(app.ctx, *id, ports.UpdatePostInput{Title: *title, Description: *description})
	if err != nil {
		return err
	}
	fmt.Printf("updated %s\n", post.ID)
	return nil
}

func runPostDelete(app *application, args []string) error {
	fs := flag.NewFlagSet("post-delete", flag.ContinueOnError)
	id := fs.String("id", "", "post id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := app.posts.DeletePost(app.ctx, *id); err != nil {
		return err
	}
	fmt.Println("deleted")
	return nil
}

func runProfile(app *application, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	name := fs.String("name", "", "new display name")
	email := fs.String("email", "", "new email")
	password := fs.String("password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := app.users.UpdateProfile(app.ctx, ports.UpdateProfileInput{
		Name:     *name,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}
	fmt.Printf("profile updated: %s <%s>\n", user.Name, user.Email)
	return nil
}

func runUsers(app *application, args []string) error {
	users, err := app.users.ListUsers(app.ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
	}
	return w.Flush()
}

func runPromote(app *application, args []string) error {
	return changeRole(app, args, "promote", domain.RoleTeacher)
}

func runDemote(app *application, args []string) error {
	return changeRole(app, args, "demote", domain.RoleStudent)
}

func changeRole(app *application, args []string, verb string, role domain.Role) error {
	fs := flag.NewFlagSet(verb, flag.ContinueOnError)
	id := fs.String("id", "", "user id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := app.users.ChangeRole(app.ctx, *id, role)
	if err != nil {
		return err
	}
	fmt.Printf("%s is now a %s\n", user.Name, user.Role)
	return nil
}

func runUserDelete(app *application, args []string) error {
	fs := flag.NewFlagSet("user-delete", flag.ContinueOnError)
	id := fs.String("id", "", "user id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := app.users.DeleteUser(app.ctx, *id); err != nil {
		return err
	}
	fmt.Println("deleted")
	return nil
}
