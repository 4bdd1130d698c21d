// Command marketctl is the admin console for the marketplace platform.
// It drives the client-side session lifecycle (restore, login, logout)
// and the admin settings screens against a running marketplace API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/marketplacepro/platform/internal/client/api"
	"github.com/marketplacepro/platform/internal/client/screens"
	"github.com/marketplacepro/platform/internal/client/session"
	"github.com/marketplacepro/platform/internal/client/store"
	"github.com/marketplacepro/platform/internal/client/view"
	"github.com/marketplacepro/platform/internal/core/domain"
	"github.com/marketplacepro/platform/pkg/logger"
)

const usage = `usage: marketctl [-api URL] [-state DIR] <command>

commands:
  login -email EMAIL -password PASSWORD   sign in and persist the credential
  logout                                  clear the persisted credential
  whoami                                  show the restored session and its view
  settings list                           list the admin settings categories
  settings get CATEGORY                   print one settings category
  settings set CATEGORY KEY=VALUE...      edit and save one settings category
`

func main() {
	apiURL := flag.String("api", envOr("MARKETPLACE_API_URL", "http://localhost:8080"), "marketplace API base URL")
	stateDir := flag.String("state", "", "credential state directory (defaults to the user config dir)")
	flag.Parse()

	log := logger.Init(logger.Options{Level: envOr("LOG_LEVEL", "warn"), Pretty: true, Service: "marketctl"})

	dir := *stateDir
	if dir == "" {
		var err error
		dir, err = store.DefaultDir()
		if err != nil {
			fatal("resolve state dir: %v", err)
		}
	}

	credStore := store.NewFileStore(dir)
	manager := session.NewManager(credStore, log)
	client := api.New(*apiURL)

	if err := manager.Restore(); err != nil {
		fatal("restore session: %v", err)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	var err error
	switch args[0] {
	case "login":
		err = runLogin(ctx, client, manager, args[1:])
	case "logout":
		err = manager.Logout()
	case "whoami":
		err = runWhoami(manager)
	case "settings":
		err = runSettings(ctx, client, manager, args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fatal("%v", err)
	}
}

func runLogin(ctx context.Context, client *api.Client, manager *session.Manager, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	result, err := client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	// Trust the server-asserted identity from the login response.
	if err := manager.Login(result.AccessToken, session.User{
		ID:   result.User.ID,
		Role: result.User.UserType,
	}); err != nil {
		return err
	}

	fmt.Printf("logged in as %s (%s)\n", result.User.Email, result.User.UserType)
	return nil
}

func runWhoami(manager *session.Manager) error {
	snap := manager.Snapshot()
	selected := view.Select(snap)
	if snap.State != session.StateAuthenticated {
		fmt.Printf("anonymous (view: %s)\n", selected)
		return nil
	}
	fmt.Printf("user %s role %s (view: %s)\n", snap.User.ID, snap.User.Role, selected)
	return nil
}

func runSettings(ctx context.Context, client *api.Client, manager *session.Manager, args []string) error {
	snap := manager.Snapshot()
	if view.Select(snap) != view.ViewAdminPanel {
		return fmt.Errorf("settings commands require an admin session (run: marketctl login)")
	}
	if len(args) == 0 {
		return fmt.Errorf("settings requires a subcommand: list, get, set")
	}

	panel := view.NewAdminPanel(domain.SettingsCategories())

	switch args[0] {
	case "list":
		for _, c := range domain.SettingsCategories() {
			fmt.Println(c)
		}
		return nil
	case "get":
		if len(args) != 2 {
			return fmt.Errorf("settings get requires a category")
		}
		return showSettings(ctx, client, panel, snap.Credential, args[1])
	case "set":
		if len(args) < 3 {
			return fmt.Errorf("settings set requires a category and KEY=VALUE pairs")
		}
		return saveSettings(ctx, client, panel, snap.Credential, args[1], args[2:])
	}
	return fmt.Errorf("unknown settings subcommand %q", args[0])
}

func showSettings(ctx context.Context, client *api.Client, panel *view.AdminPanel, credential, category string) error {
	if !panel.Open(category) {
		return fmt.Errorf("unknown settings category %q", category)
	}
	defer panel.Back()

	screen := screens.NewSettingsScreen(client, credential)
	if err := screen.Mount(ctx, category); err != nil {
		return fmt.Errorf("load %s settings: %s", category, screen.LastError())
	}

	buffer := screen.Buffer()
	keys := make([]string, 0, len(buffer))
	for k := range buffer {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s=%v\n", k, buffer[k])
	}
	return nil
}

func saveSettings(ctx context.Context, client *api.Client, panel *view.AdminPanel, credential, category string, pairs []string) error {
	if !panel.Open(category) {
		return fmt.Errorf("unknown settings category %q", category)
	}
	defer panel.Back()

	screen := screens.NewSettingsScreen(client, credential)
	if err := screen.Mount(ctx, category); err != nil {
		return fmt.Errorf("load %s settings: %s", category, screen.LastError())
	}

	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("expected KEY=VALUE, got %q", pair)
		}
		if err := screen.Edit(key, parseValue(raw)); err != nil {
			return err
		}
	}

	if err := screen.Save(ctx); err != nil {
		return fmt.Errorf("save %s settings: %s", category, screen.LastError())
	}
	fmt.Printf("saved %s settings\n", category)
	return nil
}

// parseValue keeps numeric and boolean fields typed so the server-side
// schema validation sees the right kinds.
func parseValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "marketctl: "+format+"\n", args...)
	os.Exit(1)
}
