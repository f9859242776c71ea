package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/akyairhashvil/sprout/internal/config"
	"github.com/akyairhashvil/sprout/internal/database"
	"github.com/akyairhashvil/sprout/internal/engine"
	"github.com/akyairhashvil/sprout/internal/tui"
	"github.com/akyairhashvil/sprout/internal/util"
)

type options struct {
	dbPath  string
	user    string
	summary bool
	version bool
}

func main() {
	opts := options{}
	flag.StringVar(&opts.dbPath, "db", defaultDBPath(), "SQLite path (env "+config.DBPathEnv+")")
	flag.StringVar(&opts.user, "user", os.Getenv(config.UserEnv), "gardener name (env "+config.UserEnv+")")
	flag.BoolVar(&opts.summary, "summary", false, "print the garden and exit")
	flag.BoolVar(&opts.version, "version", false, "print the version and exit")
	flag.Parse()

	if opts.version {
		fmt.Println(config.AppName, tui.VersionLabel())
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, stdout *os.File) error {
	if err := os.MkdirAll(filepath.Dir(opts.dbPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	db, err := database.Open(ctx, opts.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.SeedCatalog(ctx); err != nil {
		return err
	}

	if opts.summary || !term.IsTerminal(int(stdout.Fd())) {
		return printSummary(ctx, stdout, db, opts.user)
	}

	logFile, err := util.LogToFile(util.DataDir(config.AppName), config.AppName+".log")
	if err != nil {
		return err
	}
	defer logFile.Close()

	p := tea.NewProgram(tui.NewMainModel(ctx, db, opts.user), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func defaultDBPath() string {
	if path := strings.TrimSpace(os.Getenv(config.DBPathEnv)); path != "" {
		return path
	}
	return filepath.Join(util.DataDir(config.AppName), config.DBFileName)
}

// resolveUser prefers the explicit name and falls back to the stored gardener.
func resolveUser(ctx context.Context, db *database.Database, user string) (string, error) {
	if user = strings.TrimSpace(user); user != "" {
		return user, nil
	}
	stored, _, err := db.GetSetting(ctx, config.SettingUserKey)
	return strings.TrimSpace(stored), err
}

// printSummary writes one line per plant without touching statuses or reminders.
func printSummary(ctx context.Context, w io.Writer, db *database.Database, user string) error {
	user, err := resolveUser(ctx, db, user)
	if err != nil {
		return err
	}
	if user == "" {
		return fmt.Errorf("no gardener set; pass -user or %s", config.UserEnv)
	}
	summaries, err := engine.New(db, db, nil).Summaries(ctx, user)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		_, err := fmt.Fprintf(w, "%s's garden is empty.\n", user)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tVEGGIE\tSTATUS\tPROGRESS\tSTATE")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.0f%%\t%s\n",
			s.Plant.ID, s.Plant.Veggie.Name, s.Plant.Status, s.Timeline.Progress()*100,
			tui.FormatPlantState(s.Plant, s.Timeline))
	}
	return tw.Flush()
}
