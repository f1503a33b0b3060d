package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ellisvega/mlmuse/internal/config"
	"github.com/ellisvega/mlmuse/internal/export"
	"github.com/ellisvega/mlmuse/internal/headless"
	"github.com/ellisvega/mlmuse/internal/health"
	"github.com/ellisvega/mlmuse/internal/logging"
	"github.com/ellisvega/mlmuse/internal/mentor"
	"github.com/ellisvega/mlmuse/internal/provider"
	"github.com/ellisvega/mlmuse/internal/reader"
	"github.com/ellisvega/mlmuse/internal/saved"
	"github.com/ellisvega/mlmuse/internal/scaffold"
	"github.com/ellisvega/mlmuse/internal/tui"
	"github.com/ellisvega/mlmuse/pkg/version"
)

func main() {
	providerFlag := flag.String("provider", "", "Provider name (google, ollama, ...)")
	modelFlag := flag.String("model", "", "Model name")
	difficultyFlag := flag.String("difficulty", "", "Difficulty for ideas (beginner, intermediate, advanced)")
	jsonFlag := flag.Bool("json", false, "Print ideas as JSON instead of a table")
	saveFlag := flag.Bool("save", false, "Save generated ideas to the collection")
	filterFlag := flag.String("filter", "", "Filter expression for 'saved list' (e.g. 'difficulty == \"advanced\"')")
	forceFlag := flag.Bool("force", false, "Overwrite existing files when scaffolding")
	versionFlag := flag.Bool("version", false, "Print version")
	helpFlag := flag.Bool("help", false, "Show help")
	flag.BoolVar(helpFlag, "h", false, "Show help")

	flag.Usage = showHelp
	flag.Parse()

	if *helpFlag {
		showHelp()
		os.Exit(0)
	}
	if *versionFlag {
		fmt.Printf("mlmuse %s (%s)\n", version.Version, version.Commit)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("config error: %s", err)
	}

	log, err := logging.Open(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		fatal("cannot open log file: %s", err)
	}
	defer log.Sync()

	provName := *providerFlag
	if provName == "" {
		provName = cfg.DefaultProvider
	}
	modelName := *modelFlag
	if modelName == "" {
		modelName = cfg.DefaultModel
	}

	store := saved.NewStore(saved.NewFileAdapter(cfg.SavedPath(saved.StorageFile)), log)

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "ideas":
			if len(args) < 2 {
				fatal("usage: mlmuse ideas <topic>")
			}
			topic := strings.Join(args[1:], " ")
			cmdIdeas(cfg, store, log, provName, modelName, topic, *difficultyFlag, *jsonFlag, *saveFlag)
			return
		case "ask":
			if len(args) < 3 {
				fatal("usage: mlmuse ask <saved-id> <question>")
			}
			cmdAsk(cfg, store, log, provName, modelName, args[1], strings.Join(args[2:], " "))
			return
		case "saved":
			cmdSaved(store, args[1:], *filterFlag)
			return
		case "scaffold":
			if len(args) < 2 {
				fatal("usage: mlmuse scaffold <saved-id> [dir]")
			}
			dir := "."
			if len(args) > 2 {
				dir = args[2]
			}
			cmdScaffold(cfg, store, log, provName, modelName, args[1], dir, *forceFlag)
			return
		case "illustrate":
			if len(args) < 2 {
				fatal("usage: mlmuse illustrate <saved-id> [out.png]")
			}
			out := "cover.png"
			if len(args) > 2 {
				out = args[2]
			}
			cmdIllustrate(cfg, store, log, provName, modelName, args[1], out)
			return
		case "read":
			if len(args) < 2 {
				fatal("usage: mlmuse read <url>")
			}
			cmdRead(args[1])
			return
		case "doctor":
			cmdDoctor(cfg)
			return
		case "models":
			cmdModels(cfg, provName, modelName)
			return
		case "version":
			fmt.Printf("mlmuse %s (%s)\n", version.Version, version.Commit)
			return
		case "help":
			showHelp()
			return
		default:
			fatal("unknown command %q (run 'mlmuse help')", args[0])
		}
	}

	launchTUI(cfg, store, log, provName, modelName)
}

// makeProvider builds the raw backend for one provider entry.
func makeProvider(cfg *config.Config, name, modelName string) (provider.Provider, error) {
	pcfg, ok := cfg.ProviderFor(name)
	if !ok {
		return nil, fmt.Errorf("unknown provider %q — configure it in %s/config.yaml", name, config.ConfigDir())
	}

	model := modelName
	if model == "" {
		model = pcfg.Model
	}

	switch pcfg.Type {
	case "openai":
		return provider.NewOpenAI(name, pcfg.BaseURL, pcfg.APIKey, model), nil
	case "anthropic":
		if pcfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic requires api_key (set ANTHROPIC_API_KEY)")
		}
		return provider.NewAnthropic(pcfg.BaseURL, pcfg.APIKey, model), nil
	case "google":
		if pcfg.APIKey == "" {
			return nil, fmt.Errorf("google requires api_key (set GEMINI_API_KEY)")
		}
		return provider.NewGoogle(pcfg.BaseURL, pcfg.APIKey, model), nil
	default:
		return nil, fmt.Errorf("unknown provider type %q", pcfg.Type)
	}
}

// buildMentor wires the text backend (primary model with one fallback), the
// optional image backend, and the student profile into a Mentor.
func buildMentor(cfg *config.Config, log *zap.Logger, provName, modelName string) (*mentor.Mentor, error) {
	primary, err := makeProvider(cfg, provName, modelName)
	if err != nil {
		return nil, err
	}

	text := primary
	if cfg.FallbackModel != "" && cfg.FallbackModel != modelName {
		secondary, err := makeProvider(cfg, provName, cfg.FallbackModel)
		if err == nil {
			text = provider.WithFallback(primary, secondary, log)
		}
	}

	opts := []mentor.Option{
		mentor.WithLogger(log),
		mentor.WithIdeaCount(cfg.IdeasPerRequest),
		mentor.WithChatBudget(cfg.MaxChatTokens),
	}

	pcfg, _ := cfg.ProviderFor(provName)
	if pcfg.Type == "google" && cfg.ImageModel != "" {
		opts = append(opts, mentor.WithImageProvider(provider.NewGoogle(pcfg.BaseURL, pcfg.APIKey, cfg.ImageModel)))
	}

	profile, err := mentor.LoadProfile(cfg.ProfilePath())
	if err != nil {
		log.Warn("ignoring unreadable profile", zap.Error(err))
	} else if profile != nil {
		opts = append(opts, mentor.WithProfile(profile))
	}

	return mentor.New(text, opts...), nil
}

func launchTUI(cfg *config.Config, store *saved.Store, log *zap.Logger, provName, modelName string) {
	mtr, err := buildMentor(cfg, log, provName, modelName)
	if err != nil {
		fatal("%s", err)
	}

	model := tui.NewModel(mtr, store, cfg.SessionsDir(), provName, modelName, log)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatal("%s", err)
	}
}

func cmdIdeas(cfg *config.Config, store *saved.Store, log *zap.Logger, provName, modelName, topic, difficulty string, asJSON, save bool) {
	if difficulty == "" {
		difficulty = cfg.DefaultDifficulty
	}
	diff, err := mentor.ParseDifficulty(difficulty)
	if err != nil {
		fatal("%s", err)
	}

	mtr, err := buildMentor(cfg, log, provName, modelName)
	if err != nil {
		fatal("%s", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	r := &headless.Runner{Mentor: mtr, Store: store, Out: os.Stdout}
	if err := r.Ideas(ctx, topic, diff, asJSON, save); err != nil {
		fatal("%s", err)
	}
}

func cmdAsk(cfg *config.Config, store *saved.Store, log *zap.Logger, provName, modelName, id, question string) {
	mtr, err := buildMentor(cfg, log, provName, modelName)
	if err != nil {
		fatal("%s", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	r := &headless.Runner{Mentor: mtr, Store: store, Out: os.Stdout}
	if err := r.Ask(ctx, id, question); err != nil {
		fatal("%s", err)
	}
}

func cmdSaved(store *saved.Store, args []string, filter string) {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		items := store.List()
		if filter != "" {
			var err error
			items, err = saved.Filter(items, filter)
			if err != nil {
				fatal("%s", err)
			}
		}
		if len(items) == 0 {
			fmt.Println(tui.HelpStyle.Render("  Nothing saved yet"))
			return
		}
		for _, it := range items {
			fmt.Printf("  %s  %s  %s\n",
				tui.SubtitleStyle.Render(it.ID),
				tui.TitleStyle.Render(it.Title),
				tui.DifficultyStyle.Render(it.Difficulty),
			)
		}
	case "rm":
		if len(args) < 2 {
			fatal("usage: mlmuse saved rm <id>")
		}
		store.Remove(args[1])
		fmt.Println(tui.SuccessStyle.Render("  ✓ Removed " + args[1]))
	case "export":
		path := "mlmuse-saved.md"
		if len(args) > 1 {
			path = args[1]
		}
		items := store.List()
		var err error
		if strings.HasSuffix(path, ".xlsx") {
			err = export.WriteWorkbook(items, path)
		} else {
			err = export.WriteMarkdown(items, path)
		}
		if err != nil {
			fatal("export failed: %s", err)
		}
		fmt.Println(tui.SuccessStyle.Render("  ✓ Exported to " + path))
	default:
		fatal("unknown saved command %q (list, rm, export)", sub)
	}
}

func cmdScaffold(cfg *config.Config, store *saved.Store, log *zap.Logger, provName, modelName, id, dir string, force bool) {
	var item saved.Item
	found := false
	for _, it := range store.List() {
		if it.ID == id {
			item, found = it, true
			break
		}
	}
	if !found {
		fatal("no saved proposal with id %q (run 'mlmuse saved')", id)
	}

	mtr, err := buildMentor(cfg, log, provName, modelName)
	if err != nil {
		fatal("%s", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("  %s Generating starter files for %s...\n", tui.SpinnerStyle.Render("●"), item.Title)
	plan, err := mtr.ScaffoldPlan(ctx, item)
	if err != nil {
		fatal("%s", err)
	}

	res, err := scaffold.Apply(plan, dir, force)
	if err != nil {
		fatal("%s", err)
	}
	for _, p := range res.Written {
		fmt.Printf("  %s %s\n", tui.SuccessStyle.Render("✓"), filepath.Join(dir, p))
	}
	for _, s := range res.Skipped {
		fmt.Printf("  %s %s exists, skipped\n", tui.ErrorStyle.Render("-"), filepath.Join(dir, s.Path))
		if s.Diff != "" {
			fmt.Println(tui.SubtitleStyle.Render(s.Diff))
		}
	}
	if len(res.Skipped) > 0 && !force {
		fmt.Println(tui.HelpStyle.Render("  Re-run with -force to overwrite"))
	}
}

func cmdIllustrate(cfg *config.Config, store *saved.Store, log *zap.Logger, provName, modelName, id, out string) {
	var item saved.Item
	found := false
	for _, it := range store.List() {
		if it.ID == id {
			item, found = it, true
			break
		}
	}
	if !found {
		fatal("no saved proposal with id %q (run 'mlmuse saved')", id)
	}

	mtr, err := buildMentor(cfg, log, provName, modelName)
	if err != nil {
		fatal("%s", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("  %s Drawing a cover for %s...\n", tui.SpinnerStyle.Render("●"), item.Title)
	img, err := mtr.Illustrate(ctx, item)
	if err != nil {
		fatal("%s", err)
	}
	if err := os.WriteFile(out, img, 0644); err != nil {
		fatal("%s", err)
	}
	fmt.Println(tui.SuccessStyle.Render("  ✓ Wrote " + out))
}

func cmdRead(url string) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	page, err := reader.Fetch(ctx, url)
	if err != nil {
		fatal("%s", err)
	}
	fmt.Println(tui.TitleStyle.Render("  " + page.Title))
	if page.Byline != "" {
		fmt.Println(tui.SubtitleStyle.Render("  " + page.Byline))
	}
	fmt.Println()
	fmt.Println(page.Markdown)
}

func cmdDoctor(cfg *config.Config) {
	fmt.Println(tui.BannerStyle.Render(tui.Banner))
	fmt.Println(tui.TitleStyle.Render("  Provider health check"))
	fmt.Println()

	defaultOk := true
	for name, pcfg := range cfg.Providers {
		label := name
		if name == cfg.DefaultProvider {
			label = name + " (default)"
		}
		fmt.Printf("  %s %s ... ", tui.SubtitleStyle.Render("●"), tui.TitleStyle.Render(label))

		model := pcfg.Model
		if name == cfg.DefaultProvider && model == "" {
			model = cfg.DefaultModel
		}

		status := health.Check(context.Background(), pcfg.Type, pcfg.BaseURL, pcfg.APIKey, model)
		if status.Reachable {
			modelCount := ""
			if len(status.Models) > 0 {
				modelCount = fmt.Sprintf(" (%d models)", len(status.Models))
			}
			fmt.Printf("%s%s %s\n",
				tui.SuccessStyle.Render("✓ OK"),
				tui.HelpStyle.Render(modelCount),
				tui.HelpStyle.Render(status.Latency.Round(time.Millisecond).String()),
			)
			if status.ModelErr != "" {
				fmt.Printf("      %s\n", tui.ErrorStyle.Render("! "+status.ModelErr))
			}
		} else if name == cfg.DefaultProvider {
			defaultOk = false
			fmt.Printf("%s\n", tui.ErrorStyle.Render("✗ "+status.Err))
		} else {
			fmt.Printf("%s\n", tui.HelpStyle.Render("- "+status.Err+" (optional)"))
		}
	}

	fmt.Println()
	if defaultOk {
		fmt.Println(tui.SuccessStyle.Render("  Default provider healthy"))
	} else {
		fmt.Println(tui.ErrorStyle.Render("  Default provider is unreachable."))
		fmt.Println(tui.HelpStyle.Render("  Check your API key, or point default_provider at a local backend"))
		os.Exit(1)
	}
}

func cmdModels(cfg *config.Config, provName, modelName string) {
	prov, err := makeProvider(cfg, provName, modelName)
	if err != nil {
		fatal("%s", err)
	}
	models, err := prov.Models(context.Background())
	if err != nil {
		fatal("failed to list models: %s", err)
	}
	fmt.Println(tui.TitleStyle.Render("  Models on " + provName))
	fmt.Println()
	for _, m := range models {
		fmt.Printf("  %s\n", m)
	}
}

func showHelp() {
	fmt.Println(`mlmuse — an ML project mentor in your terminal

Usage:
  mlmuse                          Launch the interactive TUI
  mlmuse ideas <topic>            Generate project proposals
  mlmuse ask <id> <question>      Ask about a saved proposal
  mlmuse saved [list|rm|export]   Manage the saved collection
  mlmuse scaffold <id> [dir]      Materialize starter files for a proposal
  mlmuse illustrate <id> [file]   Generate a cover image for a proposal
  mlmuse read <url>               Preview a resource link as Markdown
  mlmuse doctor                   Check provider connectivity
  mlmuse models                   List models on the provider
  mlmuse version                  Print version

Flags:
  -provider name     Override the configured provider
  -model name        Override the configured model
  -difficulty level  beginner, intermediate or advanced (ideas)
  -json              Print ideas as JSON (ideas)
  -save              Save generated ideas immediately (ideas)
  -filter expr       Filter 'saved list' (e.g. 'difficulty == "advanced"')
  -force             Overwrite existing files (scaffold)

Config: ` + config.ConfigDir() + `/config.yaml
Profile: ` + config.ConfigDir() + `/profile.yaml (personalizes every prompt)`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "mlmuse: "+format+"\n", args...)
	os.Exit(1)
}
