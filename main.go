package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kylesnowschwartz/tail-inspections/config"
	"github.com/kylesnowschwartz/tail-inspections/library"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// View states
type viewState int

const (
	viewLibrary viewState = iota // filtered session list (main view)
	viewDetail                   // single session with its media
)

type model struct {
	catalog *library.Catalog
	cache   *library.ViewCache
	query   library.Query
	clock   func() time.Time
	log     *zap.Logger

	// Current pipeline output and its flattened rows.
	vm     library.ViewModel
	items  []libraryItem
	cursor int // index into items, always a session row when any exist
	scroll int

	width  int
	height int
	view   viewState
	dump   bool // render without status bar or viewport padding

	// Detail view state
	detail         library.SessionCard
	detailCursor   int
	detailScroll   int
	detailExpanded map[int]bool

	md     *mdRenderer
	jsonHL *jsonHL

	// Live catalog reload
	watching bool
	watcher  *catalogWatcher
	sub      chan *library.Catalog
	errc     chan error
	notice   string // last reload or error notice for the status bar
}

// clockTickMsg re-runs the pipeline so relative labels follow the wall clock.
type clockTickMsg time.Time

const clockTickInterval = time.Minute

func clockTickCmd() tea.Cmd {
	return tea.Tick(clockTickInterval, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func initialModel(c *library.Catalog, q library.Query, clock func() time.Time, hasDarkBg bool) model {
	m := model{
		catalog:        c,
		cache:          library.NewViewCache(),
		query:          q,
		clock:          clock,
		log:            zap.NewNop(),
		detailExpanded: make(map[int]bool),
		md:             newMDRenderer(hasDarkBg, true),
		jsonHL:         newJSONHL(hasDarkBg),
	}
	m.refresh()
	return m
}

// refresh re-runs the pipeline for the current catalog, query and clock
// and rebuilds the flattened rows. The cursor stays on the same session
// when it survives the new filters.
func (m *model) refresh() {
	var keep string
	if s := m.selectedCard(); s != nil {
		keep = s.ID
	}

	now := m.clock()
	vm, hit := m.cache.Get(m.catalog, m.query, now)
	m.log.Debug("pipeline",
		zap.String("date", string(m.query.Date)),
		zap.String("media", string(m.query.Media)),
		zap.String("group", string(m.query.Group)),
		zap.Bool("cacheHit", hit),
		zap.Int("sessions", vm.SessionCount()),
		zap.Int("items", vm.Stats.Total),
	)

	m.vm = vm
	m.items = buildLibraryItems(vm)
	m.cursor = 0
	m.scroll = 0
	if keep != "" {
		for i, it := range m.items {
			if it.typ == libraryItemSession && it.card.ID == keep {
				m.cursor = i
				break
			}
		}
	}
	if m.cursor == 0 {
		m.libraryCursorFirst()
	}
	m.ensureLibraryVisible()
}

// setCatalog swaps in a reloaded catalog.
func (m *model) setCatalog(c *library.Catalog) {
	m.catalog = c
	m.cache.Invalidate()
	m.refresh()
	if m.view == viewDetail {
		m.reopenDetail()
	}
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{clockTickCmd()}
	if m.watching {
		cmds = append(cmds, waitForCatalog(m.sub), waitForWatcherErr(m.errc))
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureLibraryVisible()
		m.ensureDetailCursorVisible()
		return m, nil

	case clockTickMsg:
		m.refresh()
		return m, clockTickCmd()

	case catalogReloadMsg:
		if msg.catalog == nil {
			return m, nil
		}
		m.log.Info("catalog reloaded",
			zap.String("path", msg.catalog.Path),
			zap.Int("sessions", len(msg.catalog.Sessions)),
			zap.Int("skipped", msg.catalog.Skipped()),
		)
		m.setCatalog(msg.catalog)
		m.notice = fmt.Sprintf("reloaded %s", plural(len(msg.catalog.Sessions), "session", "sessions"))
		if m.watching {
			return m, waitForCatalog(m.sub)
		}
		return m, nil

	case catalogErrMsg:
		if msg.err == nil {
			return m, nil
		}
		m.log.Warn("catalog reload failed", zap.Error(msg.err))
		m.notice = "reload failed: " + msg.err.Error()
		if m.watching {
			return m, waitForWatcherErr(m.errc)
		}
		return m, nil

	case tea.KeyPressMsg:
		if m.view == viewDetail {
			return m.updateDetail(msg)
		}
		return m.updateLibrary(msg)

	case tea.MouseWheelMsg:
		if m.view == viewDetail {
			return m.updateDetailMouse(msg)
		}
		return m.updateLibraryMouse(msg)
	}

	return m, nil
}

func (m model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// render produces the full screen for the current view state.
func (m model) render() string {
	if m.view == viewDetail {
		return m.viewDetail()
	}
	return m.viewLibrary()
}

// options holds parsed command-line arguments.
type options struct {
	configPath  string
	catalogPath string
	dump        bool
	noWatch     bool
	date        string
	media       string
	group       string
	now         string
}

// parseArgs reads --flag, --flag=value and --flag value forms plus one
// positional catalog path.
func parseArgs(args []string) (options, error) {
	var opts options
	valueFlags := map[string]*string{
		"--config": &opts.configPath,
		"--date":   &opts.date,
		"--media":  &opts.media,
		"--group":  &opts.group,
		"--now":    &opts.now,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		switch {
		case arg == "--dump":
			opts.dump = true
		case arg == "--no-watch":
			opts.noWatch = true
		case valueFlags[name] != nil:
			if !hasValue {
				if i+1 >= len(args) {
					return options{}, fmt.Errorf("flag %s needs a value", name)
				}
				i++
				value = args[i]
			}
			*valueFlags[name] = value
		case strings.HasPrefix(arg, "-"):
			return options{}, fmt.Errorf("unknown flag: %s", arg)
		case opts.catalogPath != "":
			return options{}, fmt.Errorf("unexpected argument: %s", arg)
		default:
			opts.catalogPath = arg
		}
	}
	return opts, nil
}

// resolveQuery turns configured words into a Query. Flags win over config.
func resolveQuery(cfg config.ViewConfig) (library.Query, error) {
	date, ok := library.ParseDateBucket(cfg.Date)
	if !ok {
		return library.Query{}, fmt.Errorf("unknown date filter %q (all, today, yesterday, week, month)", cfg.Date)
	}
	media, ok := library.ParseMediaFilter(cfg.Media)
	if !ok {
		return library.Query{}, fmt.Errorf("unknown media filter %q (all, photo, video)", cfg.Media)
	}
	group, ok := library.ParseGroupMode(cfg.Group)
	if !ok {
		return library.Query{}, fmt.Errorf("unknown grouping %q (inspection, date)", cfg.Group)
	}
	return library.Query{Date: date, Media: media, Group: group}, nil
}

// resolveClock returns the "now" source. A pinned day is reported as noon
// local time on that day so every render sees the same calendar day.
func resolveClock(pinned string) (func() time.Time, error) {
	if pinned == "" {
		return time.Now, nil
	}
	d, err := time.ParseInLocation(library.DateLayout, pinned, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --now %q: want YYYY-MM-DD", pinned)
	}
	fixed := d.Add(12 * time.Hour)
	return func() time.Time { return fixed }, nil
}

func run(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.catalogPath != "" {
		cfg.Catalog.Path = opts.catalogPath
	}
	if opts.noWatch {
		cfg.Catalog.Watch = false
	}
	overrides := []struct {
		flag   string
		target *string
	}{
		{opts.date, &cfg.View.Date},
		{opts.media, &cfg.View.Media},
		{opts.group, &cfg.View.Group},
		{opts.now, &cfg.View.Now},
	}
	for _, o := range overrides {
		if o.flag != "" {
			*o.target = o.flag
		}
	}

	query, err := resolveQuery(cfg.View)
	if err != nil {
		return err
	}
	clock, err := resolveClock(cfg.View.Now)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var catalog *library.Catalog
	if cfg.Catalog.Path == "" {
		catalog = library.DemoCatalog(clock())
	} else {
		catalog, err = library.LoadCatalog(cfg.Catalog.Path)
		if err != nil {
			return err
		}
	}
	logger.Info("catalog loaded",
		zap.String("path", catalog.Path),
		zap.Int("sessions", len(catalog.Sessions)),
		zap.Int("skipped", catalog.Skipped()),
	)
	for _, p := range catalog.Problems {
		logger.Debug("catalog problem", zap.String("detail", p))
	}

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	hasDarkBg := true
	if tty {
		hasDarkBg = lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
	}
	applyTheme(hasDarkBg)

	m := initialModel(catalog, query, clock, hasDarkBg)
	m.log = logger
	m.md = newMDRenderer(hasDarkBg, tty)

	if opts.dump {
		m.dump = true
		m.width = 120
		m.height = 1_000_000
		fmt.Println(m.render())
		return nil
	}

	if cfg.Catalog.Watch && catalog.Path != "" {
		w := newCatalogWatcher(catalog.Path)
		go w.run()
		defer w.stop()
		m.watching = true
		m.watcher = w
		m.sub = w.sub
		m.errc = w.errc
	}

	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
