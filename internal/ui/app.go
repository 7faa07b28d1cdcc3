package ui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/formpages/internal/app"
	"github.com/lazyvibe/formpages/internal/logger"
	"github.com/lazyvibe/formpages/internal/model"
	"github.com/lazyvibe/formpages/internal/store"
	"github.com/lazyvibe/formpages/internal/ui/components/dialog"
	"github.com/lazyvibe/formpages/internal/ui/components/pagetabs"
	"github.com/lazyvibe/formpages/internal/ui/components/statusbar"
	"github.com/lazyvibe/formpages/internal/ui/keys"
	"go.uber.org/zap"
)

const (
	minAppWidth  = 40
	minAppHeight = 10

	// rows above the tab bar
	headerHeight = 1
)

// DialogMode represents the current dialog being shown.
type DialogMode int

const (
	DialogNone DialogMode = iota
	DialogRename
)

// App is the main application model.
type App struct {
	// Components
	tabs         pagetabs.Model
	statusBar    statusbar.Model
	renameDialog dialog.InputDialog

	// State
	dialogMode DialogMode
	renameID   string
	width      int
	height     int
	ready      bool
	quitting   bool

	// Data
	pages []model.Page

	config *app.Config

	// Dependencies
	store    store.PageStore
	watcher  *store.FileWatcher
	keys     keys.KeyMap
	ctx      context.Context
	log      *zap.Logger
	copyText func(string) error
}

// Option configures the application.
type Option func(*App)

// WithLogger sets the application logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.log = logger.Module(l, "ui")
	}
}

// WithWatcher reloads pages whenever the watcher reports a change.
func WithWatcher(w *store.FileWatcher) Option {
	return func(a *App) {
		a.watcher = w
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(a *App) {
		if fn != nil {
			a.copyText = fn
		}
	}
}

// New creates a new application instance.
func New(s store.PageStore, cfg *app.Config, opts ...Option) App {
	if cfg == nil {
		cfg = app.DefaultConfig()
	}
	k := keys.DefaultKeyMap()
	tabs := pagetabs.New(
		pagetabs.WithKeyMap(k),
		pagetabs.WithMaxNameWidth(cfg.MaxTabName),
	)
	tabs.SetFocused(true)
	tabs.SetOrigin(0, headerHeight)

	a := App{
		tabs:       tabs,
		statusBar:  statusbar.New(),
		dialogMode: DialogNone,
		config:     cfg,
		store:      s,
		keys:       k,
		ctx:        context.Background(),
		log:        logger.Module(nil, "ui"),
		copyText:   clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Init starts loading pages and, when configured, watching the pages file.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.loadPages()}
	if a.watcher != nil {
		cmds = append(cmds, WaitForFileChange(a.watcher.Events()))
	}
	return tea.Batch(cmds...)
}

// loadPages returns a command to load pages.
func (a App) loadPages() tea.Cmd {
	return LoadPages(a.ctx, a.store.List)
}

// SetSize updates the layout for a new terminal size.
func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.tabs.SetWidth(width)
	a.tabs.SetOrigin(0, headerHeight)
	a.statusBar.SetWidth(width)
	a.renameDialog.SetSize(width, height)
}

func (a App) windowTooSmall() bool {
	return a.width < minAppWidth || a.height < minAppHeight
}

// Pages returns the pages currently shown.
func (a App) Pages() []model.Page {
	return a.pages
}

// setPages pushes a new page list into the components.
func (a *App) setPages(pages []model.Page) {
	a.pages = pages
	a.tabs.SetPages(pages)

	pos := model.Pages(pages).ActiveIndex()
	name := ""
	if pos >= 0 {
		name = pages[pos].DisplayName()
	}
	a.statusBar.SetPageInfo(len(pages), pos, name)
}

// refresh re-reads the store after a mutation.
func (a *App) refresh() {
	pages, err := a.store.List(a.ctx)
	if err != nil {
		a.log.Error("list pages", zap.Error(err))
		a.statusBar.SetMessage("Error loading pages: "+err.Error(), true)
		return
	}
	a.setPages(pages)
}

func (a *App) showRenameDialog(id, name string) {
	a.renameID = id
	a.renameDialog = dialog.NewInputDialog("Rename page", dialog.InputField{
		Label: "Page name", Placeholder: "Untitled", Value: name, CharLimit: 120,
	})
	a.renameDialog.SetSize(a.width, a.height)
	a.dialogMode = DialogRename
	a.tabs.SetFocused(false)
}

func (a *App) hideDialog() {
	a.dialogMode = DialogNone
	a.renameID = ""
	a.tabs.SetFocused(true)
}
