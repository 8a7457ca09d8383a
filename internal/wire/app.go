package wire

import (
	"context"
	"io"
	"log"
	"os"
	"sync"

	"github.com/spf13/viper"

	"github.com/mithrel/boolq/internal/catalog"
	"github.com/mithrel/boolq/internal/clipboard"
	"github.com/mithrel/boolq/internal/match"
)

// App aggregates the services shared by commands.
type App struct {
	Cfg       *viper.Viper
	Log       *log.Logger
	Clipboard clipboard.Writer

	catOnce sync.Once
	cat     *catalog.Catalog
	catErr  error
}

// BuildApp wires dependencies from the resolved config. The catalog is
// loaded on first use so commands that do not need it never fail on a bad
// catalog_path.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	var w io.Writer = io.Discard
	if v.GetBool("log.verbose") {
		w = os.Stderr
	}
	cb := clipboard.System()
	if !v.GetBool("clipboard.enabled") {
		cb = clipboard.Disabled()
	}
	return &App{
		Cfg:       v,
		Log:       log.New(w, "boolq ", log.LstdFlags),
		Clipboard: cb,
	}, nil
}

// Catalog returns the configured catalog, loading it once.
func (a *App) Catalog() (*catalog.Catalog, error) {
	a.catOnce.Do(func() {
		path := a.Cfg.GetString("catalog_path")
		if path == "" {
			a.cat, a.catErr = catalog.Default()
			if a.catErr == nil {
				a.Log.Printf("catalog: loaded %d categories (built-in)", a.cat.Len())
			}
			return
		}
		a.cat, a.catErr = catalog.Load(path)
		if a.catErr != nil {
			a.Log.Printf("catalog: load %s failed: %v", path, a.catErr)
			return
		}
		a.Log.Printf("catalog: loaded %d categories from %s", a.cat.Len(), path)
	})
	return a.cat, a.catErr
}

// MaxSuggestions is the configured suggestion limit.
func (a *App) MaxSuggestions() int {
	if n := a.Cfg.GetInt("suggest.max_results"); n > 0 {
		return n
	}
	return match.DefaultMaxResults
}
