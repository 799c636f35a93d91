package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shopfront/app"
	"shopfront/internal/catalog"
	"shopfront/internal/config"
	"shopfront/nav"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := catalog.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := catalog.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := catalog.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed: %v", err)
	}

	categories, err := catalog.NewCategoryRepo(db).List(ctx)
	if err != nil {
		log.Fatalf("load categories: %v", err)
	}
	products, err := catalog.NewProductRepo(db).ListAll(ctx)
	if err != nil {
		log.Fatalf("load products: %v", err)
	}

	reg := nav.NewRegistry()
	if cfg.Nav.SettleMS > 0 {
		reg.Settle = time.Duration(cfg.Nav.SettleMS) * time.Millisecond
	}
	shop := app.NewShopCoordinator(reg, app.StoreData{
		Categories: categories,
		Products:   products,
	}, cfg.Store.CurrencySymbol)

	m := app.NewModel(reg, shop, cfg.Store.Name)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
