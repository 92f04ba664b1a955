package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/skirmish/internal/catalog"
	"github.com/osse101/skirmish/internal/combat"
	"github.com/osse101/skirmish/internal/config"
	"github.com/osse101/skirmish/internal/logger"
	"github.com/osse101/skirmish/internal/metrics"
	"github.com/osse101/skirmish/internal/possession"
	"github.com/osse101/skirmish/internal/report"
	"github.com/osse101/skirmish/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.DefaultConfig())
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)

	armor, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load armor catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Armor catalog loaded", "types", armor.Len())

	promReg := prometheus.NewRegistry()
	collector := metrics.NewCollector(promReg)

	reg := possession.NewRegistry()
	reg.SetObserver(collector)

	hero, err := newHero(reg, armor)
	if err != nil {
		slog.Error("Failed to equip hero", "error", err)
		os.Exit(1)
	}
	monster, err := newMonster(reg, armor)
	if err != nil {
		slog.Error("Failed to equip monster", "error", err)
		os.Exit(1)
	}

	ctx := logger.WithFightID(context.Background(), logger.GenerateFightID())
	resolver := combat.NewResolver(
		utils.NewRoller(cfg.Seed),
		combat.Config{WearPerHit: cfg.WearPerHit, VictoryHealPercent: cfg.VictoryHealPercent},
		logger.FromContext(ctx),
		collector,
	)

	fmt.Println(report.Entity(hero))
	fmt.Println(report.Entity(monster))

	result, err := resolver.Fight(hero, monster, cfg.MaxRounds)
	if err != nil {
		slog.Error("Fight aborted", "error", err)
		os.Exit(1)
	}

	out := report.NewFormatter(report.DefaultLanguage)
	fmt.Println(out.Fight(result))

	if result.Decided() {
		loot, err := resolver.Loot(result.Winner, result.Loser, combat.MergePurses(combat.GreedyLoot))
		if err != nil {
			slog.Error("Looting failed", "error", err)
			os.Exit(1)
		}
		fmt.Println(out.Loot(loot))
	}

	fmt.Println(out.Entity(hero))
	fmt.Println(out.Entity(monster))

	logMetrics(promReg)
}

// logMetrics writes the non-zero counters gathered during the run at debug level.
func logMetrics(reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		slog.Warn("Failed to gather metrics", "error", err)
		return
	}
	for _, f := range families {
		total := 0.0
		for _, m := range f.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
		if total > 0 {
			slog.Debug("Metric", "name", f.GetName(), "total", total)
		}
	}
}
