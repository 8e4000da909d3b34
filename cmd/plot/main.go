package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"TrendChart/internal/chart"
	"TrendChart/internal/config"
	"TrendChart/internal/dataset"
	"TrendChart/internal/model"
	"TrendChart/internal/recorder"
	"TrendChart/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TrendChart starting...")

	csvFlag := flag.String("csv", "", "path to the price CSV (overrides config)")
	outFlag := flag.String("output", "", "where to write the SVG plot (overrides config)")
	flag.Parse()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if *csvFlag != "" {
		cfg.Input.CSVPath = *csvFlag
	}
	if *outFlag != "" {
		cfg.Output.SVGPath = *outFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init data source
	src := dataset.NewCSVSource(cfg.Input.CSVPath)
	log.Printf("[INFO] data source: %s", src.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	render := func() error {
		series, err := src.Load()
		if err != nil {
			return fmt.Errorf("load price data: %w", err)
		}
		doc, sum, err := chart.Render(series)
		if err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		if err := os.WriteFile(cfg.Output.SVGPath, doc, 0o644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}

		note := ""
		for _, asset := range model.Assets {
			if note != "" {
				note += ", "
			}
			note += fmt.Sprintf("%s %s-%s", asset,
				chart.FormatCurrency(sum.PriceLow[asset]),
				chart.FormatCurrency(sum.PriceHigh[asset]))
		}
		if err := rec.RecordRender(&recorder.RenderEvent{
			Rows:       sum.Rows,
			RelMin:     sum.RelMin,
			RelMax:     sum.RelMax,
			FluctMin:   sum.FluctMin,
			FluctMax:   sum.FluctMax,
			OutputPath: cfg.Output.SVGPath,
			Note:       note,
		}); err != nil {
			log.Printf("[ERROR] record render: %v", err)
		}

		log.Printf("[INFO] rendered %d rows (%s)", sum.Rows, note)
		fmt.Printf("SVG plot written to %s\n", cfg.Output.SVGPath)
		return nil
	}

	// One-shot mode unless a render cron is configured.
	if cfg.Schedule.RenderCron == "" {
		if err := render(); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
		return
	}

	sched := scheduler.NewScheduler(func() {
		if err := render(); err != nil {
			log.Printf("[ERROR] scheduled render: %v", err)
		}
	})
	if err := sched.Register(cfg.Schedule.RenderCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if err := render(); err != nil {
		log.Printf("[ERROR] initial render: %v", err)
	}
	log.Println("[INFO] TrendChart is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	log.Println("[INFO] TrendChart stopped")
}
