package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"pageview/internal/config"
	"pageview/internal/domain"
	"pageview/internal/eventbus"
	"pageview/internal/ui"
)

func main() {
	var (
		configPath string
		mode       string
		count      int
	)
	flag.StringVar(&configPath, "config", config.DefaultFileName, "Path to the TOML config file")
	flag.StringVar(&mode, "mode", "", "Paging mode: int, day, week, month or historic")
	flag.IntVar(&count, "count", -1, "Number of pages in int mode (0 = unbounded)")
	flag.Parse()

	if err := run(configPath, mode, count); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, mode string, count int) error {
	// Writes to stderr until the config names a log file
	log := logrus.New()
	bus := eventbus.New(log)
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := loadOrCreateConfig(configSvc)
	if err != nil {
		return err
	}

	if mode != "" {
		m, err := domain.ParseMode(mode)
		if err != nil {
			return err
		}
		cfg.Mode = string(m)
	}
	if count >= 0 {
		cfg.Count = count
	}

	closeLog, err := setupLogging(log, cfg.UI)
	if err != nil {
		return err
	}
	defer closeLog()
	// Stop handlers before the log file closes
	defer bus.Close()

	subscribeLogging(bus, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	model, err := ui.NewModel(bus, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create UI: %w", err)
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)

	log.WithFields(logrus.Fields{"mode": cfg.Mode, "config": configSvc.Path()}).Info("starting UI")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	log.WithField("selected", model.Selected()).Info("UI exited normally")
	return nil
}

// loadOrCreateConfig loads the config file, writing the defaults when
// it does not exist yet
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, error) {
	if _, err := os.Stat(configSvc.Path()); err == nil {
		cfg, err := configSvc.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	cfg := config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		// Not fatal: run with defaults
		fmt.Fprintf(os.Stderr, "Warning: could not write %s: %v\n", configSvc.Path(), err)
	}
	return cfg, nil
}

// setupLogging sends log output to the configured file; the terminal
// belongs to the UI
func setupLogging(log *logrus.Logger, settings config.UISettings) (func(), error) {
	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	if settings.LogFile == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// subscribeLogging records paging activity in the log
func subscribeLogging(bus eventbus.EventBus, log logrus.FieldLogger) {
	bus.Subscribe(eventbus.EventPageChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageChangedEvent); ok {
			log.WithFields(logrus.Fields{"mode": event.Mode, "from": event.From, "to": event.To}).Info("page changed")
		}
	})
	bus.Subscribe(eventbus.EventThresholdCrossed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ThresholdCrossedEvent); ok {
			log.WithFields(logrus.Fields{"mode": event.Mode, "to": event.Target, "active": event.Active}).Debug("threshold crossed")
		}
	})
	bus.Subscribe(eventbus.EventDragStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DragStartedEvent); ok {
			log.WithFields(logrus.Fields{"mode": event.Mode, "from": event.From}).Debug("drag started")
		}
	})
	bus.Subscribe(eventbus.EventDragEnded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DragEndedEvent); ok {
			log.WithFields(logrus.Fields{"mode": event.Mode, "selected": event.Selected}).Debug("drag ended")
		}
	})
	bus.Subscribe(eventbus.EventFeedback, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FeedbackEvent); ok {
			log.WithField("impact", event.Impact).Trace("feedback")
		}
	})
}
