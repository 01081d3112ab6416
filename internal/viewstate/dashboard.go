package viewstate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Options - зависимости и настройки дашборда одной сессии
type Options struct {
	Incidents      IncidentSource
	Details        IncidentDetailSource
	Entities       EntitySource
	Now            func() time.Time
	DefaultFilters []string
	Player         PlayerConfig
}

// Dashboard объединяет состояния всех представлений одной сессии.
// Операции над ним выполняются под мьютексом.
type Dashboard struct {
	sync.Mutex

	Overview  *IncidentView
	Entities  *EntityView
	AlertInfo *AlertInfoView
	Player    *Playback

	mounted bool
	closed  bool
}

func NewDashboard(opts Options) *Dashboard {
	player := NewPlayback(opts.Player)
	return &Dashboard{
		Overview:  NewIncidentView(opts.Incidents, opts.Now, opts.DefaultFilters),
		Entities:  NewEntityView(opts.Entities, opts.DefaultFilters),
		AlertInfo: NewAlertInfoView(opts.Details, player, opts.Now),
		Player:    player,
	}
}

// Mount загружает инциденты и сущности параллельно. Повторный вызов - no-op.
func (d *Dashboard) Mount(ctx context.Context) error {
	if d.mounted {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := d.Overview.Refresh(gctx); err != nil {
			return fmt.Errorf("load incidents: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := d.Entities.Refresh(gctx); err != nil {
			return fmt.Errorf("load entities: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	d.mounted = true
	return nil
}

func (d *Dashboard) Mounted() bool {
	return d.mounted
}

// Close освобождает ресурсы представлений: подписки плеера и выбор
func (d *Dashboard) Close() {
	if d.closed {
		return
	}
	d.AlertInfo.Unmount()
	d.Player.Close()
	d.Overview.Close()
	d.Entities.Close()
	d.closed = true
}

func (d *Dashboard) Closed() bool {
	return d.closed
}
