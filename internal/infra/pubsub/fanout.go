package pubsub

import (
	"context"

	"comanda/internal/domain/service"
	"comanda/internal/errors"
	"comanda/internal/infra/metrics"
)

type namedPublisher struct {
	name      string
	publisher service.OrderEventPublisher
}

// fanoutPublisher delivers every event to each target. A failing target does
// not stop the others; all failures are returned joined.
type fanoutPublisher struct {
	targets []namedPublisher
	metrics *metrics.Metrics
}

func (p *fanoutPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	p.metrics.OrderEvents.WithLabelValues(string(event.Type), event.ToStatus).Inc()

	var errs []error
	for _, target := range p.targets {
		if err := target.publisher.PublishOrderEvent(ctx, event); err != nil {
			p.metrics.PublishFailures.WithLabelValues(target.name).Inc()
			errs = append(errs, errors.Wrapf(err, "%s publisher", target.name))
		}
	}

	return errors.Join(errs...)
}

// Close closes every target and returns the joined errors.
func (p *fanoutPublisher) Close() error {
	var errs []error
	for _, target := range p.targets {
		if err := target.publisher.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
