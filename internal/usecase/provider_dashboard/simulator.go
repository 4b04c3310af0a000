package provider_dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/pkg/types"
)

const simulatedEmail = "customer@email.com"

var (
	simulatedCustomers = []string{"Alex Brown", "Lisa Garcia", "Tom Wilson", "Anna Lee"}
	simulatedLocations = []string{"Downtown Plaza", "Mall Parking", "Office Complex", "Residential Area"}
)

// Tick один шаг симуляции: с вероятностью 30% приходит новое бронирование
func (d *Dashboard) Tick(ctx context.Context) (bool, error) {
	var arrived bool
	err := d.do(ctx, func(ctx context.Context) error {
		if d.random.Float64() <= domain.SimulationArrivalThreshold {
			return nil
		}
		d.addArrival()
		arrived = true
		return nil
	})
	return arrived, err
}

// startSimulation запускает тикер симуляции до Close
func (d *Dashboard) startSimulation() {
	ticker := d.clock.Ticker(d.cfg.SimulationInterval)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if _, err := d.Tick(context.Background()); err != nil {
					d.logger.Warn("simulation: tick failed: %v", err)
					return
				}
			case <-d.stop:
				return
			}
		}
	}()

	d.logger.Info("startSimulation: arrivals every %s", d.cfg.SimulationInterval)
}

// addArrival добавляет случайное бронирование; выполняется в очереди
func (d *Dashboard) addArrival() domain.Booking {
	now := d.clock.Now()

	name := simulatedCustomers[d.pick(len(simulatedCustomers))]
	phone := fmt.Sprintf("+1 (555) %d-%d",
		int(d.random.Float64()*900+100),
		int(d.random.Float64()*9000+1000),
	)
	service := domain.Catalog[d.pick(len(domain.Catalog))]
	location := simulatedLocations[d.pick(len(simulatedLocations))]

	booking := d.engine.Submit(service, domain.BookingDetails{
		CustomerName: name,
		Phone:        phone,
		Email:        simulatedEmail,
		Date:         now.Format(domain.DateFormat),
		Time:         types.NewTimeString(now),
		Location:     location,
	})

	message := "New booking received from " + booking.CustomerName
	d.toasts.Show(message, domain.ToastInfo, iconBell)
	d.feed = append([]FeedEntry{{Icon: iconBell, Message: message, CreatedAt: now}}, d.feed...)
	d.unread++
	d.metrics.SimulatedArrival()

	d.logger.Info("addArrival: booking id=%s from %s, unread=%d", booking.ID, booking.CustomerName, d.unread)
	return booking
}

// pick индекс из [0, n)
func (d *Dashboard) pick(n int) int {
	i := int(d.random.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
