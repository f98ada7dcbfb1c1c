package orderhistory

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/orderhistory/orderevents"
)

func (s *Service) Subscribe(c context.Context) error {
	err := s.pubsub.CreateTopic(c, orderevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", orderevents.TopicName, err)
	}

	err = s.pubsub.Subscribe(c, orderevents.TopicName, s.baseURL+"/api/orders/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", orderevents.TopicName, err)
	}

	return nil
}

func (s *Service) OnOrderPlaced(c context.Context, topic string, event orderevents.OrderPlaced) error {
	s.logger.Log(c, event.OrderUID, mylog.SeverityInfo, "Event: order %s placed by %s", event.OrderUID, event.CustomerUID)

	s.metrics.OrderPlaced(event.TotalInMinorUnits)

	return nil
}

func (s *Service) OnOrderStatusChanged(c context.Context, topic string, event orderevents.OrderStatusChanged) error {
	s.logger.Log(c, event.OrderUID, mylog.SeverityInfo, "Event: order %s changed from %s to %s", event.OrderUID, event.OldStatus, event.NewStatus)

	if !Status(event.NewStatus).Valid() {
		// Acknowledged without a metric: redelivery cannot fix the payload.
		s.logger.Log(c, event.OrderUID, mylog.SeverityWarn, "Ignoring unknown status '%s' of order %s", event.NewStatus, event.OrderUID)
		return nil
	}
	s.metrics.OrderStatusChanged(event.NewStatus)

	return nil
}
