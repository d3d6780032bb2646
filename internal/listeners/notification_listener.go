package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"marketplace-system/internal/entities"
	"marketplace-system/internal/events"
	"marketplace-system/internal/services"
	"marketplace-system/pkg/eventbus"
)

// NotificationListener turns domain events into in-app notifications.
type NotificationListener struct {
	notificationService services.NotificationServiceInterface
	logger              *zap.Logger
}

func NewNotificationListener(
	notificationService services.NotificationServiceInterface,
	logger *zap.Logger,
) *NotificationListener {
	return &NotificationListener{
		notificationService: notificationService,
		logger:              logger,
	}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.OrderPaidEventName, l.handleOrderPaid)
	bus.Subscribe(events.UploadReviewedEventName, l.handleUploadReviewed)
	bus.Subscribe(events.MissionAppliedEventName, l.handleMissionEvent)
	bus.Subscribe(events.MissionAcceptedEventName, l.handleMissionEvent)
	bus.Subscribe(events.MissionStartedEventName, l.handleMissionEvent)
	bus.Subscribe(events.MissionCompletedEventName, l.handleMissionEvent)
}

func (l *NotificationListener) handleOrderPaid(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderPaidEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.Name())
	}

	message := fmt.Sprintf("Your upload '%s' was sold for %.2f", e.Title, e.Amount)
	return l.notificationService.Notify(ctx, e.SellerID, entities.NotificationOrderPaid, message)
}

func (l *NotificationListener) handleUploadReviewed(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.UploadReviewedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.Name())
	}

	message := fmt.Sprintf("Your upload '%s' was %s", e.Title, e.Status)
	return l.notificationService.Notify(ctx, e.OwnerID, entities.NotificationUploadReviewed, message)
}

func (l *NotificationListener) handleMissionEvent(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.MissionEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.Name())
	}

	var notificationType, message string
	switch e.EventName {
	case events.MissionAppliedEventName:
		notificationType = entities.NotificationMissionApplied
		message = fmt.Sprintf("New application for your mission '%s'", e.Title)
	case events.MissionAcceptedEventName:
		notificationType = entities.NotificationMissionAccepted
		message = fmt.Sprintf("You were accepted for mission '%s'", e.Title)
	case events.MissionStartedEventName:
		notificationType = entities.NotificationMissionStarted
		message = fmt.Sprintf("Work on mission '%s' has started", e.Title)
	case events.MissionCompletedEventName:
		notificationType = entities.NotificationMissionCompleted
		message = fmt.Sprintf("Mission '%s' was completed", e.Title)
	default:
		l.logger.Warn("unhandled mission event", zap.String("event", e.EventName))
		return nil
	}

	return l.notificationService.Notify(ctx, e.RecipientID, notificationType, message)
}
