package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yashdave182/FinAgent/configs"
	"github.com/yashdave182/FinAgent/internal/pkg/common"
	"github.com/yashdave182/FinAgent/internal/pkg/consts"
	"github.com/yashdave182/FinAgent/internal/pkg/logger"
	"github.com/yashdave182/FinAgent/internal/pkg/models"
	"github.com/yashdave182/FinAgent/internal/pkg/pubsub"
)

// NotificationService publishes sanction notifications for downstream
// delivery channels (email, SMS) over Pub/Sub.
type NotificationService struct {
	pubsubPublisher pubsub.PubSubPublisherInterface
}

func NewNotificationService(pubsubPublisher pubsub.PubSubPublisherInterface) *NotificationService {
	return &NotificationService{
		pubsubPublisher: pubsubPublisher,
	}
}

// NotifySanctionIssued tells the notification topic that a sanction letter
// exists for the application. The renderer on the other side fills its own
// template from the parameters.
func (h *NotificationService) NotifySanctionIssued(ctx context.Context, profile *models.UserProfile, application models.LoanApplication) error {

	request := models.SanctionNotificationRequest{
		UserId:    profile.UserId,
		Email:     profile.Email,
		EventName: consts.SanctionIssuedNotificationEvent,
		NotifParameters: []models.SanctionNotificationParameter{
			{Name: "loanId", Value: application.LoanId},
			{Name: "borrowerName", Value: application.FullName},
			{Name: "approvedAmount", Value: common.FormatINR(application.ApprovedAmount)},
			{Name: "tenureMonths", Value: fmt.Sprintf("%d", application.TenureMonths)},
			{Name: "emi", Value: common.FormatINR(application.Emi)},
		},
	}

	payloadBytes, err := json.Marshal(request)
	if err != nil {
		logger.Error(ctx, "Failed to marshal sanction notification request: %v", err)
		return fmt.Errorf("failed to marshal sanction request: %w", err)
	}

	topicName := configs.PUBSUB_TOPIC

	// Separate timeout context so a cancelled chat request cannot abort the
	// in-flight publish
	pubsubCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	messageID, err := h.pubsubPublisher.Publish(pubsubCtx, topicName, payloadBytes, nil)
	if err != nil {
		logger.Error(ctx, "Failed to publish sanction notification to PubSub topic %s: %v", topicName, err)
		return fmt.Errorf("failed to publish to pubsub: %w", err)
	}

	logger.Info(ctx, "Successfully published sanction notification for loan %s to topic %s with message ID: %s",
		application.LoanId, topicName, messageID)
	return nil
}
