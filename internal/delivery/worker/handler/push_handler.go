package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"plantcare/config"
	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const envLocal = "local"

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// CareSchedule is the next care due for a plant, derived when its event arrives.
type CareSchedule struct {
	PlantID         uuid.UUID
	OwnerID         uuid.UUID
	NextWatering    time.Time
	NextFertilizing *time.Time
}

// PushHandler consumes plant change events pushed by Pub/Sub
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	plantRepo      repository.PlantRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	PlantRepo repository.PlantRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google pushes carry an OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != envLocal

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		plantRepo:      params.PlantRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.PlantEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse plant event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing plant event",
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
		slog.String("plant_id", event.PlantID),
	)

	if err := h.processEvent(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process plant event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 asks Pub/Sub to redeliver; 200 drops a message that can never succeed
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.PlantEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processEvent(ctx context.Context, logger *slog.Logger, event *service.PlantEvent) error {
	plantID, err := uuid.Parse(event.PlantID)
	if err != nil {
		return errors.Wrapf(err, "invalid plant id %q", event.PlantID)
	}

	switch event.Type {
	case service.PlantDeleted:
		logger.Info("[Worker] Care schedule cleared", slog.String("plant_id", plantID.String()))

		return nil
	case service.PlantCreated, service.PlantUpdated:
	default:
		return errors.Errorf("unknown plant event type %q", event.Type)
	}

	plant, err := h.plantRepo.FindByID(ctx, plantID)
	if errors.Is(err, repository.ErrPlantNotFound) {
		// deleted before this event was delivered
		logger.Info("[Worker] Plant gone, skipping schedule", slog.String("plant_id", plantID.String()))

		return nil
	}
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	schedule := scheduleFor(plant)
	attrs := []any{
		slog.String("plant_id", schedule.PlantID.String()),
		slog.String("owner_id", schedule.OwnerID.String()),
		slog.Time("next_watering", schedule.NextWatering),
	}
	if schedule.NextFertilizing != nil {
		attrs = append(attrs, slog.Time("next_fertilizing", *schedule.NextFertilizing))
	}
	logger.Info("[Worker] Care schedule refreshed", attrs...)

	return nil
}

func scheduleFor(plant *entity.Plant) CareSchedule {
	return CareSchedule{
		PlantID:         plant.ID,
		OwnerID:         plant.OwnerID,
		NextWatering:    plant.NextWatering(),
		NextFertilizing: plant.NextFertilizing(),
	}
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// The audience is this endpoint's own URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
