package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"mergington-activities/src/jobs"
	"mergington-activities/src/metrics"
	"mergington-activities/src/models"
	"mergington-activities/src/services/activities"
	"mergington-activities/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// SignupQuery is the query string of the signup and cancel routes.
// Only presence is checked; the email format is not.
type SignupQuery struct {
	Email string `query:"email" validate:"required"`
}

// ActivityController serves the activity routes over an injected registry.
type ActivityController struct {
	registry *activities.Registry
	notifier jobs.Notifier
	metrics  *metrics.Metrics
	log      *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewActivityController(registry *activities.Registry, notifier jobs.Notifier, m *metrics.Metrics, log *zap.Logger) *ActivityController {
	if notifier == nil {
		notifier = jobs.NopNotifier{}
	}
	if m == nil {
		m = metrics.New(prometheus.NewRegistry())
	}
	for name, a := range registry.List() {
		m.SetParticipants(name, len(a.Participants))
	}
	return &ActivityController{
		registry: registry,
		notifier: notifier,
		metrics:  m,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
	}
}

// GetActivities godoc
// @Summary      List all activities
// @Description  Returns every activity keyed by name, with its participants
// @Tags         activities
// @Produce      json
// @Success      200  {object}  map[string]models.Activity
// @Router       /activities [get]
func (ac *ActivityController) GetActivities(c *fiber.Ctx) error {
	return c.JSON(ac.registry.List())
}

// SignupForActivity godoc
// @Summary      Sign up for an activity
// @Description  Adds the email to the activity's participants
// @Tags         activities
// @Produce      json
// @Param        name   path   string  true  "Activity name"
// @Param        email  query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /activities/{name}/signup [post]
func (ac *ActivityController) SignupForActivity(c *fiber.Ctx) error {
	name, email, err := ac.parseTarget(c)
	if err != nil {
		ac.metrics.Signups.WithLabelValues(metrics.ResultInvalid).Inc()
		return utils.HandleError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	activity, err := ac.registry.Signup(name, email)
	switch {
	case errors.Is(err, activities.ErrActivityNotFound):
		ac.metrics.Signups.WithLabelValues(metrics.ResultNotFound).Inc()
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, activities.ErrAlreadySignedUp):
		ac.metrics.Signups.WithLabelValues(metrics.ResultConflict).Inc()
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		ac.log.Error("signup failed", zap.String("activity", name), zap.Error(err))
		return utils.HandleError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	ac.metrics.Signups.WithLabelValues(metrics.ResultOK).Inc()
	ac.metrics.SetParticipants(name, len(activity.Participants))
	ac.publish(c.UserContext(), name, email, models.ActionSignup)

	return c.JSON(models.MessageResponse{Message: fmt.Sprintf("Signed up %s for %s", email, name)})
}

// UnregisterFromActivity godoc
// @Summary      Cancel a signup
// @Description  Removes the email from the activity's participants
// @Tags         activities
// @Produce      json
// @Param        name   path   string  true  "Activity name"
// @Param        email  query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /activities/{name}/signup [delete]
func (ac *ActivityController) UnregisterFromActivity(c *fiber.Ctx) error {
	name, email, err := ac.parseTarget(c)
	if err != nil {
		ac.metrics.Cancels.WithLabelValues(metrics.ResultInvalid).Inc()
		return utils.HandleError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	activity, err := ac.registry.Cancel(name, email)
	switch {
	case errors.Is(err, activities.ErrActivityNotFound), errors.Is(err, activities.ErrParticipantNotFound):
		ac.metrics.Cancels.WithLabelValues(metrics.ResultNotFound).Inc()
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	case err != nil:
		ac.log.Error("cancel failed", zap.String("activity", name), zap.Error(err))
		return utils.HandleError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	ac.metrics.Cancels.WithLabelValues(metrics.ResultOK).Inc()
	ac.metrics.SetParticipants(name, len(activity.Participants))
	ac.publish(c.UserContext(), name, email, models.ActionCancel)

	return c.JSON(models.MessageResponse{Message: fmt.Sprintf("Removed %s from %s", email, name)})
}

// RedirectToIndex ส่งผู้ใช้ไปหน้า static
func RedirectToIndex(c *fiber.Ctx) error {
	return c.Redirect("/static/index.html", fiber.StatusTemporaryRedirect)
}

func (ac *ActivityController) parseTarget(c *fiber.Ctx) (string, string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return "", "", fmt.Errorf("invalid activity name: %w", err)
	}

	var q SignupQuery
	if err := c.QueryParser(&q); err != nil {
		return "", "", fmt.Errorf("invalid query: %w", err)
	}
	if err := ac.validate.Struct(q); err != nil {
		return "", "", errors.New("email query parameter is required")
	}
	// fiber reuses request buffers; the registry keeps these strings
	return strings.Clone(name), strings.Clone(q.Email), nil
}

// publish hands the event to the notifier; failures are logged only.
func (ac *ActivityController) publish(ctx context.Context, name, email string, action models.ParticipationAction) {
	err := ac.notifier.Notify(ctx, models.ParticipationEvent{
		Activity:   name,
		Email:      email,
		Action:     action,
		OccurredAt: ac.now().UTC(),
	})
	if err != nil {
		ac.metrics.Notifies.WithLabelValues(metrics.ResultError).Inc()
		ac.log.Warn("⚠️ participation notification not enqueued",
			zap.String("activity", name), zap.String("action", string(action)), zap.Error(err))
		return
	}
	ac.metrics.Notifies.WithLabelValues(metrics.ResultOK).Inc()
}
