package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pr-poehali-dev/major-registration-portal/internal/metrics"
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
	"github.com/pr-poehali-dev/major-registration-portal/internal/storage"
)

// Controller owns the per-device session state machine:
//
//	role-select --SelectRole--> auth --Authenticate--> dashboard
//	auth --Back--> role-select
//	any --Logout--> role-select (session cleared)
//
// Every transition is written through to storage so a reload restores it.
type Controller struct {
	storage storage.Storage
	metrics metrics.Metrics
	logger  *slog.Logger
	locks   *deviceLocks
}

// NewController creates a new session Controller
func NewController(storage storage.Storage, metrics metrics.Metrics, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		metrics: metrics,
		logger:  logger,
		locks:   newDeviceLocks(),
	}
}

// Load restores the device's session.
// Absent keys give the initial state; a persisted state that breaks an
// invariant is repaired and written back.
func (c *Controller) Load(ctx context.Context, device model.DeviceID) (*model.Session, error) {
	if device == "" {
		return nil, model.ErrInvalidDevice
	}
	unlock := c.locks.lock(device)
	defer unlock()

	return c.load(ctx, device)
}

// SelectRole picks a role and moves to the authentication screen
func (c *Controller) SelectRole(ctx context.Context, device model.DeviceID, role model.Role) (*model.Session, error) {
	if role == nil {
		return nil, model.ErrInvalidRole
	}
	sess, _, err := c.transition(ctx, device, func(sess *model.Session) error {
		if sess.IsLoggedIn {
			return model.ErrAlreadyLoggedIn
		}
		sess.Role = role
		sess.View = model.ViewAuth
		return nil
	})
	return sess, err
}

// Back returns from the authentication screen to role selection.
// The selected role is kept. From any other screen it does nothing and
// the returned bool is false.
func (c *Controller) Back(ctx context.Context, device model.DeviceID) (*model.Session, bool, error) {
	return c.transition(ctx, device, func(sess *model.Session) error {
		if sess.View != model.ViewAuth {
			return errNoChange
		}
		sess.View = model.ViewRoleSelect
		return nil
	})
}

// Authenticate accepts any submitted form and opens the dashboard.
// The display name is the form's nickname, or model.DefaultUser when blank.
func (c *Controller) Authenticate(ctx context.Context, device model.DeviceID, form model.AuthForm) (*model.Session, error) {
	sess, _, err := c.transition(ctx, device, func(sess *model.Session) error {
		if !sess.HasRole() {
			return model.ErrRoleNotSelected
		}
		sess.IsLoggedIn = true
		sess.View = model.ViewDashboard
		sess.CurrentUser = form.DisplayName()
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.IncLogin(sess.Role.Name())
	c.logger.Info("device authenticated",
		slog.String("device", string(device)),
		slog.String("role", sess.Role.Name()),
		slog.String("mode", string(form.Mode)),
		slog.String("user", sess.CurrentUser))
	return sess, nil
}

// Logout clears the session and removes every persisted key
func (c *Controller) Logout(ctx context.Context, device model.DeviceID) (*model.Session, error) {
	if device == "" {
		return nil, model.ErrInvalidDevice
	}
	unlock := c.locks.lock(device)
	defer unlock()

	if err := c.storage.RemoveItems(ctx, device, PersistedKeys...); err != nil {
		return nil, fmt.Errorf("clear session: %w", err)
	}

	sess := model.NewSession()
	c.metrics.IncLogout()
	c.metrics.IncTransition(string(sess.View))
	c.logger.Info("device logged out", slog.String("device", string(device)))
	return sess, nil
}

// errNoChange aborts a transition without saving
var errNoChange = errors.New("no change")

// transition loads, mutates and saves a session under the device lock.
// changed is false when apply returned errNoChange and nothing was saved.
func (c *Controller) transition(ctx context.Context, device model.DeviceID, apply func(*model.Session) error) (*model.Session, bool, error) {
	if device == "" {
		return nil, false, model.ErrInvalidDevice
	}
	unlock := c.locks.lock(device)
	defer unlock()

	sess, err := c.load(ctx, device)
	if err != nil {
		return nil, false, err
	}

	from := sess.View
	if err := apply(sess); err != nil {
		if errors.Is(err, errNoChange) {
			return sess, false, nil
		}
		return nil, false, err
	}

	if err := c.save(ctx, device, sess); err != nil {
		return nil, false, err
	}

	c.metrics.IncTransition(string(sess.View))
	c.logger.Debug("session transition",
		slog.String("device", string(device)),
		slog.String("from", string(from)),
		slog.String("to", string(sess.View)),
		slog.String("role", model.RoleName(sess.Role)))
	return sess, true, nil
}

// load must be called with the device lock held
func (c *Controller) load(ctx context.Context, device model.DeviceID) (*model.Session, error) {
	items, err := c.storage.GetItems(ctx, device)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	sess, clean := decode(items)
	if !sess.Repair() && clean {
		return sess, nil
	}

	c.metrics.IncSessionRepair()
	c.logger.Warn("repaired persisted session",
		slog.String("device", string(device)),
		slog.Any("items", items),
		slog.String("view", string(sess.View)),
		slog.String("role", model.RoleName(sess.Role)))

	if len(items) == 0 {
		return sess, nil
	}
	if err := c.save(ctx, device, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// save must be called with the device lock held
func (c *Controller) save(ctx context.Context, device model.DeviceID, sess *model.Session) error {
	if err := c.storage.SetItems(ctx, device, encode(sess)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
