package panels

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-console/internal/audit"
	"github.com/BruksfildServices01/salon-console/internal/logger"
	"github.com/BruksfildServices01/salon-console/internal/remote"
)

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotConfirmed = errors.New("deletion not confirmed")
	ErrUnsupported  = errors.New("operation not supported")
)

// Actor is the caller on whose behalf a panel talks to the backend.
type Actor struct {
	Token   string
	ID      string
	SalonID int64
}

// Store is the backend side of one panel.
type Store[T, F any, ID comparable] interface {
	List(ctx context.Context, a Actor) ([]T, error)
	Create(ctx context.Context, a Actor, form F) error
	Update(ctx context.Context, a Actor, id ID, form F) error
	Delete(ctx context.Context, a Actor, id ID) error
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

type Auditor interface {
	Dispatch(ev audit.Event)
}

// State is what the panel shows after an operation. A failed list leaves
// Items empty rather than stale.
type State[T any] struct {
	Items     []T    `json:"items"`
	Error     string `json:"error,omitempty"`
	ModalOpen bool   `json:"modal_open"`
}

// Panel drives list/create/update/delete for one resource. There is no
// optimistic update: every successful mutation is followed by a fresh List.
type Panel[T, F any, ID comparable] struct {
	entity string
	store  Store[T, F, ID]
	key    func(ID) string
	audit  Auditor
	log    *zap.Logger
}

func New[T, F any, ID comparable](
	entity string,
	store Store[T, F, ID],
	key func(ID) string,
	auditor Auditor,
	log *zap.Logger,
) *Panel[T, F, ID] {
	return &Panel[T, F, ID]{
		entity: entity,
		store:  store,
		key:    key,
		audit:  auditor,
		log:    logger.OrNop(log).With(zap.String("panel", entity)),
	}
}

func (p *Panel[T, F, ID]) Entity() string { return p.entity }

// List fetches the cards. On failure the state carries the message and
// the error is returned as well.
func (p *Panel[T, F, ID]) List(ctx context.Context, a Actor) (State[T], error) {
	items, err := p.store.List(ctx, a)
	if err != nil {
		p.log.Warn("list failed", zap.Error(err))
		return State[T]{Items: []T{}, Error: Message(err)}, err
	}
	if items == nil {
		items = []T{}
	}
	return State[T]{Items: items}, nil
}

// relist runs after a successful mutation. A failing list does not undo
// the mutation, so only the state reports it.
func (p *Panel[T, F, ID]) relist(ctx context.Context, a Actor) State[T] {
	st, _ := p.List(ctx, a)
	return st
}

func (p *Panel[T, F, ID]) Create(ctx context.Context, a Actor, form F) (State[T], error) {
	if err := Validate(form); err != nil {
		return State[T]{ModalOpen: true, Error: err.Error()}, err
	}
	if err := p.store.Create(ctx, a, form); err != nil {
		err = mapConflict(err)
		return State[T]{ModalOpen: true, Error: Message(err)}, err
	}

	p.record(a, "created", "", form)
	return p.relist(ctx, a), nil
}

func (p *Panel[T, F, ID]) Update(ctx context.Context, a Actor, id ID, form F) (State[T], error) {
	if err := Validate(form); err != nil {
		return State[T]{ModalOpen: true, Error: err.Error()}, err
	}
	if err := p.store.Update(ctx, a, id, form); err != nil {
		err = mapConflict(err)
		return State[T]{ModalOpen: true, Error: Message(err)}, err
	}

	p.record(a, "updated", p.key(id), form)
	return p.relist(ctx, a), nil
}

// Delete asks c first; a declined confirmation changes nothing.
func (p *Panel[T, F, ID]) Delete(ctx context.Context, a Actor, id ID, c Confirmer) (State[T], error) {
	if c == nil || !c.Confirm(ctx, "Delete this "+p.entity+"?") {
		return State[T]{}, ErrNotConfirmed
	}
	if err := p.store.Delete(ctx, a, id); err != nil {
		return State[T]{Error: Message(err)}, err
	}

	p.record(a, "deleted", p.key(id), nil)
	return p.relist(ctx, a), nil
}

func (p *Panel[T, F, ID]) record(a Actor, verb, entityID string, meta any) {
	if p.audit == nil {
		return
	}
	p.audit.Dispatch(audit.Event{
		SalonID:  a.SalonID,
		ActorID:  a.ID,
		Action:   p.entity + "_" + verb,
		Entity:   p.entity,
		EntityID: entityID,
		Metadata: meta,
	})
}

func mapConflict(err error) error {
	if remote.StatusOf(err) == http.StatusConflict {
		return ErrDuplicateKey
	}
	return err
}

// Message is the text shown to the user for err.
func Message(err error) string {
	var ve *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicateKey), errors.Is(err, ErrNotConfirmed), errors.Is(err, ErrUnsupported):
		return err.Error()
	case errors.As(err, &ve):
		return ve.Error()
	default:
		return remote.MessageOf(err)
	}
}
