package service

import (
	"context"
	"log"
	"time"

	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/events"
	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/middleware"
	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/models"
	"github.com/Sokolov-Vladisl/Aston-HW-6/internal/repository"
)

// UserStore is the persistence contract the lifecycle manager depends on.
// Implementations report repository.ErrNotFound / repository.ErrEmailExists
// as typed failures.
type UserStore interface {
	ExistsByEmail(email string) (bool, error)
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	List() ([]models.User, error)
	Update(user *models.User) error
	Delete(id int64) error
}

// EventPublisher publishes user lifecycle events to the event channel.
type EventPublisher interface {
	Publish(ctx context.Context, event events.UserEvent) error
}

// UserCache is an optional read cache for single-user lookups.
type UserCache interface {
	Get(ctx context.Context, id int64) (*models.User, bool)
	Set(ctx context.Context, user *models.User)
	Invalidate(ctx context.Context, id int64)
}

// UserService performs user lifecycle operations against the store and emits
// an event after each successful create and delete. The store mutation always
// commits before the event is published; a publish failure is logged and
// never rolls back or fails the operation.
type UserService struct {
	store     UserStore
	cache     UserCache
	publisher EventPublisher
}

func NewUserService(store UserStore, cache UserCache, publisher EventPublisher) *UserService {
	return &UserService{store: store, cache: cache, publisher: publisher}
}

func (s *UserService) CreateUser(ctx context.Context, name, email string, age int) (*models.User, error) {
	exists, err := s.store.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrEmailExists
	}

	now := time.Now().UTC()
	user := &models.User{
		Name:      name,
		Email:     email,
		Age:       age,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(user); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.UserCreated, user)
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if s.cache != nil {
		if user, ok := s.cache.Get(ctx, id); ok {
			return user, nil
		}
	}

	user, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, user)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.List()
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, name, email string, age int) (*models.User, error) {
	user, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}

	// The uniqueness check only runs when the email actually changes.
	if email != user.Email {
		exists, err := s.store.ExistsByEmail(email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, repository.ErrEmailExists
		}
	}

	user.Name = name
	user.Email = email
	user.Age = age
	user.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(user); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}

	// No event on update: notifications are sent for creation and deletion
	// only.
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	// Snapshot before deletion; the event carries the record as it was.
	user, err := s.store.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(id); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}

	s.publishEvent(ctx, events.UserDeleted, user)
	return nil
}

func (s *UserService) publishEvent(ctx context.Context, eventType events.EventType, user *models.User) {
	event := events.UserEvent{
		EventType:     eventType,
		UserID:        user.ID,
		UserEmail:     user.Email,
		UserName:      user.Name,
		Timestamp:     time.Now().UTC(),
		CorrelationID: middleware.CorrelationIDFromContext(ctx),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// The user record is already committed; losing the notification is
		// tolerated, losing the write is not.
		log.Printf("Failed to publish %s event for user %d: %v", eventType, user.ID, err)
	}
}
