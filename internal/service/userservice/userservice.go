package userservice

import (
	"context"
	"strings"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/GlebRadaev/vending/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

const (
	OperationSet      = "set"
	OperationAdd      = "add"
	OperationSubtract = "subtract"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByRFID(ctx context.Context, rfidTag string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Debit(ctx context.Context, id string, amount int64) (*domain.User, error)
	Credit(ctx context.Context, id string, amount int64) (*domain.User, error)
	SetCredits(ctx context.Context, id string, credits int64) (*domain.User, error)
}

type Service struct {
	repo  Repo
	newID func() string
}

func New(repo Repo) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

func (s *Service) Create(ctx context.Context, name, rfidTag string, credits int64) (*domain.User, error) {
	name, rfidTag = strings.TrimSpace(name), strings.TrimSpace(rfidTag)
	if name == "" {
		return nil, domain.InvalidInput("name", "name is required")
	}
	if rfidTag == "" {
		return nil, domain.InvalidInput("rfid_tag", "rfid tag is required")
	}
	if credits < 0 {
		return nil, domain.InvalidInput("credits", "credits must not be negative")
	}

	existing, err := s.repo.FindByRFID(ctx, rfidTag)
	if err != nil {
		return nil, domain.StoreUnavailable("find user by rfid", err)
	}
	if existing != nil {
		zap.L().Info("rfid tag already registered", zap.String("rfid_tag", rfidTag))
		return nil, domain.AlreadyExists("user", "rfid tag already registered")
	}

	user, err := s.repo.Create(ctx, &domain.User{
		ID:      s.newID(),
		Name:    name,
		RFIDTag: rfidTag,
		Credits: credits,
	})
	if pg.IsUniqueViolation(err) {
		return nil, domain.AlreadyExists("user", "rfid tag already registered")
	}
	if err != nil {
		return nil, domain.StoreUnavailable("create user", err)
	}
	zap.L().Info("user created", zap.String("user_id", user.ID))
	return user, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.StoreUnavailable("find user", err)
	}
	if user == nil {
		return nil, domain.NotFound("user", id)
	}
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.StoreUnavailable("list users", err)
	}
	return users, nil
}

// AdjustCredits changes a balance by operation. A subtraction larger than the
// balance is refused and never leaves a negative balance.
func (s *Service) AdjustCredits(ctx context.Context, id string, amount int64, operation string) (*domain.User, error) {
	if amount < 0 {
		return nil, domain.InvalidInput("credits", "credits must not be negative")
	}

	var (
		user *domain.User
		err  error
	)
	operation = strings.ToLower(strings.TrimSpace(operation))
	switch operation {
	case OperationSet, "":
		user, err = s.repo.SetCredits(ctx, id, amount)
	case OperationAdd:
		user, err = s.repo.Credit(ctx, id, amount)
	case OperationSubtract:
		return s.subtract(ctx, id, amount)
	default:
		return nil, domain.InvalidInput("operation", "operation must be one of set, add, subtract")
	}
	if err != nil {
		return nil, domain.StoreUnavailable("adjust credits", err)
	}
	if user == nil {
		return nil, domain.NotFound("user", id)
	}
	zap.L().Info("credits adjusted", zap.String("user_id", id), zap.String("operation", operation), zap.Int64("credits", user.Credits))
	return user, nil
}

func (s *Service) subtract(ctx context.Context, id string, amount int64) (*domain.User, error) {
	current, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Credits < amount {
		return nil, domain.InsufficientFunds(id, amount-current.Credits)
	}

	user, err := s.repo.Debit(ctx, id, amount)
	if err != nil {
		return nil, domain.StoreUnavailable("debit user", err)
	}
	if user == nil {
		return nil, domain.Conflict("user", id)
	}
	zap.L().Info("credits adjusted", zap.String("user_id", id), zap.String("operation", OperationSubtract), zap.Int64("credits", user.Credits))
	return user, nil
}
