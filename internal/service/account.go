package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/lieferspatz/internal/events"
	"github.com/Skotchmaster/lieferspatz/internal/hash"
	"github.com/Skotchmaster/lieferspatz/internal/logging"
	"github.com/Skotchmaster/lieferspatz/internal/models"
	"github.com/Skotchmaster/lieferspatz/internal/repo"
)

// AccountService registers customers and restaurants. Accounts are never
// updated or deleted once created.
type AccountService struct {
	Repo   *repo.GormRepo
	Events events.Publisher

	// CustomerStartBalance is credited to every new customer wallet.
	CustomerStartBalance decimal.Decimal
}

type NewCustomer struct {
	FirstName string
	LastName  string
	Address   string
	ZipCode   string
	Password  string
}

type NewRestaurant struct {
	Name        string
	Address     string
	Description string
	Password    string
}

func (s *AccountService) CreateCustomer(ctx context.Context, in NewCustomer) (uint, error) {
	l := logging.FromContext(ctx).With("svc", "account.create_customer")

	if in.FirstName == "" || in.LastName == "" {
		return 0, fmt.Errorf("%w: first and last name required", ErrValidation)
	}
	if in.Password == "" {
		return 0, fmt.Errorf("%w: password required", ErrValidation)
	}

	pwHash, err := hash.HashPassword(in.Password)
	if err != nil {
		l.Error("create_customer_error", "reason", "cannot hash the password", "error", err)
		return 0, err
	}

	customer := models.Customer{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Address:       in.Address,
		ZipCode:       in.ZipCode,
		PasswordHash:  pwHash,
		WalletBalance: s.CustomerStartBalance,
	}
	if err := s.Repo.CreateCustomer(ctx, &customer); err != nil {
		l.Error("create_customer_error", "reason", "db_error", "error", err)
		return 0, err
	}

	publish(ctx, s.Events, events.TopicCustomers, customer.ID, events.New(events.TypeCustomerRegistered, map[string]any{
		"customer_id": customer.ID,
		"zip_code":    customer.ZipCode,
	}))

	l.Info("create_customer_success", "customer_id", customer.ID)
	return customer.ID, nil
}

// AuthenticateCustomer matches first and last name exactly and checks the
// password against every customer carrying that name.
func (s *AccountService) AuthenticateCustomer(ctx context.Context, firstName, lastName, password string) (uint, error) {
	l := logging.FromContext(ctx).With("svc", "account.login_customer")

	candidates, err := s.Repo.FindCustomersByName(ctx, firstName, lastName)
	if err != nil {
		l.Error("login_error", "reason", "db_error", "error", err)
		return 0, err
	}
	for _, c := range candidates {
		if hash.CheckPassword(c.PasswordHash, password) {
			publish(ctx, s.Events, events.TopicCustomers, c.ID, events.New(events.TypeCustomerLoggedIn, map[string]any{
				"customer_id": c.ID,
			}))
			return c.ID, nil
		}
	}

	l.Warn("login_failed", "reason", "invalid credentials", "candidates", len(candidates))
	return 0, ErrInvalidCredentials
}

func (s *AccountService) CreateRestaurant(ctx context.Context, in NewRestaurant) (uint, error) {
	l := logging.FromContext(ctx).With("svc", "account.create_restaurant")

	if in.Name == "" {
		return 0, fmt.Errorf("%w: name required", ErrValidation)
	}
	if in.Password == "" {
		return 0, fmt.Errorf("%w: password required", ErrValidation)
	}

	pwHash, err := hash.HashPassword(in.Password)
	if err != nil {
		l.Error("create_restaurant_error", "reason", "cannot hash the password", "error", err)
		return 0, err
	}

	restaurant := models.Restaurant{
		Name:          in.Name,
		Address:       in.Address,
		Description:   in.Description,
		PasswordHash:  pwHash,
		WalletBalance: decimal.Zero,
	}
	if err := s.Repo.CreateRestaurant(ctx, &restaurant); err != nil {
		l.Error("create_restaurant_error", "reason", "db_error", "error", err)
		return 0, err
	}

	publish(ctx, s.Events, events.TopicRestaurants, restaurant.ID, events.New(events.TypeRestaurantRegistered, map[string]any{
		"restaurant_id": restaurant.ID,
		"name":          restaurant.Name,
	}))

	l.Info("create_restaurant_success", "restaurant_id", restaurant.ID)
	return restaurant.ID, nil
}

func (s *AccountService) AuthenticateRestaurant(ctx context.Context, name, password string) (uint, error) {
	l := logging.FromContext(ctx).With("svc", "account.login_restaurant")

	candidates, err := s.Repo.FindRestaurantsByName(ctx, name)
	if err != nil {
		l.Error("login_error", "reason", "db_error", "error", err)
		return 0, err
	}
	for _, r := range candidates {
		if hash.CheckPassword(r.PasswordHash, password) {
			return r.ID, nil
		}
	}

	l.Warn("login_failed", "reason", "invalid credentials")
	return 0, ErrInvalidCredentials
}
