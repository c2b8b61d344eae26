package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/store"
)

// demoSpots are the vacation spots loaded by the -seed flag.
var demoSpots = []struct {
	name     string
	lat, lon float64
}{
	{"Lisbon", 38.7223, -9.1393},
	{"Kyoto", 35.0116, 135.7681},
	{"Reykjavik", 64.1466, -21.9426},
	{"Cape Town", -33.9249, 18.4241},
	{"Queenstown", -45.0312, 168.6626},
	{"Banff", 51.1784, -115.5708},
	{"Santorini", 36.3932, 25.4615},
	{"Cusco", -13.5319, -71.9675},
	{"Hoi An", 15.8801, 108.3380},
	{"Tromso", 69.6496, 18.9560},
}

// runSeed loads demo fixtures: an admin account, ten demo users, ten
// vacation spots, and one to three wishlist entries per user. Safe to run
// only against an empty, migrated database; duplicate rows fail the run.
func runSeed(ctx context.Context, app *application) error {
	adminRoleID, err := app.roleResolver.ResolveID(ctx, domain.RoleAdmin)
	if err != nil {
		if errors.Is(err, store.ErrRoleNotFound) {
			return fmt.Errorf("roles must be migrated before seeding: %w", err)
		}
		return err
	}
	userRoleID, err := app.roleResolver.ResolveID(ctx, domain.RoleUser)
	if err != nil {
		return err
	}

	admin, err := domain.NewUser("admin", "admin", adminRoleID)
	if err != nil {
		return err
	}
	if err := app.userStore.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	users := make([]*domain.User, 0, 10)
	for i := 1; i <= 10; i++ {
		user, err := domain.NewUser(fmt.Sprintf("demo%02d", i), fmt.Sprintf("demo%02d-pass", i), userRoleID)
		if err != nil {
			return err
		}
		if err := app.userStore.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", user.Login, err)
		}
		users = append(users, user)
	}

	spots := make([]*domain.VacationSpot, 0, len(demoSpots))
	for _, s := range demoSpots {
		spot, err := domain.NewVacationSpot(s.name, s.lat, s.lon)
		if err != nil {
			return err
		}
		if err := app.spotStore.Create(ctx, spot); err != nil {
			return fmt.Errorf("failed to seed vacation spot %q: %w", s.name, err)
		}
		spots = append(spots, spot)
	}

	for _, user := range users {
		perm := rand.Perm(len(spots))
		count := 1 + rand.Intn(3)

		for _, idx := range perm[:count] {
			entry, err := domain.NewWishlist(user.ID, spots[idx].ID)
			if err != nil {
				return err
			}
			if err := app.wishlistStore.Create(ctx, entry); err != nil {
				return fmt.Errorf("failed to seed wishlist for %q: %w", user.Login, err)
			}
		}
	}

	app.logger.Info("Demo fixtures loaded",
		"users", len(users)+1,
		"vacation_spots", len(spots))
	return nil
}
