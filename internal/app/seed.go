package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/quantumhotel/hotel-service/internal/models"
	"github.com/quantumhotel/hotel-service/internal/repositories"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

// SystemUserID owns the decisions taken by automated maintenance, such as
// retiring stale reservations.
var SystemUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

const systemUserEmail = "system@quantumhotel.example"

// EnsureSystemUser makes sure the maintenance identity exists. Runs on every
// boot, independent of demo seeding.
func EnsureSystemUser(ctx context.Context, userRepo repositories.UserRepository) error {
	existing, err := userRepo.GetByID(ctx, SystemUserID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return userRepo.Create(ctx, &models.User{
		ID:    SystemUserID,
		Email: systemUserEmail,
		Name:  "Reservation Maintenance",
		Role:  models.RoleAdmin,
	})
}

// SeedDemoData loads a small demo catalog plus a staff and a guest account.
// It is a no-op when the catalog already has categories.
func SeedDemoData(
	ctx context.Context,
	catRepo repositories.CategoryRepository,
	unitRepo repositories.UnitRepository,
	amenityRepo repositories.AmenityRepository,
	userRepo repositories.UserRepository,
) error {
	existing, err := catRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		utils.Logger.Info("Catalog already seeded; skipping demo data")
		return nil
	}

	categories := []struct {
		name     string
		capacity int
		twinBeds bool
		price    int64
		rooms    []int
	}{
		{"Single Classic", 1, false, 9000, []int{101, 102, 103}},
		{"Double Deluxe", 2, false, 14000, []int{201, 202, 203, 204}},
		{"Twin Garden", 2, true, 13000, []int{301, 302}},
		{"Family Suite", 4, true, 24000, []int{401, 402}},
	}
	for _, c := range categories {
		cat := &models.AccommodationCategory{
			ID:           uuid.New(),
			Name:         c.name,
			UnitsNumber:  len(c.rooms),
			Capacity:     c.capacity,
			TwinBeds:     c.twinBeds,
			PriceCents:   c.price,
			CheckInTime:  "15:00",
			CheckOutTime: "11:00",
		}
		if err := catRepo.Create(ctx, cat); err != nil {
			return err
		}
		units := make([]models.AccommodationUnit, 0, len(c.rooms))
		for _, room := range c.rooms {
			units = append(units, models.AccommodationUnit{
				ID:         uuid.New(),
				CategoryID: cat.ID,
				RoomNumber: room,
				Floor:      room / 100,
				IsCleaned:  true,
			})
		}
		if err := unitRepo.CreateMany(ctx, units); err != nil {
			return err
		}
	}

	amenities := []models.Amenity{
		{ID: uuid.New(), Name: "Breakfast", PriceCents: 1500, Description: "Buffet breakfast per person per day"},
		{ID: uuid.New(), Name: "Parking", PriceCents: 1200, Description: "Covered parking spot per day"},
		{ID: uuid.New(), Name: "Spa access", PriceCents: 5000, Description: "Full-day spa and pool access"},
		{ID: uuid.New(), Name: "Airport transfer", PriceCents: 3500, Description: "One-way airport shuttle"},
	}
	for i := range amenities {
		if err := amenityRepo.Create(ctx, &amenities[i]); err != nil {
			return err
		}
	}

	phone := "+15550100"
	demoUsers := []models.User{
		{ID: uuid.New(), Email: "frontdesk@quantumhotel.example", Name: "Front Desk", Role: models.RoleStaff},
		{ID: uuid.New(), Email: "guest@example.com", Name: "Demo Guest", PhoneNumber: &phone, Role: models.RoleGuest},
	}
	for i := range demoUsers {
		if err := userRepo.Create(ctx, &demoUsers[i]); err != nil {
			return err
		}
	}

	utils.Logger.Info("Seeded demo catalog and accounts")
	return nil
}
