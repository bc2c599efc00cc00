// Package seed carga los datos de ejemplo cuando las colecciones están vacías.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/domain/profile"
	"pet-care-companion/internal/domain/reports"
	"pet-care-companion/internal/domain/tasks"
	"pet-care-companion/internal/platform/dates"
	"pet-care-companion/internal/platform/factory"
	"pet-care-companion/internal/platform/logger"
)

// Load inserta tareas, alertas, mascotas y perfil de ejemplo.
// Cada colección se siembra solo si está vacía, así que es seguro llamarlo en cada arranque.
func Load(ctx context.Context, repos factory.Repos, now time.Time, loc *time.Location, log logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}
	today := dates.Day(now, loc)

	n, err := seedPets(ctx, repos.Pets, now)
	if err != nil {
		return err
	}
	log.Debug("seed pets", map[string]any{"inserted": n})

	n, err = seedTasks(ctx, repos.Tasks, today, now)
	if err != nil {
		return err
	}
	log.Debug("seed tasks", map[string]any{"inserted": n})

	n, err = seedReports(ctx, repos.Reports, now)
	if err != nil {
		return err
	}
	log.Debug("seed reports", map[string]any{"inserted": n})

	if err := seedProfile(ctx, repos.Profile); err != nil {
		return err
	}

	log.Info("sample data ready", nil)
	return nil
}

func seedPets(ctx context.Context, repo pets.Repository, now time.Time) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed pets: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	rex := pets.Pet{
		ID:        "1",
		Name:      "Rex",
		Type:      pets.TypeDog,
		Breed:     "Labrador",
		BirthDate: "08/12/2020",
		ImageURL:  "www.image.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(ctx, rex); err != nil {
		return 0, fmt.Errorf("seed pets: %w", err)
	}
	return 1, nil
}

// Tasks devuelve las tareas de ejemplo: cuatro relativas a today y las de octubre 2024
// que alimentan el calendario y el historial.
func Tasks(today, now time.Time) []tasks.Task {
	oct := func(d int) time.Time { return time.Date(2024, time.October, d, 0, 0, 0, 0, time.UTC) }

	feeder := "Clean Rex's feeder and waterer with a little disinfectant and let it dry well."

	items := []tasks.Task{
		{ID: "1", Title: "Clean Rex's feeder", Description: feeder, Date: today, Time: "09:00", Pet: "Rex", Tags: []string{"Clean", "Weekly"}},
		{ID: "2", Title: "Groom Rex", Description: "Brush Rex's coat", Date: today.AddDate(0, 0, 1), Time: "16:30", Pet: "Rex", Tags: []string{"Grooming", "Weekly"}},
		{ID: "3", Title: "Vet appointment", Description: "Annual checkup and vaccinations", Date: today.AddDate(0, 0, 3), Pet: "Rex", Tags: []string{"Health", "Yearly"}},
		{ID: "4", Title: "Buy new toys", Description: "Get some interactive toys from the pet store", Date: today.AddDate(0, 0, 5), Pet: "Rex", Tags: []string{"Play", "Monthly"}},

		{ID: "5", Title: "Clean Rex's feeder", Description: feeder, Date: oct(4), Pet: "Rex", Tags: []string{"Clean", "Weekly"}, Completed: true},
		{ID: "6", Title: "Groom Rex", Description: "Brush Rex's coat", Date: oct(6), Pet: "Rex", Tags: []string{"Grooming", "Weekly"}},
		{ID: "7", Title: "Clean Rex's feeder", Description: feeder, Date: oct(8), Pet: "Rex", Tags: []string{"Clean", "Weekly"}, Completed: true},
		{ID: "8", Title: "Buy new toys", Description: "Get some interactive toys from the pet store", Date: oct(10), Pet: "Rex", Tags: []string{"Play", "Monthly"}, Completed: true},
		{ID: "9", Title: "Take Rex to the vet", Description: "Annual vaccination", Date: oct(16), Pet: "Rex", Tags: []string{"Health", "Yearly"}, Completed: true},
		{ID: "10", Title: "Buy new toys", Description: "Get some interactive toys from the pet store", Date: oct(20), Pet: "Rex", Tags: []string{"Play", "Monthly"}},
	}
	for i := range items {
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items
}

func seedTasks(ctx context.Context, repo tasks.Repository, today, now time.Time) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed tasks: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	items := Tasks(today, now)
	for _, t := range items {
		if err := repo.Create(ctx, t); err != nil {
			return 0, fmt.Errorf("seed tasks: %w", err)
		}
	}
	return len(items), nil
}

// Reports devuelve la alerta propia de Rex y las dos de la comunidad.
func Reports(now time.Time) []reports.Report {
	images := func() []string {
		return []string{reports.PlaceholderImage, reports.PlaceholderImage}
	}

	items := []reports.Report{
		{
			ID:          "1",
			Title:       "Rex is missing",
			Date:        "2025-02-20",
			Description: "Rex, Golden Retriever 3 years old, last seen in Simón Bolivar Park. He had a red bowtie and is very friendly",
			Location:    "Bogotá, Colombia",
			Pet:         reports.PetSnapshot{ID: "1", Name: "Rex", Type: "Golden Retriever", Age: "3 years"},
			Status:      reports.StatusMissing,
			IsOwner:     true,
			Images:      images(),
			Tags:        []string{},
		},
		{
			ID:          "2",
			Title:       "Max is missing",
			Date:        "2025-02-20",
			Description: "Max, Labrador Retriever 7 years old, last seen in Bosque San Carlos. He had a purple kerchief and he has an injury in his right leg",
			Location:    "Bogotá, Colombia",
			Pet:         reports.PetSnapshot{Name: "Max", Type: "Labrador Retriever", Age: "7 years"},
			Status:      reports.StatusMissing,
			Images:      images(),
			Tags:        []string{},
		},
		{
			ID:          "3",
			Title:       "Bella is missing",
			Date:        "2025-02-18",
			Description: "Bella, Poodle 2 years old, last seen near Central Park. She has a pink collar with a heart tag.",
			Location:    "Bogotá, Colombia",
			Pet:         reports.PetSnapshot{Name: "Bella", Type: "Poodle", Age: "2 years"},
			Status:      reports.StatusMissing,
			Images:      images(),
			Tags:        []string{},
		},
	}
	for i := range items {
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items
}

func seedReports(ctx context.Context, repo reports.Repository, now time.Time) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed reports: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	items := Reports(now)
	for _, r := range items {
		if err := repo.Create(ctx, r); err != nil {
			return 0, fmt.Errorf("seed reports: %w", err)
		}
	}
	return len(items), nil
}

func seedProfile(ctx context.Context, repo profile.Repository) error {
	_, err := repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, profile.ErrNotFound) {
		return fmt.Errorf("seed profile: %w", err)
	}

	return repo.Save(ctx, profile.Profile{
		Name:     "John Doe",
		Email:    "john@example.com",
		Phone:    "123-456-7890",
		ImageURL: "www.image.com",
	})
}
