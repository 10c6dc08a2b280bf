package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rgalvan/jobtracker-api/internal/domain"
	"github.com/rgalvan/jobtracker-api/internal/repository/postgres"
	"github.com/rgalvan/jobtracker-api/internal/service"
	"github.com/rgalvan/jobtracker-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationService_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	appService := service.NewApplicationService(repos.Application)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("owner comes from the caller identity", func(t *testing.T) {
		app, err := appService.Create(ctx, owner.ID, service.CreateApplicationInput{
			CompanyName: "Acme Corp",
			JobTitle:    "Dev",
		})
		require.NoError(t, err)
		assert.Equal(t, owner.ID, app.UserID)
	})

	t.Run("dateApplied defaults to today", func(t *testing.T) {
		app, err := appService.Create(ctx, owner.ID, service.CreateApplicationInput{
			CompanyName: "Acme Corp",
			JobTitle:    "Dev",
		})
		require.NoError(t, err)

		got := time.Time(app.DateApplied)
		now := time.Now()
		assert.Equal(t, now.Year(), got.Year())
		assert.Equal(t, now.YearDay(), got.YearDay())
	})

	t.Run("explicit dateApplied is preserved exactly", func(t *testing.T) {
		date := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
		app, err := appService.Create(ctx, owner.ID, service.CreateApplicationInput{
			CompanyName: "Acme Corp",
			JobTitle:    "Dev",
			DateApplied: &date,
		})
		require.NoError(t, err)
		assert.Equal(t, date, time.Time(app.DateApplied))
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := appService.Create(ctx, owner.ID, service.CreateApplicationInput{
			CompanyName: "Acme Corp",
			JobTitle:    "Dev",
			Status:      "DAYDREAMING",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestApplicationService_GetOwned(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	appService := service.NewApplicationService(repos.Application)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	app := testutil.NewApplicationBuilder().WithOwner(alice).Build(t, testDB.DB)

	t.Run("owner can read their record", func(t *testing.T) {
		got, err := appService.GetOwned(ctx, alice.ID, app.ID)
		require.NoError(t, err)
		assert.Equal(t, app.ID, got.ID)
	})

	t.Run("another user's record is forbidden, not missing", func(t *testing.T) {
		_, err := appService.GetOwned(ctx, bob.ID, app.ID)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
		assert.NotErrorIs(t, err, domain.ErrApplicationNotFound)
	})

	t.Run("nonexistent record is missing, not forbidden", func(t *testing.T) {
		_, err := appService.GetOwned(ctx, alice.ID, uuid.New())
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
		assert.NotErrorIs(t, err, domain.ErrNotOwner)
	})
}

func TestApplicationService_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	appService := service.NewApplicationService(repos.Application)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	strPtr := func(s string) *string { return &s }
	statusPtr := func(s domain.ApplicationStatus) *domain.ApplicationStatus { return &s }

	newApp := func() *domain.JobApplication {
		return testutil.NewApplicationBuilder().
			WithOwner(alice).
			WithCompanyName("Acme Corp").
			WithJobTitle("Backend Engineer").
			WithStatus(domain.StatusApplied).
			WithNotes("initial").
			Build(t, testDB.DB)
	}

	t.Run("partial update leaves omitted fields unchanged", func(t *testing.T) {
		app := newApp()

		got, err := appService.Update(ctx, alice.ID, app.ID, domain.ApplicationUpdate{
			Status: statusPtr(domain.StatusInterviewing),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInterviewing, got.Status)
		assert.Equal(t, "Acme Corp", got.CompanyName)
		assert.Equal(t, "Backend Engineer", got.JobTitle)
		assert.Equal(t, "initial", got.Notes)

		// Persisted, not just returned
		stored, err := appService.GetOwned(ctx, alice.ID, app.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInterviewing, stored.Status)
	})

	t.Run("empty update is a content no-op", func(t *testing.T) {
		app := newApp()

		got, err := appService.Update(ctx, alice.ID, app.ID, domain.ApplicationUpdate{})
		require.NoError(t, err)
		assert.Equal(t, app.CompanyName, got.CompanyName)
		assert.Equal(t, app.JobTitle, got.JobTitle)
		assert.Equal(t, app.Status, got.Status)
		assert.Equal(t, app.Notes, got.Notes)
	})

	t.Run("updating someone else's record is forbidden", func(t *testing.T) {
		app := newApp()

		_, err := appService.Update(ctx, bob.ID, app.ID, domain.ApplicationUpdate{
			CompanyName: strPtr("Hijacked Inc"),
		})
		assert.ErrorIs(t, err, domain.ErrNotOwner)

		stored, err := appService.GetOwned(ctx, alice.ID, app.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", stored.CompanyName)
	})

	t.Run("updating a nonexistent record is not found", func(t *testing.T) {
		_, err := appService.Update(ctx, alice.ID, uuid.New(), domain.ApplicationUpdate{
			CompanyName: strPtr("Ghost Corp"),
		})
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})

	t.Run("invalid status is rejected before any lookup", func(t *testing.T) {
		app := newApp()

		_, err := appService.Update(ctx, alice.ID, app.ID, domain.ApplicationUpdate{
			Status: statusPtr("NOT_A_STATUS"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestApplicationService_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	appService := service.NewApplicationService(repos.Application)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	app := testutil.NewApplicationBuilder().WithOwner(alice).Build(t, testDB.DB)

	t.Run("deleting someone else's record is forbidden", func(t *testing.T) {
		err := appService.Delete(ctx, bob.ID, app.ID)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("owner can delete", func(t *testing.T) {
		require.NoError(t, appService.Delete(ctx, alice.ID, app.ID))

		_, err := appService.GetOwned(ctx, alice.ID, app.ID)
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})

	t.Run("deleting a nonexistent record is not found", func(t *testing.T) {
		err := appService.Delete(ctx, alice.ID, uuid.New())
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})
}

func TestApplicationService_ListOwned(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	appService := service.NewApplicationService(repos.Application)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	testutil.NewApplicationBuilder().WithOwner(alice).Build(t, testDB.DB)
	testutil.NewApplicationBuilder().WithOwner(alice).Build(t, testDB.DB)
	testutil.NewApplicationBuilder().WithOwner(bob).Build(t, testDB.DB)

	apps, err := appService.ListOwned(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 2)
	for _, app := range apps {
		assert.Equal(t, alice.ID, app.UserID)
	}
}

func TestApplicationService_DeleteAllForOwner(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	appService := service.NewApplicationService(repos.Application)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	testutil.NewApplicationBuilder().WithOwner(alice).Build(t, testDB.DB)
	testutil.NewApplicationBuilder().WithOwner(alice).Build(t, testDB.DB)
	testutil.NewApplicationBuilder().WithOwner(bob).Build(t, testDB.DB)

	require.NoError(t, appService.DeleteAllForOwner(ctx, alice.ID))

	apps, err := appService.ListOwned(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, apps)

	apps, err = appService.ListOwned(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}
