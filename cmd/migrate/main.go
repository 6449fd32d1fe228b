package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"cloud.google.com/go/spanner"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/shopfront-service/internal/app/shop/repo"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/seed_catalog"
	"github.com/light-bringer/shopfront-service/internal/pkg/committer"
	"github.com/light-bringer/shopfront-service/internal/pkg/logger"
	"github.com/light-bringer/shopfront-service/migrations"
)

var (
	projectID  = flag.String("project", getEnvOrDefault("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	instanceID = flag.String("instance", getEnvOrDefault("SPANNER_INSTANCE_ID", "dev-instance"), "Spanner instance ID")
	databaseID = flag.String("database", getEnvOrDefault("SPANNER_DATABASE_ID", "shopfront-db"), "Spanner database ID")
	seed       = flag.Bool("seed", false, "Write the sample catalog after migrating")
)

func main() {
	flag.Parse()

	log := logger.Must(getEnvOrDefault("APP_ENV", "development"))
	defer func() { _ = log.Sync() }()

	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		log.Info("using Spanner emulator", zap.String("host", host))
	}

	if err := run(context.Background(), log); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("migrations completed")
}

func run(ctx context.Context, log *zap.Logger) error {
	if err := ensureInstance(ctx, log); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}
	if err := ensureDatabase(ctx, log); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}
	if err := applyMigrations(ctx, log); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	if *seed {
		if err := seedCatalog(ctx, log); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}
	return nil
}

func databasePath() string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s", *projectID, *instanceID, *databaseID)
}

func ensureInstance(ctx context.Context, log *zap.Logger) error {
	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	name := fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID)
	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: name})
	if err == nil {
		log.Info("instance exists", zap.String("instance", name))
		return nil
	}
	if status.Code(err) != codes.NotFound {
		log.Warn("unexpected error checking instance", zap.Error(err))
		return nil
	}

	op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     fmt.Sprintf("projects/%s", *projectID),
		InstanceId: *instanceID,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", *projectID),
			DisplayName: "Development Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		log.Warn("instance creation did not finish cleanly", zap.Error(err))
	}

	log.Info("instance created", zap.String("instance", name))
	return nil
}

func ensureDatabase(ctx context.Context, log *zap.Logger) error {
	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	_, err = adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: databasePath()})
	if err == nil {
		log.Info("database exists", zap.String("database", databasePath()))
		return nil
	}
	if status.Code(err) != codes.NotFound {
		if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
			log.Warn("proceeding with database in emulator mode", zap.Error(err))
			return nil
		}
		return fmt.Errorf("failed to check database: %w", err)
	}

	op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", *databaseID),
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}

	log.Info("database created", zap.String("database", databasePath()))
	return nil
}

func applyMigrations(ctx context.Context, log *zap.Logger) error {
	all, err := migrations.All()
	if err != nil {
		return err
	}

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	for _, m := range all {
		if len(m.Statements) == 0 {
			continue
		}

		op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   databasePath(),
			Statements: m.Statements,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", m.Name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", m.Name, err)
		}

		log.Info("migration applied", zap.String("file", m.Name), zap.Int("statements", len(m.Statements)))
	}
	return nil
}

func seedCatalog(ctx context.Context, log *zap.Logger) error {
	client, err := spanner.NewClient(ctx, databasePath())
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	interactor := seed_catalog.NewInteractor(repo.NewSpannerCatalog(client), committer.NewCommitter(client), log)
	applied, err := interactor.Execute(ctx, &seed_catalog.Request{Products: repo.SeedProducts()})
	if err != nil {
		return err
	}

	log.Info("sample catalog written", zap.Int("mutations", applied))
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
