package db

import (
	"fmt"

	types "github.com/yungbote/bewear-backend/internal/domain"
	"github.com/yungbote/bewear-backend/internal/platform/logger"
	"github.com/yungbote/bewear-backend/internal/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "bewear", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		log.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Category{},
		&types.Product{},
		&types.ProductVariant{},
		&types.ShippingAddress{},
		&types.Cart{},
		&types.CartItem{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	fks := []struct {
		name string
		stmt string
	}{
		{"fk_user_token_user_id", `
			ALTER TABLE "user_token"
			ADD CONSTRAINT "fk_user_token_user_id"
			FOREIGN KEY ("user_id")
			REFERENCES "user"("id")
			ON DELETE CASCADE`},
		{"fk_product_category_id", `
			ALTER TABLE "product"
			ADD CONSTRAINT "fk_product_category_id"
			FOREIGN KEY ("category_id")
			REFERENCES "category"("id")
			ON DELETE SET NULL`},
		{"fk_product_variant_product_id", `
			ALTER TABLE "product_variant"
			ADD CONSTRAINT "fk_product_variant_product_id"
			FOREIGN KEY ("product_id")
			REFERENCES "product"("id")
			ON DELETE CASCADE`},
		{"fk_shipping_address_user_id", `
			ALTER TABLE "shipping_address"
			ADD CONSTRAINT "fk_shipping_address_user_id"
			FOREIGN KEY ("user_id")
			REFERENCES "user"("id")
			ON DELETE CASCADE`},
		{"fk_cart_user_id", `
			ALTER TABLE "cart"
			ADD CONSTRAINT "fk_cart_user_id"
			FOREIGN KEY ("user_id")
			REFERENCES "user"("id")
			ON DELETE CASCADE`},
		{"fk_cart_shipping_address_id", `
			ALTER TABLE "cart"
			ADD CONSTRAINT "fk_cart_shipping_address_id"
			FOREIGN KEY ("shipping_address_id")
			REFERENCES "shipping_address"("id")
			ON DELETE SET NULL`},
		{"fk_cart_item_cart_id", `
			ALTER TABLE "cart_item"
			ADD CONSTRAINT "fk_cart_item_cart_id"
			FOREIGN KEY ("cart_id")
			REFERENCES "cart"("id")
			ON DELETE CASCADE`},
		{"fk_cart_item_product_variant_id", `
			ALTER TABLE "cart_item"
			ADD CONSTRAINT "fk_cart_item_product_variant_id"
			FOREIGN KEY ("product_variant_id")
			REFERENCES "product_variant"("id")
			ON DELETE CASCADE`},
	}
	for _, fk := range fks {
		var exists bool
		if err := s.db.Raw(`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)`, fk.name).Scan(&exists).Error; err != nil {
			return fmt.Errorf("failed to check constraint %s: %w", fk.name, err)
		}
		if exists {
			continue
		}
		if err := s.db.Exec(fk.stmt).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", fk.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
