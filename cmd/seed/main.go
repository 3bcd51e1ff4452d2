package main

import (
	"context"
	"fmt"
	"helpmynew-service/internal/app/config"
	"helpmynew-service/internal/app/drivers/database"
	"helpmynew-service/internal/app/drivers/logger"
	"helpmynew-service/internal/app/services/core/categories"
	"helpmynew-service/internal/app/services/core/providers"
	"helpmynew-service/internal/app/services/core/users"
	"helpmynew-service/internal/app/services/shared/redis"
	"helpmynew-service/internal/pkg/utils"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the Help My New MongoDB database",
	}
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(usersCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Upsert the default service categories and drop the cached list",
		RunE: func(cmd *cobra.Command, args []string) error {
			driverConfig := config.NewDriverConfig()
			internalConfig := config.NewInternalConfig()
			log := logger.NewLogrusLogger(driverConfig, internalConfig)

			timeout, _ := cmd.Flags().GetDuration("timeout")
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			mongoClient := database.NewMongoDB(driverConfig)
			defer mongoClient.Disconnect(context.Background())
			redisClient := database.NewRedisClient(driverConfig)
			defer redisClient.Close()

			categoryRepository := categories.NewCategoryMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
			if err := categoryRepository.EnsureIndexes(ctx); err != nil {
				return err
			}
			categoryUsecase := categories.NewCategoryUsecase(categoryRepository, redis.NewRedisRepository(redisClient), internalConfig, zap.NewNop())

			count, err := categoryUsecase.Seed(ctx)
			if err != nil {
				return err
			}
			log.WithField("count", count).Info("Categories seeded")
			return nil
		},
	}
	cmd.Flags().Duration("timeout", 30*time.Second, "Overall timeout for the seed run")
	return cmd
}

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Upsert one demo account per role, list the demo provider and print a token for each",
		RunE: func(cmd *cobra.Command, args []string) error {
			driverConfig := config.NewDriverConfig()
			internalConfig := config.NewInternalConfig()
			log := logger.NewLogrusLogger(driverConfig, internalConfig)

			timeout, _ := cmd.Flags().GetDuration("timeout")
			ttl, _ := cmd.Flags().GetDuration("token-ttl")
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			mongoClient := database.NewMongoDB(driverConfig)
			defer mongoClient.Disconnect(context.Background())

			userRepository := users.NewUserMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
			if err := userRepository.EnsureIndexes(ctx); err != nil {
				return err
			}
			seeded, err := users.SeedDemoUsers(ctx, userRepository)
			if err != nil {
				return err
			}

			providerRepository := providers.NewProviderMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
			if err := providerRepository.EnsureIndexes(ctx); err != nil {
				return err
			}
			profiles, err := providers.SeedDemoProfiles(ctx, providerRepository, seeded)
			if err != nil {
				return err
			}
			log.WithField("profiles", profiles).Info("Demo provider profiles seeded")
			for _, user := range seeded {
				token, err := utils.GenerateJWT(user.UserID, internalConfig.JWT.Secret, ttl)
				if err != nil {
					return err
				}
				log.WithFields(logrus.Fields{
					"user_id": user.UserID,
					"role":    user.Role,
					"token":   token,
				}).Info("Demo user seeded")
			}
			return nil
		},
	}
	cmd.Flags().Duration("timeout", 30*time.Second, "Overall timeout for the seed run")
	cmd.Flags().Duration("token-ttl", 24*time.Hour, "Lifetime of the printed tokens")
	return cmd
}
