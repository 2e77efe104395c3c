package db

import (
	"context"
	"time"

	"github.com/yashdave182/FinAgent/internal/pkg/consts"
	"github.com/yashdave182/FinAgent/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexesIfNotExists ensures the lookup indexes the service depends on.
// Index creation is idempotent on the server side.
func CreateIndexesIfNotExists() {
	if MDB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	profileIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := MDB.Database.Collection(consts.UserProfilesCollection).Indexes().CreateOne(ctx, profileIndex); err != nil {
		logger.Error(ctx, "Failed to create userId index on %s: %v", consts.UserProfilesCollection, err)
	}

	loanIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "loanId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := MDB.Database.Collection(consts.LoanApplicationsCollection).Indexes().CreateOne(ctx, loanIndex); err != nil {
		logger.Error(ctx, "Failed to create loanId index on %s: %v", consts.LoanApplicationsCollection, err)
	}

	sanctionIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "loanId", Value: 1}},
	}
	if _, err := MDB.Database.Collection(consts.SanctionDocumentsCollection).Indexes().CreateOne(ctx, sanctionIndex); err != nil {
		logger.Error(ctx, "Failed to create loanId index on %s: %v", consts.SanctionDocumentsCollection, err)
	}
}
