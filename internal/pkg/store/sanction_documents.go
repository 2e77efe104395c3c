package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yashdave182/FinAgent/internal/pkg/consts"
	"github.com/yashdave182/FinAgent/internal/pkg/db"
	"github.com/yashdave182/FinAgent/internal/pkg/logger"
	"github.com/yashdave182/FinAgent/internal/pkg/models"
)

type SanctionDocumentRepository struct {
	repo *MongoRepository[models.SanctionDocument]
}

func NewSanctionDocumentRepository() *SanctionDocumentRepository {
	collection := db.MDB.Database.Collection(consts.SanctionDocumentsCollection)
	mrepo := NewMongoRepository[models.SanctionDocument](collection)
	return &SanctionDocumentRepository{repo: mrepo}
}

func (r *SanctionDocumentRepository) CreateSanctionDocument(ctx context.Context, document models.SanctionDocument) error {

	_, err := r.repo.Create(document)
	if err != nil {
		logger.Error(ctx, "SanctionDocument : Error while inserting %v", err)
		return fmt.Errorf("SanctionDocument : error while inserting %v", err.Error())
	}

	return nil
}

func (r *SanctionDocumentRepository) SanctionDocumentByLoanId(ctx context.Context, loanId string) (*models.SanctionDocument, error) {

	filter := bson.M{"loanId": loanId}

	document, err := r.repo.Read(filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorSanctionDocumentNotFound
		}
		return nil, err
	}

	return &document, nil
}
