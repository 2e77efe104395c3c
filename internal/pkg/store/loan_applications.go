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

type LoanApplicationRepository struct {
	repo *MongoRepository[models.LoanApplication]
}

func NewLoanApplicationRepository() *LoanApplicationRepository {
	collection := db.MDB.Database.Collection(consts.LoanApplicationsCollection)
	mrepo := NewMongoRepository[models.LoanApplication](collection)
	return &LoanApplicationRepository{repo: mrepo}
}

func (r *LoanApplicationRepository) CreateLoanApplication(ctx context.Context, application models.LoanApplication) error {

	_, err := r.repo.Create(application)
	if err != nil {
		logger.Error(ctx, "LoanApplication : Error while inserting %v", err)
		return fmt.Errorf("LoanApplication : error while inserting %v", err.Error())
	}

	return nil
}

func (r *LoanApplicationRepository) LoanApplicationById(ctx context.Context, loanId string) (*models.LoanApplication, error) {

	filter := bson.M{"loanId": loanId}

	application, err := r.repo.Read(filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorLoanApplicationNotFound
		}
		return nil, err
	}

	return &application, nil
}

func (r *LoanApplicationRepository) LoanApplicationsByUser(ctx context.Context, userId string) ([]models.LoanApplication, error) {

	filter := bson.M{"userId": userId}

	return r.repo.FindAll(filter)
}

// SetSanctionDocumentRef records the generated document reference on the
// application. Best effort, callers log and move on.
func (r *LoanApplicationRepository) SetSanctionDocumentRef(ctx context.Context, loanId string, documentRef string) error {

	filter := bson.M{"loanId": loanId}
	update := bson.M{"sanctionDocumentRef": documentRef}

	return r.repo.Update(filter, update)
}
