package consts

const (
	UserProfilesCollection      = "UserProfiles"
	LoanApplicationsCollection  = "LoanApplications"
	SanctionDocumentsCollection = "SanctionDocuments"
)
