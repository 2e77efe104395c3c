package consts

import "github.com/yashdave182/FinAgent/internal/pkg/models"

var (
	ErrorUserProfileNotFound = &models.CustomError{
		Code:    "FINAGENT_PROFILE_LOOKUP_USER_NOT_FOUND",
		Message: "User profile not found",
	}
	ErrorUserIdFormatValidationFailed = &models.CustomError{
		Code:    "FINAGENT_VALIDATION_USER_ID_FORMAT_INVALID",
		Message: "User id parameter validation failed",
	}
	ErrorSessionIdFormatValidationFailed = &models.CustomError{
		Code:    "FINAGENT_VALIDATION_SESSION_ID_FORMAT_INVALID",
		Message: "Session id parameter validation failed",
	}
	ErrorSessionNotFound = &models.CustomError{
		Code:    "FINAGENT_SESSION_STORE_SESSION_NOT_FOUND",
		Message: "Session not found",
	}
	ErrorSessionStoreUnavailable = &models.CustomError{
		Code:    "FINAGENT_SESSION_STORE_UNAVAILABLE",
		Message: "Session store read or write failed",
	}
	ErrorInvalidTenure = &models.CustomError{
		Code:    "FINAGENT_EMI_INTERNAL_ERROR_INVALID_TENURE",
		Message: "EMI requested with non-positive tenure",
	}
	ErrorInvalidPrincipal = &models.CustomError{
		Code:    "FINAGENT_EMI_INTERNAL_ERROR_NEGATIVE_PRINCIPAL",
		Message: "EMI requested with negative principal",
	}
	ErrorNoDecisionInSession = &models.CustomError{
		Code:    "FINAGENT_SANCTION_NO_DECISION_IN_SESSION",
		Message: "No underwriting decision found in session",
	}
	ErrorDecisionNotSanctionable = &models.CustomError{
		Code:    "FINAGENT_SANCTION_DECISION_NOT_SANCTIONABLE",
		Message: "Only APPROVED or ADJUST decisions can generate sanction letters",
	}
	ErrorApplicationCreationFailed = &models.CustomError{
		Code:    "FINAGENT_LOAN_APPLICATION_CREATION_FAILED",
		Message: "Loan application creation failed",
	}
	ErrorLoanApplicationNotFound = &models.CustomError{
		Code:    "FINAGENT_LOAN_APPLICATION_NOT_FOUND",
		Message: "Loan application not found",
	}
	ErrorSanctionDocumentNotFound = &models.CustomError{
		Code:    "FINAGENT_SANCTION_DOCUMENT_NOT_FOUND",
		Message: "Sanction document not found",
	}
	ErrorSanctionDocumentFailed = &models.CustomError{
		Code:    "FINAGENT_SANCTION_DOCUMENT_GENERATION_FAILED",
		Message: "Sanction document generation failed",
	}
	ErrorNoDocumentFound = &models.CustomError{
		Code:    "FINAGENT_INTERNAL_ERROR_NO_DOCUMENTS_FOUND",
		Message: "No documents in result",
	}
)
