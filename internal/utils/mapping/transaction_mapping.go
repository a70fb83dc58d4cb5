package mapping

import (
	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/famstack/family_budget_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Type:          models.TransactionType(d.Type),
		AccountID:     d.AccountID,
		ToAccountID:   d.ToAccountID,
		CategoryID:    d.CategoryID,
		Amount:        d.Amount,
		Description:   d.Description,
		Merchant:      d.Merchant,
		Date:          d.Date,
		IsRecurring:   d.IsRecurring,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Type:          domain.TransactionType(m.Type),
		AccountID:     m.AccountID,
		ToAccountID:   m.ToAccountID,
		CategoryID:    m.CategoryID,
		Amount:        m.Amount,
		Description:   m.Description,
		Merchant:      m.Merchant,
		Date:          m.Date,
		IsRecurring:   m.IsRecurring,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
