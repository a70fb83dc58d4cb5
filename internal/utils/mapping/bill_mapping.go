package mapping

import (
	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/famstack/family_budget_app/internal/models"
)

// ToModelBill converts a domain Bill to a model Bill
func ToModelBill(d domain.Bill) models.Bill {
	return models.Bill{
		BillID:         d.BillID,
		Name:           d.Name,
		Provider:       d.Provider,
		CategoryID:     d.CategoryID,
		AccountID:      d.AccountID,
		Recurrence:     models.RecurrenceType(d.Recurrence),
		DueDay:         d.DueDay,
		ExpectedAmount: d.ExpectedAmount,
		Autopay:        d.Autopay,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBill converts a model Bill to a domain Bill
func ToDomainBill(m models.Bill) domain.Bill {
	return domain.Bill{
		BillID:         m.BillID,
		Name:           m.Name,
		Provider:       m.Provider,
		CategoryID:     m.CategoryID,
		AccountID:      m.AccountID,
		Recurrence:     domain.RecurrenceType(m.Recurrence),
		DueDay:         m.DueDay,
		ExpectedAmount: m.ExpectedAmount,
		Autopay:        m.Autopay,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBillSlice converts a slice of model Bills to domain Bills
func ToDomainBillSlice(ms []models.Bill) []domain.Bill {
	ds := make([]domain.Bill, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBill(m)
	}
	return ds
}
