package mapping

import (
	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/famstack/family_budget_app/internal/models"
)

// ToModelPurchase converts a domain PlannedPurchase to a model PlannedPurchase
func ToModelPurchase(d domain.PlannedPurchase) models.PlannedPurchase {
	return models.PlannedPurchase{
		PurchaseID:       d.PurchaseID,
		Name:             d.Name,
		CategoryID:       d.CategoryID,
		AccountID:        d.AccountID,
		TotalAmount:      d.TotalAmount,
		InstallmentCount: d.InstallmentCount,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchase converts a model PlannedPurchase plus its installment rows
// to a domain PlannedPurchase
func ToDomainPurchase(m models.PlannedPurchase, installments []models.Installment) domain.PlannedPurchase {
	d := domain.PlannedPurchase{
		PurchaseID:       m.PurchaseID,
		Name:             m.Name,
		CategoryID:       m.CategoryID,
		AccountID:        m.AccountID,
		TotalAmount:      m.TotalAmount,
		InstallmentCount: m.InstallmentCount,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	d.Installments = make([]domain.Installment, len(installments))
	for i, ins := range installments {
		d.Installments[i] = ToDomainInstallment(ins)
	}
	return d
}

// ToModelInstallment converts a domain Installment to a model Installment row
func ToModelInstallment(purchaseID string, d domain.Installment) models.Installment {
	return models.Installment{
		PurchaseID:    purchaseID,
		Idx:           d.Index,
		Amount:        d.Amount,
		Paid:          d.Paid,
		PaidAt:        d.PaidAt,
		TransactionID: d.TransactionID,
	}
}

// ToDomainInstallment converts a model Installment row to a domain Installment
func ToDomainInstallment(m models.Installment) domain.Installment {
	return domain.Installment{
		Index:         m.Idx,
		Amount:        m.Amount,
		Paid:          m.Paid,
		PaidAt:        m.PaidAt,
		TransactionID: m.TransactionID,
	}
}
