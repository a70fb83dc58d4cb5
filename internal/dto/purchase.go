package dto

import (
	"time"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the data needed to plan a purchase.
type CreatePurchaseRequest struct {
	Name             string          `json:"name" binding:"required"`
	CategoryID       string          `json:"categoryID" binding:"required"`
	AccountID        string          `json:"accountID" binding:"required"`
	TotalAmount      decimal.Decimal `json:"totalAmount" binding:"required"`
	InstallmentCount int             `json:"installmentCount" binding:"required,min=1,max=60"`
}

// InstallmentResponse defines one installment slice.
type InstallmentResponse struct {
	Index         int             `json:"index"`
	Amount        decimal.Decimal `json:"amount"`
	Paid          bool            `json:"paid"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	TransactionID string          `json:"transactionID,omitempty"`
}

// PurchaseResponse defines the data returned for a planned purchase.
type PurchaseResponse struct {
	PurchaseID       string                `json:"purchaseID"`
	Name             string                `json:"name"`
	CategoryID       string                `json:"categoryID"`
	AccountID        string                `json:"accountID"`
	TotalAmount      decimal.Decimal       `json:"totalAmount"`
	InstallmentCount int                   `json:"installmentCount"`
	Installments     []InstallmentResponse `json:"installments"`
	CreatedAt        time.Time             `json:"createdAt"`
}

// ToPurchaseResponse converts a domain.PlannedPurchase to PurchaseResponse.
func ToPurchaseResponse(p *domain.PlannedPurchase) PurchaseResponse {
	installments := make([]InstallmentResponse, len(p.Installments))
	for i, inst := range p.Installments {
		installments[i] = InstallmentResponse{
			Index:         inst.Index,
			Amount:        inst.Amount,
			Paid:          inst.Paid,
			PaidAt:        inst.PaidAt,
			TransactionID: inst.TransactionID,
		}
	}
	return PurchaseResponse{
		PurchaseID:       p.PurchaseID,
		Name:             p.Name,
		CategoryID:       p.CategoryID,
		AccountID:        p.AccountID,
		TotalAmount:      p.TotalAmount,
		InstallmentCount: p.InstallmentCount,
		Installments:     installments,
		CreatedAt:        p.CreatedAt,
	}
}

// ListPurchasesResponse wraps the list of planned purchases.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}
