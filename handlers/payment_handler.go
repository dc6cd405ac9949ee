package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/paymentintent"

	"github.com/programarreza/TaskNestle-Server/models"
	"github.com/programarreza/TaskNestle-Server/utils"
)

// mapLimitTier translates a paid package tier into the credit-limit
// increment applied to the user. Unknown tiers pass through unchanged.
func mapLimitTier(tier int) int {
	switch tier {
	case 5:
		return 5
	case 8:
		return 10
	case 15:
		return 20
	default:
		log.Printf("unknown payment limit tier %d, applying as-is", tier)
		return tier
	}
}

type paymentIntentRequest struct {
	Price float64 `json:"price"`
}

// CreatePaymentIntent asks Stripe for a PaymentIntent and returns its
// client secret for the checkout form.
func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body paymentIntentRequest
	if err := utils.ParseJSON(r, &body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(body.Price * 100)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		log.Printf("create payment intent failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "payment intent creation failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"clientSecret": pi.ClientSecret,
	})
}

// RecordPayment appends to the payment ledger, then upgrades the paying
// user: role becomes admin and the credit limit grows by the mapped
// tier. The two writes are separate operations; standalone MongoDB has
// no transaction to wrap them, so a crash in between leaves the ledger
// ahead of the user document.
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := utils.ParseJSON(r, &payment); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if payment.TransactionID == "" {
		payment.TransactionID = uuid.NewString()
	}
	payment.Date = time.Now()

	insertResult, err := h.store.InsertPayment(r.Context(), payment)
	if err != nil {
		log.Printf("insert payment failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database insert failed")
		return
	}

	limitInc := mapLimitTier(payment.Limit)

	updateResult, err := h.store.ApplyPaymentUpgrade(r.Context(), payment.Email, limitInc)
	if err != nil {
		log.Printf("payment recorded but user upgrade failed for %s: %v", payment.Email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "user upgrade failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"paymentResult": insertResult,
		"userResult":    updateResult,
	})
}

// ListPayments returns a user's payment history, newest first.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	payments, err := h.store.ListPayments(r.Context(), email)
	if err != nil {
		log.Printf("list payments for %s failed: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, payments)
}
