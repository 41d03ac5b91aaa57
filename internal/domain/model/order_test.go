package model

import "testing"

func TestOrderStatusCancellable(t *testing.T) {
	cancellable := []OrderStatus{OrderStatusPending, OrderStatusProcessing}
	for _, s := range cancellable {
		if !s.Cancellable() {
			t.Fatalf("expected %s to be cancellable", s)
		}
	}

	final := []OrderStatus{OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatus("unknown")}
	for _, s := range final {
		if s.Cancellable() {
			t.Fatalf("expected %s to not be cancellable", s)
		}
	}
}

func TestPaymentMethodValid(t *testing.T) {
	valid := []PaymentMethod{PaymentMethodCredit, PaymentMethodDebit, PaymentMethodPix, PaymentMethodBoleto}
	for _, m := range valid {
		if !m.Valid() {
			t.Fatalf("expected %s to be valid", m)
		}
	}

	invalid := []PaymentMethod{"", "cash", "bitcoin"}
	for _, m := range invalid {
		if m.Valid() {
			t.Fatalf("expected %s to be invalid", m)
		}
	}
}
