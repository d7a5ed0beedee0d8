package payment

import "shopfront/internal/model"

// Card holds the card fields submitted with card-method payments.
type Card struct {
	Number string
	Holder string
	Expiry string
	CVV    string
}

// Valid reports whether the card number is exactly 16 digits and the CVV
// exactly 3 digits. Expiry and holder are not verified; this is a simulator,
// not a gateway.
func (c Card) Valid() bool {
	return allDigits(c.Number, 16) && allDigits(c.CVV, 3)
}

func allDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Simulate decides the outcome of a payment attempt. It is a pure function
// of the method; no external call is made. Card validity must be checked
// before calling for card methods.
//
// Bank transfers and crypto settle out of band, so they stay pending until
// confirmed. Card and e-wallet payments complete immediately. Unknown
// methods fail.
func Simulate(method Method) model.PaymentStatus {
	switch method {
	case MethodBankTransfer:
		return model.PaymentStatusPending
	case MethodCreditCard, MethodDebitCard:
		return model.PaymentStatusCompleted
	case MethodEWallet:
		return model.PaymentStatusCompleted
	case MethodCrypto:
		return model.PaymentStatusPending
	default:
		return model.PaymentStatusFailed
	}
}
