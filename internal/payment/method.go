package payment

import "shopfront/internal/model"

// Method is a closed enumeration of supported payment methods. Unrecognised
// strings parse to MethodUnknown, which the simulator always fails.
type Method string

const (
	MethodCreditCard   Method = "credit_card"
	MethodDebitCard    Method = "debit_card"
	MethodBankTransfer Method = "bank_transfer"
	MethodEWallet      Method = "e_wallet"
	MethodCrypto       Method = "crypto"
	MethodUnknown      Method = "unknown"
)

// ParseMethod maps a wire value to a Method.
func ParseMethod(s string) Method {
	switch Method(s) {
	case MethodCreditCard, MethodDebitCard, MethodBankTransfer, MethodEWallet, MethodCrypto:
		return Method(s)
	default:
		return MethodUnknown
	}
}

// IsCard reports whether the method requires card details.
func (m Method) IsCard() bool {
	return m == MethodCreditCard || m == MethodDebitCard
}

func (m Method) String() string {
	return string(m)
}

// Methods returns the static list of supported methods for the listing
// endpoint.
func Methods() []model.PaymentMethodInfo {
	return []model.PaymentMethodInfo{
		{ID: "credit_card", Name: "Credit Card", Icon: "💳"},
		{ID: "debit_card", Name: "Debit Card", Icon: "💳"},
		{ID: "bank_transfer", Name: "Bank Transfer", Icon: "🏦"},
		{ID: "e_wallet", Name: "E-Wallet", Icon: "📱"},
		{ID: "crypto", Name: "Cryptocurrency", Icon: "₿"},
	}
}
