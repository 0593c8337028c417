package payment

type Method string

const (
	MethodCreditCard   Method = "credit_card"
	MethodDebitCard    Method = "debit_card"
	MethodCash         Method = "cash"
	MethodBankTransfer Method = "bank_transfer"
	MethodPayPal       Method = "paypal"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodCash, MethodBankTransfer, MethodPayPal:
		return true
	default:
		return false
	}
}

func NewMethod(s string) (Method, error) {
	m := Method(s)
	if !m.IsValid() {
		return "", ErrInvalidMethod
	}
	return m, nil
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	default:
		return false
	}
}

// Open statuses occupy a rental's single payment slot.
func (s Status) Open() bool {
	return s == StatusPending || s == StatusCompleted
}
