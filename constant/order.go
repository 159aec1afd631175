package constant

type PaymentMethod string

const (
	PaymentMethodTransferBank PaymentMethod = "transfer_bank"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodCash         PaymentMethod = "cash"
)

type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusSuccess    TransactionStatus = "success"
	TransactionStatusCancel     TransactionStatus = "cancel"
	TransactionStatusFailed     TransactionStatus = "failed"
)

type CreditStatus string

const (
	CreditStatusPending  CreditStatus = "tertunda"
	CreditStatusApproved CreditStatus = "disetujui"
	CreditStatusRejected CreditStatus = "ditolak"
)

// Option is a value/label pair rendered as a select option.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var PaymentMethodOptions = []Option{
	{Value: string(PaymentMethodTransferBank), Label: "Transfer Bank"},
	{Value: string(PaymentMethodCreditCard), Label: "Kartu Kredit"},
	{Value: string(PaymentMethodCash), Label: "Uang Tunai"},
}

var TransactionStatusOptions = []Option{
	{Value: string(TransactionStatusPending), Label: "Tertunda"},
	{Value: string(TransactionStatusProcessing), Label: "Diproses"},
	{Value: string(TransactionStatusSuccess), Label: "Sukses"},
	{Value: string(TransactionStatusCancel), Label: "Dibatalkan"},
	{Value: string(TransactionStatusFailed), Label: "Gagal"},
}

var CreditStatusOptions = []Option{
	{Value: string(CreditStatusPending), Label: "Tertunda"},
	{Value: string(CreditStatusApproved), Label: "Disetujui"},
	{Value: string(CreditStatusRejected), Label: "Ditolak"},
}

// JakartaLocation is the timezone transaction and application dates are captured in.
const JakartaLocation = "Asia/Jakarta"

const (
	FormDateTimeLayout  = "02-01-2006 15:04:05"
	TableDateTimeLayout = "02-01-2006 | 15:04:05"
)
