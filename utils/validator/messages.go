package validatorx

// fieldMessages overrides tagMessages for specific "field.tag" pairs.
var fieldMessages = map[string]string{
	"user_id.required":              "Form nama pengguna tidak boleh kosong.",
	"car_id.required":               "Form merek mobil tidak boleh kosong.",
	"user_id.exists":                "Pengguna yang dipilih tidak ditemukan.",
	"car_id.exists":                 "Mobil yang dipilih tidak ditemukan.",
	"transaction_date.datetime":     "Form tanggal harus berbentuk format tanggal dan waktu.",
	"application_date.datetime":     "Form tanggal harus berbentuk format tanggal dan waktu.",
	"total_amount.required":         "Form harga tidak boleh kosong.",
	"total_amount.numeric":          "Form harga harus berupa angka.",
	"income.required":               "Form penghasilan tidak boleh kosong.",
	"income.numeric":                "Form penghasilan harus berupa angka.",
	"total_amount.amount":           "Form harga harus di antara 0 dan 9.999.999.999.999,99.",
	"income.amount":                 "Form penghasilan harus di antara 0 dan 9.999.999.999.999,99.",
	"min_total_amount.numeric":      "Form harga harus berupa angka.",
	"max_total_amount.numeric":      "Form harga harus berupa angka.",
	"min_income.numeric":            "Form penghasilan harus berupa angka.",
	"max_income.numeric":            "Form penghasilan harus berupa angka.",
	"email.email":                   "Form email harus berupa alamat email yang valid.",
	"password.min":                  "Kata sandi minimal 8 karakter.",
	"password_confirmation.eqfield": "Konfirmasi kata sandi tidak cocok.",
}

var tagMessages = map[string]string{
	"required":  "Form ini tidak boleh kosong.",
	"numeric":   "Form ini harus berupa angka.",
	"oneof":     "Form tipe harus berupa salah satu dari opsi yang tersedia.",
	"datetime":  "Form tanggal harus berbentuk format tanggal dan waktu.",
	"email":     "Form email harus berupa alamat email yang valid.",
	"min":       "Form ini terlalu pendek.",
	"max":       "Form ini terlalu panjang.",
	"latitude":  "Koordinat lintang tidak valid.",
	"longitude": "Koordinat bujur tidak valid.",
	"eqfield":   "Form ini tidak cocok.",
	"gt":        "Form ini harus lebih besar dari nol.",
	"amount":    "Nilai di luar batas yang diizinkan.",
}

const fallbackMessage = "Form ini tidak valid."

func message(field, tag string) string {
	if m, ok := fieldMessages[field+"."+tag]; ok {
		return m
	}
	if m, ok := tagMessages[tag]; ok {
		return m
	}
	return fallbackMessage
}
