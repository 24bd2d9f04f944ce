package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type BookingConfirmedMailData struct {
	PatientName   string `json:"patient_name"`
	ProcedureName string `json:"procedure_name"`
	ClinicName    string `json:"clinic_name"`
	ClinicAddress string `json:"clinic_address"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	DoctorName    string `json:"doctor_name"`
}

type BookingCancelledMailData struct {
	PatientName   string `json:"patient_name"`
	ProcedureName string `json:"procedure_name"`
	ClinicName    string `json:"clinic_name"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"full_name"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}
