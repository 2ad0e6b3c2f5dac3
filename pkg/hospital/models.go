package hospital

import "time"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type DoctorType string

const (
	DoctorExamination DoctorType = "EXAMINATION"
	DoctorService     DoctorType = "SERVICE"
)

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCanceled  AppointmentStatus = "CANCELED"
)

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "CASH"
	PaymentBanking PaymentMethod = "ONLINE BANKING"
	PaymentCard    PaymentMethod = "CARD"
)

type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "SUCCESS"
	TransactionFailed  TransactionStatus = "FAILED"
	TransactionPending TransactionStatus = "PENDING"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomFull        RoomStatus = "FULL"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

type Department struct {
	ID          int64     `json:"departmentId" db:"department_id" bson:"department_id"`
	Name        string    `json:"departmentName" db:"department_name" bson:"department_name"`
	Description string    `json:"description" db:"description" bson:"description"`
	Location    string    `json:"location" db:"location" bson:"location"`
	Head        string    `json:"head" db:"head" bson:"head"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" bson:"created_at"`
}

// Code is the display identifier used by the admin dashboard, e.g. KH2025-007.
func (d Department) Code() string {
	return departmentCode(d.CreatedAt.Year(), d.ID)
}

type Doctor struct {
	ID             int64      `json:"doctorId" db:"doctor_id" bson:"doctor_id"`
	UserID         int64      `json:"userId" db:"user_id" bson:"user_id"`
	IdentityNumber string     `json:"identityNumber" db:"identity_number" bson:"identity_number"`
	FullName       string     `json:"fullName" db:"full_name" bson:"full_name"`
	Birthday       time.Time  `json:"birthday" db:"birthday" bson:"birthday"`
	Gender         Gender     `json:"gender" db:"gender" bson:"gender"`
	Address        string     `json:"address" db:"address" bson:"address"`
	AcademicDegree string     `json:"academicDegree" db:"academic_degree" bson:"academic_degree"`
	Specialization string     `json:"specialization" db:"specialization" bson:"specialization"`
	Type           DoctorType `json:"type" db:"type" bson:"type"`
	DepartmentID   int64      `json:"departmentId" db:"department_id" bson:"department_id"`
	DepartmentName string     `json:"departmentName" db:"department_name" bson:"department_name"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at" bson:"created_at"`
}

type Patient struct {
	ID              int64     `json:"patientId" db:"patient_id" bson:"patient_id"`
	FullName        string    `json:"fullName" db:"full_name" bson:"full_name"`
	Phone           string    `json:"phone" db:"phone" bson:"phone"`
	Email           string    `json:"email" db:"email" bson:"email"`
	IdentityNumber  string    `json:"identityNumber" db:"identity_number" bson:"identity_number"`
	InsuranceNumber string    `json:"insuranceNumber" db:"insurance_number" bson:"insurance_number"`
	Birthday        time.Time `json:"birthday" db:"birthday" bson:"birthday"`
	Gender          Gender    `json:"gender" db:"gender" bson:"gender"`
	Address         string    `json:"address" db:"address" bson:"address"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at" bson:"created_at"`
}

type Appointment struct {
	ID          int64             `json:"appointmentId" db:"appointment_id" bson:"appointment_id"`
	DoctorID    int64             `json:"doctorId" db:"doctor_id" bson:"doctor_id"`
	DoctorName  string            `json:"doctorName" db:"doctor_name" bson:"doctor_name"`
	PatientID   int64             `json:"patientId" db:"patient_id" bson:"patient_id"`
	PatientName string            `json:"patientName" db:"patient_name" bson:"patient_name"`
	Symptoms    string            `json:"symptoms" db:"symptoms" bson:"symptoms"`
	Number      int               `json:"number" db:"number" bson:"number"`
	SlotStart   string            `json:"slotStart" db:"slot_start" bson:"slot_start"`
	SlotEnd     string            `json:"slotEnd" db:"slot_end" bson:"slot_end"`
	Status      AppointmentStatus `json:"appointmentStatus" db:"status" bson:"status"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at" bson:"created_at"`
}

type Room struct {
	ID              int64      `json:"roomId" db:"room_id" bson:"room_id"`
	Name            string     `json:"roomName" db:"room_name" bson:"room_name"`
	Department      string     `json:"department" db:"department" bson:"department"`
	Building        string     `json:"building" db:"building" bson:"building"`
	Floor           int        `json:"floor" db:"floor" bson:"floor"`
	Capacity        int        `json:"capacity" db:"capacity" bson:"capacity"`
	CurrentPatients int        `json:"currentPatients" db:"current_patients" bson:"current_patients"`
	Status          RoomStatus `json:"status" db:"status" bson:"status"`
}

// Free reports the number of unoccupied beds.
func (r Room) Free() int {
	if n := r.Capacity - r.CurrentPatients; n > 0 {
		return n
	}
	return 0
}

type Transaction struct {
	ID              int64             `json:"transactionId" db:"transaction_id" bson:"transaction_id"`
	BillID          int64             `json:"billId" db:"bill_id" bson:"bill_id"`
	PatientName     string            `json:"patientName" db:"patient_name" bson:"patient_name"`
	Amount          int64             `json:"amount" db:"amount" bson:"amount"`
	PaymentMethod   PaymentMethod     `json:"paymentMethod" db:"payment_method" bson:"payment_method"`
	Status          TransactionStatus `json:"status" db:"status" bson:"status"`
	TransactionDate time.Time         `json:"transactionDate" db:"transaction_date" bson:"transaction_date"`
}
