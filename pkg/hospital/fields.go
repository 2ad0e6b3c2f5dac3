package hospital

import (
	"fmt"

	"github.com/dmitrymomot/clinickit/pkg/search"
)

func departmentCode(year int, id int64) string {
	if year < 2000 {
		year = 2020
	}
	return fmt.Sprintf("KH%d-%03d", year, id)
}

// Search presets used by the admin tables. The field names match the json
// tags so the same names can be sent to a remote search backend.
var (
	DepartmentFields = []search.Field[Department]{
		search.F("departmentName", func(d Department) any { return d.Name }),
		search.F("head", func(d Department) any { return d.Head }),
		search.F("location", func(d Department) any { return d.Location }),
		search.F("code", func(d Department) any { return d.Code() }),
	}

	DoctorFields = []search.Field[Doctor]{
		search.F("fullName", func(d Doctor) any { return d.FullName }),
		search.F("specialization", func(d Doctor) any { return d.Specialization }),
		search.F("departmentName", func(d Doctor) any { return d.DepartmentName }),
		search.F("identityNumber", func(d Doctor) any { return d.IdentityNumber }),
	}

	PatientFields = []search.Field[Patient]{
		search.F("fullName", func(p Patient) any { return p.FullName }),
		search.F("phone", func(p Patient) any { return p.Phone }),
		search.F("identityNumber", func(p Patient) any { return p.IdentityNumber }),
		search.F("insuranceNumber", func(p Patient) any { return p.InsuranceNumber }),
	}

	AppointmentFields = []search.Field[Appointment]{
		search.F("patientName", func(a Appointment) any { return a.PatientName }),
		search.F("doctorName", func(a Appointment) any { return a.DoctorName }),
		search.F("symptoms", func(a Appointment) any { return a.Symptoms }),
		search.F("appointmentStatus", func(a Appointment) any { return a.Status }),
	}

	RoomFields = []search.Field[Room]{
		search.F("roomName", func(r Room) any { return r.Name }),
		search.F("department", func(r Room) any { return r.Department }),
		search.F("building", func(r Room) any { return r.Building }),
		search.F("status", func(r Room) any { return r.Status }),
	}

	TransactionFields = []search.Field[Transaction]{
		search.F("transactionId", func(t Transaction) any { return t.ID }),
		search.F("patientName", func(t Transaction) any { return t.PatientName }),
		search.F("paymentMethod", func(t Transaction) any { return t.PaymentMethod }),
		search.F("status", func(t Transaction) any { return t.Status }),
	}
)

// Columns lists the text columns a database backend searches for each preset.
// A department code is computed from the id and creation year and a
// transaction id is numeric, so neither has a column here and both are
// matched by local filtering only.
var (
	DepartmentColumns  = []string{"department_name", "head", "location"}
	DoctorColumns      = []string{"full_name", "specialization", "department_name", "identity_number"}
	PatientColumns     = []string{"full_name", "phone", "identity_number", "insurance_number"}
	AppointmentColumns = []string{"patient_name", "doctor_name", "symptoms", "status"}
	RoomColumns        = []string{"room_name", "department", "building", "status"}
	TransactionColumns = []string{"patient_name", "payment_method", "status"}
)
