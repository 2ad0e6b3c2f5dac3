package search_test

import (
	"sync"
)

type patient struct {
	ID       int     `json:"patientId" db:"patient_id"`
	FullName string  `json:"fullName" db:"full_name"`
	Phone    *string `json:"phone"`
	Ward     string
	internal string
}

func strPtr(s string) *string { return &s }

func samplePatients() []patient {
	return []patient{
		{ID: 1, FullName: "Trần Nhật Trường", Phone: strPtr("0901234567"), Ward: "Nội tổng quát"},
		{ID: 2, FullName: "Nguyễn Văn An", Phone: nil, Ward: "Ngoại"},
		{ID: 3, FullName: "Lê Thị Đào", Phone: strPtr("0987654321"), Ward: "Nhi"},
		{ID: 4, FullName: "abc clinic", Phone: strPtr("0911111111"), Ward: "abcd"},
	}
}

type recorder[T any] struct {
	mu    sync.Mutex
	calls [][]T
}

func (r *recorder[T]) sink(results []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, results)
}

func (r *recorder[T]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *recorder[T]) snapshot() [][]T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]T, len(r.calls))
	copy(out, r.calls)
	return out
}

func (r *recorder[T]) last() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}
