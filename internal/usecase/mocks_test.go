package usecase

import (
	"context"
	"io"
	"time"

	"kist-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// mockAudit records audit actions for assertions.
type mockAudit struct {
	actions []string
}

func (m *mockAudit) Record(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) {
	m.actions = append(m.actions, action)
}

func visible(scope entity.Scope, ownerID uuid.UUID) bool {
	return scope.Staff || scope.UserID == ownerID
}

// mockAppointmentRepo is a map-backed AppointmentRepository.
type mockAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (m *mockAppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	cp := *a
	m.appointments[a.ID] = &cp
	return nil
}

func (m *mockAppointmentRepo) FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok || !visible(scope, a.PatientID) {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *mockAppointmentRepo) List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range m.appointments {
		if visible(scope, a.PatientID) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) Update(ctx context.Context, a *entity.Appointment) error {
	cp := *a
	m.appointments[a.ID] = &cp
	return nil
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error) {
	a, ok := m.appointments[id]
	if !ok || !visible(scope, a.PatientID) {
		return 0, nil
	}
	delete(m.appointments, id)
	return 1, nil
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RecordStatus) (int64, error) {
	a, ok := m.appointments[id]
	if !ok {
		return 0, nil
	}
	a.Status = status
	return 1, nil
}

// mockLabTestRepo is a map-backed LaboratoryTestRepository.
type mockLabTestRepo struct {
	tests map[uuid.UUID]*entity.LaboratoryTest
}

func newMockLabTestRepo() *mockLabTestRepo {
	return &mockLabTestRepo{tests: make(map[uuid.UUID]*entity.LaboratoryTest)}
}

func (m *mockLabTestRepo) Create(ctx context.Context, t *entity.LaboratoryTest) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	cp := *t
	m.tests[t.ID] = &cp
	return nil
}

func (m *mockLabTestRepo) FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.LaboratoryTest, error) {
	t, ok := m.tests[id]
	if !ok || !visible(scope, t.PatientID) {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *mockLabTestRepo) List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) ([]entity.LaboratoryTest, error) {
	var out []entity.LaboratoryTest
	for _, t := range m.tests {
		if visible(scope, t.PatientID) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockLabTestRepo) Update(ctx context.Context, t *entity.LaboratoryTest) error {
	cp := *t
	m.tests[t.ID] = &cp
	return nil
}

func (m *mockLabTestRepo) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error) {
	t, ok := m.tests[id]
	if !ok || !visible(scope, t.PatientID) {
		return 0, nil
	}
	delete(m.tests, id)
	return 1, nil
}

func (m *mockLabTestRepo) Cancel(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error) {
	t, ok := m.tests[id]
	if !ok || !visible(scope, t.PatientID) {
		return 0, nil
	}
	t.Status = entity.RecordStatusCancelled
	return 1, nil
}

func (m *mockLabTestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RecordStatus) (int64, error) {
	t, ok := m.tests[id]
	if !ok {
		return 0, nil
	}
	t.Status = status
	return 1, nil
}

// mockOrderRepo is a map-backed PharmacyOrderRepository. Cancel mimics the
// conditional UPDATE: it only succeeds while the order is still pending or
// processing.
type mockOrderRepo struct {
	orders map[uuid.UUID]*entity.PharmacyOrder
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[uuid.UUID]*entity.PharmacyOrder)}
}

func (m *mockOrderRepo) Create(ctx context.Context, o *entity.PharmacyOrder) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *mockOrderRepo) FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.PharmacyOrder, error) {
	o, ok := m.orders[id]
	if !ok || !visible(scope, o.PatientID) {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) List(ctx context.Context, scope entity.Scope, ordering entity.Ordering) ([]entity.PharmacyOrder, error) {
	var out []entity.PharmacyOrder
	for _, o := range m.orders {
		if visible(scope, o.PatientID) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) Update(ctx context.Context, o *entity.PharmacyOrder) error {
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error) {
	o, ok := m.orders[id]
	if !ok || !visible(scope, o.PatientID) {
		return 0, nil
	}
	delete(m.orders, id)
	return 1, nil
}

func (m *mockOrderRepo) Cancel(ctx context.Context, scope entity.Scope, id uuid.UUID) (int64, error) {
	o, ok := m.orders[id]
	if !ok || !visible(scope, o.PatientID) {
		return 0, nil
	}
	if !o.IsCancellable() {
		return 0, nil
	}
	o.Status = entity.OrderStatusCancelled
	return 1, nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (int64, error) {
	o, ok := m.orders[id]
	if !ok {
		return 0, nil
	}
	o.Status = status
	return 1, nil
}
