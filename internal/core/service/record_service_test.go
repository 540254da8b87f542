package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/medcore/healthcare-api/internal/core/domain"
	"github.com/medcore/healthcare-api/internal/crypto"
)

type stubRecordRepo struct {
	records map[uint]*domain.MedicalRecord
	nextID  uint
}

func newStubRecordRepo() *stubRecordRepo {
	return &stubRecordRepo{records: make(map[uint]*domain.MedicalRecord), nextID: 1}
}

func (r *stubRecordRepo) Create(_ context.Context, record *domain.MedicalRecord) (*domain.MedicalRecord, error) {
	created := *record
	created.ID = r.nextID
	r.nextID++
	stored := created
	r.records[created.ID] = &stored
	return &created, nil
}

func (r *stubRecordRepo) FindByID(_ context.Context, id uint) (*domain.MedicalRecord, error) {
	if rec, ok := r.records[id]; ok {
		clone := *rec
		return &clone, nil
	}
	return nil, domain.ErrRecordNotFound
}

func (r *stubRecordRepo) ListByPatient(_ context.Context, patientID uint) ([]domain.MedicalRecord, error) {
	var out []domain.MedicalRecord
	for _, rec := range r.records {
		if rec.PatientID == patientID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

type stubAudit struct {
	events []domain.AuditEvent
}

func (a *stubAudit) Enqueue(event domain.AuditEvent) {
	a.events = append(a.events, event)
}

func testCipher(t *testing.T) *crypto.Cipher {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	cipher, err := crypto.NewCipherFromBase64(key)
	if err != nil {
		t.Fatalf("new cipher: %v", err)
	}
	return cipher
}

func seedPatient(t *testing.T, patients *stubPatientRepo, userID uint) *domain.Patient {
	t.Helper()
	p, err := patients.Create(context.Background(), &domain.Patient{
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return p
}

func TestRecordService_Add_EncryptsAtRest(t *testing.T) {
	records := newStubRecordRepo()
	patients := newStubPatientRepo()
	audit := &stubAudit{}
	cipher := testCipher(t)
	svc := NewRecordService(records, patients, cipher, audit, zerolog.Nop())

	patient := seedPatient(t, patients, 10)
	clinician := domain.Identity{UserID: 2, Role: domain.RoleClinician}

	created, err := svc.Add(context.Background(), clinician, patient.ID, "diagnosis", "acute sinusitis")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if created.Content != "acute sinusitis" {
		t.Fatalf("returned record should carry plaintext, got %q", created.Content)
	}

	stored := records.records[created.ID]
	if stored.Content == "acute sinusitis" {
		t.Fatalf("stored content is plaintext")
	}
	plaintext, err := cipher.DecryptString(stored.Content)
	if err != nil {
		t.Fatalf("stored content does not decrypt: %v", err)
	}
	if plaintext != "acute sinusitis" {
		t.Fatalf("decrypted %q, want %q", plaintext, "acute sinusitis")
	}

	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditRecordCreated {
		t.Fatalf("expected one record-created audit event, got %+v", audit.events)
	}
}

func TestRecordService_Add_UnknownPatient(t *testing.T) {
	svc := NewRecordService(newStubRecordRepo(), newStubPatientRepo(), testCipher(t), nil, zerolog.Nop())
	clinician := domain.Identity{UserID: 2, Role: domain.RoleClinician}

	if _, err := svc.Add(context.Background(), clinician, 99, "diagnosis", "x"); err != domain.ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestRecordService_ListForPatient_DecryptsForOwner(t *testing.T) {
	records := newStubRecordRepo()
	patients := newStubPatientRepo()
	cipher := testCipher(t)
	svc := NewRecordService(records, patients, cipher, nil, zerolog.Nop())

	patient := seedPatient(t, patients, 10)
	clinician := domain.Identity{UserID: 2, Role: domain.RoleClinician}
	if _, err := svc.Add(context.Background(), clinician, patient.ID, "lab_result", "hemoglobin 13.5"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	owner := domain.Identity{UserID: 10, Role: domain.RolePatient, PatientID: &patient.ID}
	listed, err := svc.ListForPatient(context.Background(), owner, patient.ID)
	if err != nil {
		t.Fatalf("ListForPatient returned error: %v", err)
	}
	if len(listed) != 1 || listed[0].Content != "hemoglobin 13.5" {
		t.Fatalf("unexpected listing: %+v", listed)
	}
}

func TestRecordService_ListForPatient_OtherPatientForbidden(t *testing.T) {
	records := newStubRecordRepo()
	patients := newStubPatientRepo()
	svc := NewRecordService(records, patients, testCipher(t), nil, zerolog.Nop())

	patient := seedPatient(t, patients, 10)
	otherProfile := uint(42)
	other := domain.Identity{UserID: 11, Role: domain.RolePatient, PatientID: &otherProfile}

	if _, err := svc.ListForPatient(context.Background(), other, patient.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRecordService_Get_ForbiddenBeforeDecrypt(t *testing.T) {
	records := newStubRecordRepo()
	patients := newStubPatientRepo()
	cipher := testCipher(t)
	audit := &stubAudit{}
	svc := NewRecordService(records, patients, cipher, audit, zerolog.Nop())

	patient := seedPatient(t, patients, 10)
	clinician := domain.Identity{UserID: 2, Role: domain.RoleClinician}
	created, err := svc.Add(context.Background(), clinician, patient.ID, "diagnosis", "secret")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	audit.events = nil

	otherProfile := uint(42)
	other := domain.Identity{UserID: 11, Role: domain.RolePatient, PatientID: &otherProfile}
	if _, err := svc.Get(context.Background(), other, created.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(audit.events) != 0 {
		t.Fatalf("forbidden access must not be logged as a view, got %+v", audit.events)
	}

	got, err := svc.Get(context.Background(), domain.Identity{UserID: 1, Role: domain.RoleAdmin}, created.ID)
	if err != nil {
		t.Fatalf("admin Get failed: %v", err)
	}
	if got.Content != "secret" {
		t.Fatalf("expected decrypted content, got %q", got.Content)
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditRecordViewed {
		t.Fatalf("expected record-viewed audit event, got %+v", audit.events)
	}
}

func TestRecordService_Get_UnknownRecord(t *testing.T) {
	svc := NewRecordService(newStubRecordRepo(), newStubPatientRepo(), testCipher(t), nil, zerolog.Nop())
	admin := domain.Identity{UserID: 1, Role: domain.RoleAdmin}

	if _, err := svc.Get(context.Background(), admin, 404); err != domain.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
