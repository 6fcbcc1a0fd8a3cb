package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/classtap/classtap/internal/app/models/dto"
	"github.com/classtap/classtap/internal/pkg/apperrors"
)

func newTestAttendanceService(dir *fakeDirectory, store *fakeRecordStore, pub ScanPublisher) *AttendanceService {
	svc := NewAttendanceService(dir, fakeSchedule{dir}, fakeCourses{dir}, store, pub, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC) }
	return svc
}

func TestRecordScan_CreatesRecord(t *testing.T) {
	dir := newTestDirectory()
	store := &fakeRecordStore{}
	svc := newTestAttendanceService(dir, store, nil)

	resp, err := svc.RecordScan(context.Background(), dto.ScanRequest{
		NFCID: "nfc_001", CourseID: 1, SessionID: "S1",
	})
	if err != nil {
		t.Fatalf("RecordScan returned error: %v", err)
	}
	if resp.AlreadyRecorded {
		t.Error("first scan must not report alreadyRecorded")
	}
	if resp.Student.ID != 1 {
		t.Errorf("resolved student id = %d, want 1", resp.Student.ID)
	}
	if resp.Record.Status != "Present" {
		t.Errorf("record status = %q, want Present", resp.Record.Status)
	}
	if resp.Record.SessionID != "S1" {
		t.Errorf("record session = %q, want S1", resp.Record.SessionID)
	}
}

func TestRecordScan_RepeatedTapIsIdempotent(t *testing.T) {
	dir := newTestDirectory()
	store := &fakeRecordStore{}
	svc := newTestAttendanceService(dir, store, nil)
	ctx := context.Background()

	first, err := svc.RecordScan(ctx, dto.ScanRequest{NFCID: "nfc_001", CourseID: 1, SessionID: "S1"})
	if err != nil {
		t.Fatalf("first scan failed: %v", err)
	}

	second, err := svc.RecordScan(ctx, dto.ScanRequest{NFCID: "nfc_001", CourseID: 1, SessionID: "S1"})
	if err != nil {
		t.Fatalf("repeated scan must succeed, got: %v", err)
	}
	if !second.AlreadyRecorded {
		t.Error("repeated scan must report alreadyRecorded")
	}
	if second.Record.ID != first.Record.ID {
		t.Errorf("repeated scan returned record %d, want original %d", second.Record.ID, first.Record.ID)
	}
	if !second.Record.Timestamp.Equal(first.Record.Timestamp) {
		t.Error("repeated scan must keep the original timestamp")
	}

	records, _ := svc.AttendanceForSession(ctx, "S1")
	if len(records) != 1 {
		t.Errorf("session has %d records after double tap, want 1", len(records))
	}
}

// Mirrors the classroom walkthrough: two students across two sessions.
func TestRecordScan_SessionScoping(t *testing.T) {
	dir := newTestDirectory()
	store := &fakeRecordStore{}
	svc := newTestAttendanceService(dir, store, nil)
	ctx := context.Background()

	mustScan := func(nfc, session string) {
		t.Helper()
		if _, err := svc.RecordScan(ctx, dto.ScanRequest{NFCID: nfc, CourseID: 1, SessionID: session}); err != nil {
			t.Fatalf("scan(%s, %s) failed: %v", nfc, session, err)
		}
	}
	count := func(session string) int {
		t.Helper()
		records, err := svc.AttendanceForSession(ctx, session)
		if err != nil {
			t.Fatalf("AttendanceForSession(%s) failed: %v", session, err)
		}
		return len(records)
	}

	mustScan("nfc_001", "S1")
	if got := count("S1"); got != 1 {
		t.Fatalf("S1 count = %d, want 1", got)
	}

	mustScan("nfc_001", "S1") // repeat
	if got := count("S1"); got != 1 {
		t.Fatalf("S1 count after repeat = %d, want 1", got)
	}

	mustScan("nfc_002", "S1")
	if got := count("S1"); got != 2 {
		t.Fatalf("S1 count = %d, want 2", got)
	}

	mustScan("nfc_001", "S2")
	if got := count("S1"); got != 2 {
		t.Errorf("S1 count after S2 scan = %d, want 2", got)
	}
	if got := count("S2"); got != 1 {
		t.Errorf("S2 count = %d, want 1", got)
	}
}

func TestRecordScan_UnknownTag(t *testing.T) {
	dir := newTestDirectory()
	store := &fakeRecordStore{}
	svc := newTestAttendanceService(dir, store, nil)
	ctx := context.Background()

	_, err := svc.RecordScan(ctx, dto.ScanRequest{NFCID: "nfc_999", CourseID: 1, SessionID: "S1"})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("unknown tag error = %v, want ErrStudentNotFound", err)
	}
	if len(store.records) != 0 {
		t.Errorf("unknown tag must not create records, found %d", len(store.records))
	}

	// The flow must recover: a valid scan afterwards succeeds normally.
	if _, err := svc.RecordScan(ctx, dto.ScanRequest{NFCID: "nfc_001", CourseID: 1, SessionID: "S1"}); err != nil {
		t.Fatalf("valid scan after unknown tag failed: %v", err)
	}
}

func TestRecordScan_Validation(t *testing.T) {
	dir := newTestDirectory()
	svc := newTestAttendanceService(dir, &fakeRecordStore{}, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.ScanRequest
	}{
		{"missing nfc id", dto.ScanRequest{CourseID: 1, SessionID: "S1"}},
		{"blank nfc id", dto.ScanRequest{NFCID: "   ", CourseID: 1, SessionID: "S1"}},
		{"missing course", dto.ScanRequest{NFCID: "nfc_001", SessionID: "S1"}},
		{"no session and no schedule item", dto.ScanRequest{NFCID: "nfc_001", CourseID: 1}},
		{"schedule item of another course", dto.ScanRequest{NFCID: "nfc_001", CourseID: 2, ScheduleItemID: 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordScan(ctx, tc.req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestRecordScan_DerivesSessionFromScheduleItem(t *testing.T) {
	dir := newTestDirectory()
	store := &fakeRecordStore{}
	svc := newTestAttendanceService(dir, store, nil)

	resp, err := svc.RecordScan(context.Background(), dto.ScanRequest{
		NFCID: "nfc_001", CourseID: 1, ScheduleItemID: 4,
	})
	if err != nil {
		t.Fatalf("RecordScan returned error: %v", err)
	}
	if resp.Record.SessionID != "4-2025-03-10" {
		t.Errorf("derived session = %q, want 4-2025-03-10", resp.Record.SessionID)
	}
}

func TestRecordScan_StoreFailureIsDistinguishable(t *testing.T) {
	dir := newTestDirectory()
	store := &fakeRecordStore{failInsert: true}
	svc := newTestAttendanceService(dir, store, nil)

	_, err := svc.RecordScan(context.Background(), dto.ScanRequest{
		NFCID: "nfc_001", CourseID: 1, SessionID: "S1",
	})
	if !errors.Is(err, apperrors.ErrStoreUnavailable) {
		t.Fatalf("store failure error = %v, want ErrStoreUnavailable", err)
	}
	if errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Error("store failure must not be conflated with an unknown card")
	}
}

func TestRecordScan_PublishesOnlyNewRecords(t *testing.T) {
	dir := newTestDirectory()
	pub := &capturingPublisher{}
	svc := newTestAttendanceService(dir, &fakeRecordStore{}, pub)
	ctx := context.Background()

	req := dto.ScanRequest{NFCID: "nfc_001", CourseID: 1, SessionID: "S1"}
	if _, err := svc.RecordScan(ctx, req); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if _, err := svc.RecordScan(ctx, req); err != nil {
		t.Fatalf("repeat scan failed: %v", err)
	}

	if len(pub.events) != 1 {
		t.Fatalf("published %d events, want 1 (no event for the repeat tap)", len(pub.events))
	}
	if pub.events[0].SessionID != "S1" {
		t.Errorf("event session = %q, want S1", pub.events[0].SessionID)
	}
}

func TestAttendanceQueries_Validation(t *testing.T) {
	svc := newTestAttendanceService(newTestDirectory(), &fakeRecordStore{}, nil)
	ctx := context.Background()

	if _, err := svc.AttendanceForSession(ctx, "  "); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("blank session error = %v, want ErrValidationFailed", err)
	}
	if _, err := svc.AttendanceForCourse(ctx, 0); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("zero course error = %v, want ErrValidationFailed", err)
	}
}

func TestSessionSummary(t *testing.T) {
	dir := newTestDirectory()
	store := &fakeRecordStore{}
	svc := newTestAttendanceService(dir, store, nil)
	ctx := context.Background()

	// Session key derived from schedule item 4 (course 1); only Alex scans.
	if _, err := svc.RecordScan(ctx, dto.ScanRequest{NFCID: "nfc_001", CourseID: 1, ScheduleItemID: 4}); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	summary, err := svc.SessionSummary(ctx, "4-2025-03-10")
	if err != nil {
		t.Fatalf("SessionSummary returned error: %v", err)
	}

	if summary.CourseID != 1 {
		t.Errorf("course id = %d, want 1", summary.CourseID)
	}
	if summary.PresentCount != 1 || summary.EnrolledCount != 2 {
		t.Errorf("present/enrolled = %d/%d, want 1/2", summary.PresentCount, summary.EnrolledCount)
	}
	if summary.PresenceRate != 0.5 {
		t.Errorf("presence rate = %v, want 0.5", summary.PresenceRate)
	}

	present := map[int64]bool{}
	for _, row := range summary.Students {
		present[row.Student.ID] = row.Present
	}
	if !present[1] || present[2] {
		t.Errorf("presence flags = %v, want student 1 present and student 2 absent", present)
	}
}
